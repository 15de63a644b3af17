package tour

import (
	"fmt"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/planbiir/tourenergy/internal/track"
)

// Benchmark the full pipeline with different track sizes
func BenchmarkSummarizeSizes(b *testing.B) {
	sizes := []int{1000, 5000, 10000, 20000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Summarize-%d-points", size), func(b *testing.B) {
			// Generate synthetic rolling track
			fixes := make([]track.Fix, size)
			for i := range fixes {
				fixes[i] = track.Fix{
					Position:  orb.Point{7.0 + float64(i)*0.0001, 46.0 + float64(i)*0.0001},
					Elevation: 1000 + float64(i%50),
					Time:      start.Add(time.Duration(i) * time.Second),
				}
			}
			opts := DefaultOptions(80)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				result, err := Summarize("bench", fixes, opts)
				if err != nil {
					b.Fatal(err)
				}
				if result.TotalEnergyJoules <= 0 {
					b.Fatal("expected positive energy")
				}
			}
		})
	}
}
