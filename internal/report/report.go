package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/paulmach/orb"
	"github.com/planbiir/tourenergy/internal/tour"
)

// WriteSummary renders the tour totals as a two column table
func WriteSummary(w io.Writer, r tour.Result, bound orb.Bound) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("📊 %s", titleOf(r))
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	tw.AppendRows([]table.Row{
		{"Energy", fmt.Sprintf("%.0f J", r.TotalEnergyJoules)},
		{"Energy", fmt.Sprintf("%.1f kcal", r.TotalEnergyKcal)},
		{"Quadrature", string(r.Method)},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Mean speed", fmt.Sprintf("%.2f m/s (%.1f km/h)", r.MeanSpeed, r.MeanSpeed*3.6)},
		{"Max speed", fmt.Sprintf("%.2f m/s (%.1f km/h)", r.MaxSpeed, r.MaxSpeed*3.6)},
		{"Distance", fmt.Sprintf("%.2f km", r.Distance/1000)},
		{"Duration", r.Duration.Round(time.Second).String()},
	})
	tw.AppendSeparator()
	tw.AppendRows([]table.Row{
		{"Total up", fmt.Sprintf("%.1f m", r.TotalAscent)},
		{"Total down", fmt.Sprintf("%.1f m", r.TotalDescent)},
	})
	if !bound.IsZero() {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{"Bounds", fmt.Sprintf("%.5f,%.5f → %.5f,%.5f",
			bound.Min.Lat(), bound.Min.Lon(), bound.Max.Lat(), bound.Max.Lon())})
	}

	tw.Render()
}

// WriteProfile renders the per-fix velocity and elevation profile
func WriteProfile(w io.Writer, r tour.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"#", "Run time (s)", "Speed (km/h)", "Elevation (m)", "Energy (J)"})

	for i := range r.RunTime {
		tw.AppendRow(table.Row{
			i,
			fmt.Sprintf("%.1f", r.RunTime[i]),
			fmt.Sprintf("%.1f", r.Velocity[i]*3.6),
			fmt.Sprintf("%.1f", r.Elevation[i]),
			fmt.Sprintf("%.1f", r.Energy[i]),
		})
	}

	tw.Render()
}

// WriteJSON writes the result as indented JSON. Series are dropped unless
// withSeries is set.
func WriteJSON(w io.Writer, r tour.Result, withSeries bool) error {
	if !withSeries {
		r.RunTime, r.Velocity, r.Elevation, r.Energy = nil, nil, nil, nil
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}
	return nil
}

func titleOf(r tour.Result) string {
	if r.Name == "" {
		return "Unnamed tour"
	}
	return r.Name
}
