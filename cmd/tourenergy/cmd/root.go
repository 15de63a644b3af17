package cmd

import (
	"fmt"
	"os"

	"github.com/planbiir/tourenergy/internal/config"
	"github.com/planbiir/tourenergy/internal/errs"
	"github.com/planbiir/tourenergy/internal/gpx"
	"github.com/planbiir/tourenergy/internal/integrate"
	"github.com/planbiir/tourenergy/internal/report"
	"github.com/planbiir/tourenergy/internal/tour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "v1.0.0"

var (
	trackFile string
	massKg    float64
	method    string
	asJSON    bool
	profile   bool
	quiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "tourenergy [file.gpx]",
	Short: "Estimate the energy spent on a recorded bike tour",
	Long: `tourenergy reads a GPX track and estimates the mechanical energy the rider had to supply.

Every pair of consecutive fixes becomes an interval with distance, slope and velocity.
Gravity, rolling resistance, air drag and acceleration give the energy per interval,
which is integrated over the tour to a total in joules and kilocalories.`,
	Example: `  tourenergy -f tour.gpx
  tourenergy tour.gpx -m 82 --method rectangle
  TOURENERGY_MASS_KG=75 tourenergy tour.gpx --json`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&trackFile, "file", "f", "", "input GPX file")
	rootCmd.Flags().Float64VarP(&massKg, "mass", "m", config.DefaultMassKg, "rider plus bike mass in kg")
	rootCmd.Flags().StringVar(&method, "method", string(integrate.Trapezoidal), "quadrature rule: rectangle or trapezoidal")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "output the result as JSON")
	rootCmd.Flags().BoolVar(&profile, "profile", false, "also show the velocity and elevation profile")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, args, &cfg)

	logger, err := newLogger(cfg.LogLevel, quiet)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if cfg.TrackFile == "" {
		cmd.PrintErrln(cmd.UsageString())
		return fmt.Errorf("no GPX file given")
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	logger.Info("reading GPX file", zap.String("file", cfg.TrackFile))
	trk, err := gpx.Parse(cfg.TrackFile)
	if err != nil {
		logger.Error("failed to read track", zap.String("file", cfg.TrackFile), zap.Error(err))
		return err
	}

	logger.Info("track loaded",
		zap.String("name", trk.Name),
		zap.Int("points", len(trk.Points)),
		zap.Int("tracks", trk.TrackCount),
		zap.Int("segments", trk.SegmentCount),
		zap.Bool("from_routes", trk.FromRoutes),
		zap.Duration("duration", trk.Duration()),
	)
	if trk.MissingElevation > 0 {
		logger.Warn("track has no elevation, treating it as flat at 0 m", zap.Int("count", trk.MissingElevation))
	}
	if trk.MissingTime > 0 {
		logger.Warn("points without timestamp", zap.Int("count", trk.MissingTime))
	}

	opts := tour.DefaultOptions(cfg.MassKg)
	opts.Method = integrate.Method(cfg.Method)

	result, err := tour.Summarize(trk.Name, trk.Fixes(), opts)
	if err != nil {
		logger.Error("energy computation failed",
			zap.Stringer("kind", errs.KindOf(err)),
			zap.Error(err),
		)
		return err
	}

	logger.Debug("energy computed",
		zap.Float64("joules", result.TotalEnergyJoules),
		zap.Float64("kcal", result.TotalEnergyKcal),
		zap.String("method", string(result.Method)),
		zap.Float64("mass_kg", cfg.MassKg),
	)

	out := cmd.OutOrStdout()
	if asJSON {
		return report.WriteJSON(out, result, profile)
	}

	report.WriteSummary(out, result, trk.Bound())
	if profile {
		report.WriteProfile(out, result)
	}
	return nil
}

// applyFlags lets explicitly set flags and the positional file win over
// environment configuration
func applyFlags(cmd *cobra.Command, args []string, cfg *config.Config) {
	if len(args) == 1 {
		cfg.TrackFile = args[0]
	}
	if cmd.Flags().Changed("file") {
		cfg.TrackFile = trackFile
	}
	if cmd.Flags().Changed("mass") {
		cfg.MassKg = massKg
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
}

func newLogger(level string, quiet bool) (*zap.Logger, error) {
	if quiet {
		// Production logger config when quiet
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		return zc.Build()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	// Development logger config for better terminal output
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	return zc.Build()
}
