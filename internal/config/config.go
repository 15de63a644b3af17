package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/planbiir/tourenergy/internal/errs"
	"github.com/planbiir/tourenergy/internal/integrate"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TOURENERGY_MASS_KG
const EnvPrefix = "TOURENERGY"

// DefaultMassKg is the tool's rider plus bike mass when none is configured
const DefaultMassKg = 100.0

// Config holds the tool settings read from the environment
type Config struct {
	TrackFile string  `mapstructure:"TRACK_FILE"`
	MassKg    float64 `mapstructure:"MASS_KG"`
	Method    string  `mapstructure:"METHOD"`
	LogLevel  string  `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from the environment. Variables from the given
// dotenv files (".env" when none are given) are added first without
// overriding what is already set; a missing file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("TRACK_FILE", "")
	v.SetDefault("MASS_KG", DefaultMassKg)
	v.SetDefault("METHOD", string(integrate.Trapezoidal))
	v.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks the values the energy computation depends on
func (c Config) Validate() error {
	if c.MassKg <= 0 {
		return errs.New(errs.InvalidInput, "mass must be a positive number of kg, got %g", c.MassKg)
	}
	if _, err := integrate.ParseMethod(c.Method); err != nil {
		return err
	}
	return nil
}
