package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the commands.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	// Algorithm is the default strategy of match and render.
	Algorithm string `mapstructure:"algorithm"`

	// MaxSteps bounds one search; 0 means unlimited.
	MaxSteps int64 `mapstructure:"max_steps"`

	// Timeout bounds one search; 0 means none.
	Timeout time.Duration `mapstructure:"timeout"`

	// Results is the records file of bench and report (.json or .parquet).
	Results string `mapstructure:"results"`

	// Suite is the TOML suite bench runs; "" runs the built-in sweep.
	Suite string `mapstructure:"suite"`

	// Parallel bounds concurrent benchmark jobs; 0 means GOMAXPROCS.
	Parallel int `mapstructure:"parallel"`

	// MetricsFile, when set, receives a Prometheus textfile after bench.
	MetricsFile string `mapstructure:"metrics_file"`
}

const (
	defaultLogLevel  = "info"
	defaultAlgorithm = "ri"
	defaultResults   = "performance_results.json"
)

// setDefaults registers the default value of every Config key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("algorithm", defaultAlgorithm)
	v.SetDefault("max_steps", 0)
	v.SetDefault("timeout", "0s")
	v.SetDefault("results", defaultResults)
	v.SetDefault("suite", "")
	v.SetDefault("parallel", 0)
	v.SetDefault("metrics_file", "")
}

// loadConfig resolves c.cfg for cmd: defaults, config file, environment,
// then the flags of cmd (a flag "max-steps" binds key "max_steps").
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	v := c.v
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if c.cfgFile != "" {
		v.SetConfigFile(c.cfgFile)
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	if err := bindFlags(v, cmd.InheritedFlags()); err != nil {
		return err
	}

	if err := v.Unmarshal(&c.cfg); err != nil {
		return fmt.Errorf("config: unable to decode: %w", err)
	}
	if c.cfg.MaxSteps < 0 || c.cfg.Timeout < 0 || c.cfg.Parallel < 0 {
		return fmt.Errorf("config: max_steps, timeout and parallel must be ≥ 0")
	}

	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if e := v.BindPFlag(key, f); e != nil && err == nil {
			err = fmt.Errorf("config: bind --%s: %w", f.Name, e)
		}
	})

	return err
}

// configDir returns $XDG_CONFIG_HOME/subiso, or ~/.config/subiso.
func configDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
