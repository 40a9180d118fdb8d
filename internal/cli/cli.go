// Package cli implements the subiso command-line interface.
//
// # Commands
//
//   - match: search a pattern file inside a target file
//   - generate: write a generated graph (random, grid, complete, ...) to a file
//   - bench: run a benchmark suite and append records to a results file
//   - report: aggregate a results file into per-size averages and speed-ups
//   - render: draw a target, optionally with a found embedding highlighted
//
// # Configuration
//
// Settings are resolved by viper in this order: flags, SUBISO_* environment
// variables, the config file (subiso.yaml or subiso.toml in the working
// directory or $XDG_CONFIG_HOME/subiso, or --config), then defaults.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) enables debug
// level. Command results go to stdout.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// appName is the application name used for config lookup and display.
	appName = "subiso"

	// envPrefix prefixes environment overrides, e.g. SUBISO_ALGORITHM.
	envPrefix = "SUBISO"
)

// CLI holds shared state for all commands of one invocation.
type CLI struct {
	v      *viper.Viper
	cfg    Config
	logW   io.Writer
	logger *log.Logger

	cfgFile string
	verbose bool
}

// New creates a CLI that logs to logW.
func New(logW io.Writer) *CLI {
	return &CLI{
		v:      viper.New(),
		logW:   logW,
		logger: newLogger(logW, log.InfoLevel),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "subiso finds subgraph embeddings",
		Long:          `subiso decides whether a pattern graph embeds as a subgraph of a target graph, using a naive exhaustive search or an ordered backtracking (RI) search, and benchmarks the two.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			level, err := log.ParseLevel(c.cfg.LogLevel)
			if err != nil {
				level = log.InfoLevel
				c.logger.Warn("unknown log level, using info", "level", c.cfg.LogLevel)
			}
			if c.verbose {
				level = log.DebugLevel
			}
			c.logger.SetLevel(level)
			if used := c.v.ConfigFileUsed(); used != "" {
				c.logger.Debug("config loaded", "file", used)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: ./subiso.yaml or $XDG_CONFIG_HOME/subiso/subiso.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(c.matchCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// Execute runs the CLI with args (os.Args[1:] in main) and returns the first
// command error.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := New(stderr).RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}
