package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/core"
	"github.com/katalvlaran/valvenet/logging"
	"github.com/katalvlaran/valvenet/oracle"
	"github.com/katalvlaran/valvenet/parse"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logPretty  bool

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "valvenet",
		Short:         "Plan site activations over a tunnel network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&a.logPretty, "log-pretty", false, "human-readable console logs")

	root.AddCommand(newSolveCmd(a), newSeedCmd(a), newDistancesCmd(a))

	return root
}

// setup loads the config, applies global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-pretty") {
		cfg.Logging.Pretty = a.logPretty
	}
	a.cfg = cfg
	a.log = logging.NewWriter(cfg.Logging, a.stderr)

	return nil
}

// load parses the network file and wraps it in an oracle.
func (a *app) load(path string) (*core.Graph, *oracle.Oracle, error) {
	g, err := parse.File(path)
	if err != nil {
		return nil, nil, err
	}
	o, err := oracle.New(g, oracle.WithLogger(a.log))
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug().Str("file", path).Int("sites", g.Len()).Int("active", len(g.ActiveSites())).Msg("network loaded")

	return g, o, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
