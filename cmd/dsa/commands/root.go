package commands

import (
	"time"

	"github.com/spf13/cobra"

	"dsa/internal/app"
)

var (
	home       string
	configPath string
	logLevel   string
	logFormat  string
	serverAddr string
	graphKind  string
	timeout    time.Duration

	wire *app.Wire
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dsa",
		Short:        "Data structures and graph algorithms toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(app.LoadOptions{Home: home, ConfigPath: configPath})
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("server") {
				cfg.ServerAddr = serverAddr
			}
			if flags.Changed("graph-kind") {
				cfg.GraphKind = graphKind
			}
			if flags.Changed("timeout") {
				cfg.RequestTimeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, nil)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "data dir (default $DSA_HOME or ~/.dsa)")
	pf.StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "log format (json or console)")
	pf.StringVar(&serverAddr, "server", "", "dsa-server address for remote commands")
	pf.StringVar(&graphKind, "graph-kind", "", "graph layout for parsed files (dense, sparse, auto)")
	pf.DurationVar(&timeout, "timeout", 0, "HTTP request timeout")

	root.AddCommand(sortCmd(), treeCmd(), graphCmd(), remoteCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
