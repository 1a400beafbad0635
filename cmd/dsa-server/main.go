package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dsa/internal/app"
	"dsa/internal/log"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		home       string
		configPath string
		addr       string
		logLevel   string
		preload    bool
	)
	cmd := &cobra.Command{
		Use:          "dsa-server",
		Short:        "Serve graph algorithms over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(app.LoadOptions{Home: home, ConfigPath: configPath})
			if err != nil {
				return err
			}
			// The service always logs JSON.
			cfg.LogFormat = "json"
			if cmd.Flags().Changed("addr") {
				cfg.ServerAddr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			w, err := app.NewWire(cfg, nil)
			if err != nil {
				return err
			}
			log.Configure(log.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "dsa-server"})

			srv, err := w.NewServer(preload)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	f := cmd.Flags()
	f.StringVar(&home, "home", "", "data dir (default $DSA_HOME or ~/.dsa)")
	f.StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	f.StringVar(&addr, "addr", "", "listen address (default 127.0.0.1:8080)")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.BoolVar(&preload, "preload", true, "register every stored graph at start-up")
	return cmd
}
