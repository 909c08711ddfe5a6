package main

import (
	"fmt"

	"medinote/cmd/bootstrap"
	"medinote/config"

	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := bootstrap.SetupLogger(cfg.Log)
			log.Info("Configuration loaded successfully")

			app, err := bootstrap.New(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run()
		},
	}
}
