package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveChromePath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the résumé wizard, preview, draft assistant
and PDF export as REST endpoints. SESSION_SECRET must be set. The draft
assistant is disabled when no API key is configured for the LLM provider.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveChromePath, "chrome", "", "Path to the Chrome/Chromium binary used for PDF export")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{Port: servePort, ChromePath: serveChromePath})
	if err != nil {
		return err
	}

	sessionCfg, err := config.NewSessionConfig()
	if err != nil {
		return err
	}

	client, err := newLLMClient(context.Background(), cfg)
	if err != nil {
		return err
	}
	if client == nil {
		log.Printf("[SERVER] No API key for provider %q, draft assistant disabled", cfg.Provider)
	} else {
		defer client.Close()
	}

	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		Session: sessionCfg,
		Deps: session.Deps{
			LLM:           client,
			Printer:       export.NewChromePrinter(cfg.ChromePath, cfg.Verbose),
			DraftTimeout:  cfg.DraftTimeout(),
			ExportTimeout: cfg.ExportTimeout(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
