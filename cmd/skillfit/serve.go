package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillfit/internal/config"
	"github.com/jonathan/skillfit/internal/extraction"
	"github.com/jonathan/skillfit/internal/llm"
	"github.com/jonathan/skillfit/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveSessionTTL time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for skill extraction and gap analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().DurationVar(&serveSessionTTL, "session-ttl", 0, "How long stored documents live (default 1h)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Explicit flags win over the config file, which wins over defaults.
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	cfg = cfg.MergeWithDefaults(config.Config{Port: servePort, SessionTTL: "1h"})

	ttl := serveSessionTTL
	if ttl == 0 {
		ttl = cfg.SessionTTLDuration()
	}

	// API key from config file, or GEMINI_API_KEY env var
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	// Without a key the server still serves pre-extracted analysis; the
	// extraction-backed endpoints report 503.
	var extractor *extraction.Extractor
	if apiKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		extractor = extraction.NewExtractor(client)
	} else {
		fmt.Fprintln(os.Stderr, "Warning: no API key configured; text extraction endpoints disabled")
	}

	srv := server.New(server.Config{Port: cfg.Port, SessionTTL: ttl}, extractor)
	return srv.Start()
}
