package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/careerkit/career-tools/internal/llm"
	"github.com/careerkit/career-tools/internal/server"
)

var (
	servePort       int
	upstreamTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the generation endpoints for the interactive career tools.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().DurationVar(&upstreamTimeout, "upstream-timeout", llm.DefaultTimeout, "Per-attempt timeout for generation calls")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	llmConfig := llm.LoadConfig()

	// The API key env var follows the configured provider.
	keyVar := "GEMINI_API_KEY"
	if llmConfig.Provider == llm.ProviderOpenAI {
		keyVar = "OPENAI_API_KEY"
	}
	apiKey := os.Getenv(keyVar)
	if apiKey == "" {
		return fmt.Errorf("%s environment variable is required", keyVar)
	}

	cfg := server.Config{
		Port:            servePort,
		APIKey:          apiKey,
		LLM:             llmConfig,
		UpstreamTimeout: upstreamTimeout,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
