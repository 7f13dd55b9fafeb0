package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/cloud-advisor/cmd/mcp/tools"
	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/elC0mpa/cloud-advisor/utils"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	// stdout carries the protocol, logs go to stderr as JSON
	logger := utils.NewStderrLogger(cfg.LogLevel, false)

	prices, err := pricing.Load(cfg.PricingFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load price table")
	}

	s := server.NewMCPServer(
		"cloud-advisor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	opts := tools.Options{
		AWSRegion:          cfg.AWSRegion,
		AWSProfile:         cfg.AWSProfile,
		GCPCredentialsFile: cfg.GCPCredentialsFile,
		Concurrency:        cfg.Concurrency,
		Prices:             prices,
		Logger:             logger,
	}

	// Register tools for each provider
	tools.RegisterAWSTools(s, opts)
	tools.RegisterGCPTools(s, opts)
	tools.RegisterMultiCloudTools(s, opts)

	logger.Info().Bool("gcp", cfg.HasGCP()).Msg("serving cloud advisor tools on stdio")

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
