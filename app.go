package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/elC0mpa/cloud-advisor/service/flag"
	"github.com/elC0mpa/cloud-advisor/service/orchestrator"
	"github.com/elC0mpa/cloud-advisor/utils"
)

func main() {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := utils.NewStderrLogger(flags.LogLevel, true)

	if flags.Output == "table" {
		utils.DrawBanner()
	}
	utils.StartSpinner()

	prices, err := pricing.Load(flags.PricingFile)
	if err != nil {
		utils.StopSpinner()
		logger.Fatal().Err(err).Msg("failed to load price table")
	}

	orchestratorService := orchestrator.NewService(prices, logger)

	err = orchestratorService.Orchestrate(context.Background(), flags)
	if err != nil {
		utils.StopSpinner()
		logger.Fatal().Err(err).Str("provider", flags.Provider).Msg("advisory failed")
	}
}
