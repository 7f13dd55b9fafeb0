package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/pricing"
	awscostexplorer "github.com/elC0mpa/cloud-advisor/service/aws/costexplorer"
	"github.com/elC0mpa/cloud-advisor/response"
	"github.com/elC0mpa/cloud-advisor/utils"
	"github.com/rs/zerolog"
)

func NewService(prices *pricing.Table, logger zerolog.Logger) *orchestratorService {
	return &orchestratorService{
		newAWSClients: func(ctx context.Context, flags model.Flags) (*AWSClients, error) {
			return NewAWSClients(ctx, flags, prices, logger)
		},
		newGCPClients: func(ctx context.Context, flags model.Flags) (*GCPClients, error) {
			return NewGCPClients(ctx, flags, prices, logger)
		},
		out:    os.Stdout,
		logger: logger,
	}
}

func (s *orchestratorService) Orchestrate(ctx context.Context, flags model.Flags) error {
	switch flags.Provider {
	case "gcp":
		return s.gcpWorkflow(ctx, flags)
	case "all":
		return s.multiCloudWorkflow(ctx, flags)
	default:
		return s.awsWorkflow(ctx, flags)
	}
}

func (s *orchestratorService) awsWorkflow(ctx context.Context, flags model.Flags) error {
	result, err := s.collectAWS(ctx, flags)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(response.ConvertBucketReport(result.AccountID, result.Buckets, result.MonthToDateSpend))
	}

	utils.DrawBucketTable(result.AccountID, result.Buckets, result.MonthToDateSpend)
	if flags.Chart {
		utils.DrawSavingsChart("S3 Estimated Monthly Savings", bucketBars(result.Buckets))
	}
	return nil
}

func (s *orchestratorService) gcpWorkflow(ctx context.Context, flags model.Flags) error {
	result, err := s.collectGCP(ctx, flags)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(response.ConvertRecommendationReport(result.AccountID, result.Recommendations))
	}

	utils.DrawRecommendationTable(result.AccountID, result.Recommendations)
	if flags.Chart {
		utils.DrawSavingsChart("Compute Engine Monthly Savings", instanceBars(result.Recommendations))
	}
	return nil
}

func (s *orchestratorService) multiCloudWorkflow(ctx context.Context, flags model.Flags) error {
	results := s.CollectAll(ctx, flags)

	utils.StopSpinner()

	if flags.Output == "json" {
		return s.writeJSON(response.ConvertAdvisoryResults(results))
	}

	utils.DrawMultiCloudSavingsTable(results)
	if flags.Chart {
		var bars []utils.SavingsBar
		for _, r := range results {
			bars = append(bars, bucketBars(r.Buckets)...)
			bars = append(bars, instanceBars(r.Recommendations)...)
		}
		utils.DrawSavingsChart("Estimated Monthly Savings", bars)
	}
	return nil
}

// CollectAll runs every configured provider concurrently. A failing
// provider is reported in its result rather than aborting the others. GCP
// is skipped when no credentials file is set.
func (s *orchestratorService) CollectAll(ctx context.Context, flags model.Flags) []model.ProviderAdvisoryResult {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []model.ProviderAdvisoryResult
	)

	collectors := map[string]func(context.Context, model.Flags) (model.ProviderAdvisoryResult, error){
		"aws": s.collectAWS,
		"gcp": s.collectGCP,
	}
	if flags.CredentialsFile == "" {
		delete(collectors, "gcp")
	}

	for provider, collect := range collectors {
		wg.Add(1)
		go func(provider string, collect func(context.Context, model.Flags) (model.ProviderAdvisoryResult, error)) {
			defer wg.Done()

			result, err := collect(ctx, flags)
			if err != nil {
				s.logger.Warn().Err(err).Str("provider", provider).Msg("provider advisory failed")
				result = model.ProviderAdvisoryResult{Provider: provider, Error: err}
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(provider, collect)
	}

	wg.Wait()

	utils.SortProviderResults(results)
	return results
}

func (s *orchestratorService) collectAWS(ctx context.Context, flags model.Flags) (model.ProviderAdvisoryResult, error) {
	clients, err := s.newAWSClients(ctx, flags)
	if err != nil {
		return model.ProviderAdvisoryResult{}, err
	}

	account, err := clients.Identity.GetAccountInfo(ctx)
	if err != nil {
		return model.ProviderAdvisoryResult{}, err
	}

	buckets, err := clients.Storage.AnalyzeBuckets(ctx)
	if err != nil {
		return model.ProviderAdvisoryResult{}, err
	}

	result := model.ProviderAdvisoryResult{
		Provider:  "aws",
		AccountID: account.AccountID,
		Buckets:   buckets,
	}

	if flags.Spend {
		spend, err := clients.Spend.GetServiceMonthToDateCost(ctx, awscostexplorer.S3ServiceName)
		if err != nil {
			s.logger.Warn().Err(err).Msg("month-to-date S3 spend unavailable")
		} else {
			result.MonthToDateSpend = *spend
		}
	}

	return result, nil
}

func (s *orchestratorService) collectGCP(ctx context.Context, flags model.Flags) (model.ProviderAdvisoryResult, error) {
	clients, err := s.newGCPClients(ctx, flags)
	if err != nil {
		return model.ProviderAdvisoryResult{}, err
	}
	defer func() {
		if err := clients.Recommendations.Close(); err != nil {
			s.logger.Debug().Err(err).Msg("failed to close recommender client")
		}
	}()

	accountID := clients.ProjectID
	if account, err := clients.Identity.GetAccountInfo(ctx); err != nil {
		s.logger.Warn().Err(err).Str("project", clients.ProjectID).Msg("project metadata unavailable")
	} else {
		accountID = account.AccountID
	}

	recommendations, err := clients.Recommendations.GetMachineTypeRecommendations(ctx, clients.ProjectID)
	if err != nil {
		return model.ProviderAdvisoryResult{}, err
	}

	return model.ProviderAdvisoryResult{
		Provider:        "gcp",
		AccountID:       accountID,
		Recommendations: recommendations,
	}, nil
}

func (s *orchestratorService) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(s.out, string(data))
	return err
}

func bucketBars(buckets []model.BucketSummary) []utils.SavingsBar {
	var bars []utils.SavingsBar
	for _, b := range buckets {
		if amount := utils.ParseDollarAmount(b.EstimatedSavings); amount > 0 {
			bars = append(bars, utils.SavingsBar{Label: b.Name, Amount: amount})
		}
	}
	return bars
}

func instanceBars(recommendations []model.InstanceRecommendation) []utils.SavingsBar {
	var bars []utils.SavingsBar
	for _, r := range recommendations {
		if r.PotentialMonthlySavings > 0 {
			bars = append(bars, utils.SavingsBar{Label: r.InstanceID, Amount: r.PotentialMonthlySavings})
		}
	}
	return bars
}
