package response

import (
	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/utils"
)

const currencyUSD = "USD"

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertRecommendations converts []model.InstanceRecommendation to response format
func ConvertRecommendations(recommendations []model.InstanceRecommendation) []InstanceRecommendation {
	result := make([]InstanceRecommendation, 0, len(recommendations))
	for _, r := range recommendations {
		result = append(result, InstanceRecommendation{
			InstanceID:              r.InstanceID,
			Zone:                    r.Zone,
			CurrentMachineType:      r.CurrentMachineType,
			RecommendedMachineType:  r.RecommendedMachineType,
			CurrentCost:             r.CurrentCost,
			RecommendedCost:         r.RecommendedCost,
			PotentialMonthlySavings: r.PotentialMonthlySavings,
			RecommendationReason:    r.RecommendationReason,
		})
	}
	return result
}

func ConvertRecommendationReport(projectID string, recommendations []model.InstanceRecommendation) *RecommendationReport {
	return &RecommendationReport{
		Provider:         "gcp",
		ProjectID:        projectID,
		Recommendations:  ConvertRecommendations(recommendations),
		NetMonthlySaving: utils.TotalInstanceSavings(recommendations),
		Currency:         currencyUSD,
	}
}

// ConvertBucketSummaries converts []model.BucketSummary to response format
func ConvertBucketSummaries(buckets []model.BucketSummary) []BucketSummary {
	result := make([]BucketSummary, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, BucketSummary{
			Name:             b.Name,
			Size:             b.FormattedSize,
			StorageClass:     b.StorageClass,
			Region:           b.Region,
			Recommendation:   b.Recommendation,
			EstimatedSavings: b.EstimatedSavings,
		})
	}
	return result
}

func ConvertBucketReport(accountID string, buckets []model.BucketSummary, monthToDateSpend string) *BucketReport {
	return &BucketReport{
		Provider:              "aws",
		AccountID:             accountID,
		Buckets:               ConvertBucketSummaries(buckets),
		TotalEstimatedSavings: utils.TotalBucketSavings(buckets),
		MonthToDateSpend:      monthToDateSpend,
		Currency:              currencyUSD,
	}
}

// ConvertAdvisoryResults summarizes per-provider results, keeping failed
// providers in-band with their error message.
func ConvertAdvisoryResults(results []model.ProviderAdvisoryResult) *MultiCloudSavingsSummary {
	summary := &MultiCloudSavingsSummary{
		Providers: make([]ProviderSavingsSummary, 0, len(results)),
		Currency:  currencyUSD,
	}

	for _, r := range results {
		if r.Error != nil {
			summary.Providers = append(summary.Providers, ProviderSavingsSummary{
				Provider:  r.Provider,
				AccountID: r.AccountID,
				Error:     r.Error.Error(),
			})
			continue
		}

		findings, savings := utils.ProviderSavings(r)
		summary.Providers = append(summary.Providers, ProviderSavingsSummary{
			Provider:                r.Provider,
			AccountID:               r.AccountID,
			Findings:                findings,
			EstimatedMonthlySavings: savings,
		})
		summary.Total += savings

		switch r.Provider {
		case "gcp":
			summary.GCP = ConvertRecommendationReport(r.AccountID, r.Recommendations)
		case "aws":
			summary.AWS = ConvertBucketReport(r.AccountID, r.Buckets, r.MonthToDateSpend)
		}
	}

	return summary
}
