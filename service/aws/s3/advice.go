package awss3

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/cloud-advisor/pricing"
)

const (
	StorageClassStandard = "STANDARD"

	RecommendIntelligentTiering = "Consider moving to Intelligent-Tiering for cost savings"
	RecommendStandardIA         = "Consider Standard-IA for infrequently accessed data"
	NoRecommendation            = "No recommendation"

	defaultRegion = "us-east-1"
	euRegion      = "eu-west-1"

	// Size thresholds are decimal bytes and exclusive
	intelligentTieringThreshold = 1_000_000_000
	standardIAThreshold         = 100_000_000

	bytesPerGiB = 1024.0 * 1024.0 * 1024.0
)

// NormalizeRegion maps a bucket location constraint to a region code.
// An empty constraint means us-east-1 and the legacy "EU" value means eu-west-1.
func NormalizeRegion(constraint string) string {
	switch {
	case constraint == "":
		return defaultRegion
	case strings.EqualFold(constraint, "EU"):
		return euRegion
	default:
		return constraint
	}
}

// Recommend suggests a cheaper tier for large STANDARD buckets
func Recommend(storageClass string, sizeInBytes int64) string {
	if storageClass != StorageClassStandard {
		return NoRecommendation
	}

	switch {
	case sizeInBytes > intelligentTieringThreshold:
		return RecommendIntelligentTiering
	case sizeInBytes > standardIAThreshold:
		return RecommendStandardIA
	default:
		return NoRecommendation
	}
}

// EstimateMonthlySavings returns the monthly saving of moving a STANDARD
// bucket to the suggested tier, formatted as dollars and never negative.
func EstimateMonthlySavings(storageClass string, sizeInBytes int64, rates pricing.StorageRates) string {
	sizeInGB := float64(sizeInBytes) / bytesPerGiB

	currentCost := sizeInGB * rates.Standard
	estimatedCost := currentCost

	if storageClass == StorageClassStandard {
		switch {
		case sizeInBytes > intelligentTieringThreshold:
			estimatedCost = sizeInGB * rates.IntelligentTiering
		case sizeInBytes > standardIAThreshold:
			estimatedCost = sizeInGB * rates.StandardIA
		}
	}

	savings := currentCost - estimatedCost
	if savings <= 0 {
		return "$0.00"
	}
	return fmt.Sprintf("$%.2f", savings)
}
