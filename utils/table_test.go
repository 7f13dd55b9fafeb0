package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
)

func init() {
	text.DisableColors()
}

func TestRenderRecommendationTable(t *testing.T) {
	out := RenderRecommendationTable([]model.InstanceRecommendation{
		{
			InstanceID:              "vm-1",
			Zone:                    "us-central1-a",
			CurrentMachineType:      "n1-standard-2",
			RecommendedMachineType:  "n1-standard-1",
			CurrentCost:             0.095,
			RecommendedCost:         0.0475,
			PotentialMonthlySavings: 34.6,
			RecommendationReason:    "Save cost by changing machine type",
		},
		{
			InstanceID:              "vm-2",
			Zone:                    "europe-west1-b",
			CurrentMachineType:      "e2-medium",
			RecommendedMachineType:  "e2-standard-2",
			PotentialMonthlySavings: -33.58,
		},
	})

	assert.Contains(t, out, "vm-1")
	assert.Contains(t, out, "us-central1-a")
	assert.Contains(t, out, "34.60 USD")
	assert.Contains(t, out, "-33.58 USD")
	assert.Contains(t, out, "1.02 USD")
	assert.Less(t, strings.Index(out, "vm-1"), strings.Index(out, "vm-2"))
}

func TestTotalInstanceSavings(t *testing.T) {
	total := TotalInstanceSavings([]model.InstanceRecommendation{
		{PotentialMonthlySavings: 10},
		{PotentialMonthlySavings: -4},
	})
	assert.Equal(t, 6.0, total)
	assert.Zero(t, TotalInstanceSavings(nil))
}

func TestRenderBucketTable(t *testing.T) {
	out := RenderBucketTable([]model.BucketSummary{
		{Name: "media", FormattedSize: "4.66 GB", StorageClass: "STANDARD", Region: "us-east-1", Recommendation: "Consider moving to Intelligent-Tiering for cost savings", EstimatedSavings: "$0.05"},
		{Name: "cold", FormattedSize: "1.00 GB", StorageClass: "GLACIER", Region: "eu-west-1", Recommendation: "No recommendation", EstimatedSavings: "$0.00"},
	})

	assert.Contains(t, out, "media")
	assert.Contains(t, out, "4.66 GB")
	assert.Contains(t, out, "GLACIER")
	assert.Contains(t, out, "eu-west-1")
	assert.Contains(t, out, "$0.05")
	assert.Less(t, strings.Index(out, "media"), strings.Index(out, "cold"))
}

func TestTotalBucketSavings(t *testing.T) {
	total := TotalBucketSavings([]model.BucketSummary{
		{EstimatedSavings: "$1.25"},
		{EstimatedSavings: "$0.00"},
		{EstimatedSavings: "$2.50"},
	})
	assert.InDelta(t, 3.75, total, 1e-9)
}

func TestProviderSavings(t *testing.T) {
	findings, savings := ProviderSavings(model.ProviderAdvisoryResult{
		Recommendations: []model.InstanceRecommendation{
			{PotentialMonthlySavings: 20},
			{PotentialMonthlySavings: -5},
			{PotentialMonthlySavings: 0},
		},
		Buckets: []model.BucketSummary{
			{EstimatedSavings: "$1.50"},
			{EstimatedSavings: "$0.00"},
		},
	})

	assert.Equal(t, 2, findings)
	assert.InDelta(t, 16.5, savings, 1e-9)
}

func TestProviderSavings_MatchesTableTotals(t *testing.T) {
	recs := []model.InstanceRecommendation{
		{PotentialMonthlySavings: 10},
		{PotentialMonthlySavings: -25},
	}
	buckets := []model.BucketSummary{{EstimatedSavings: "$2.25"}}

	findings, savings := ProviderSavings(model.ProviderAdvisoryResult{Recommendations: recs, Buckets: buckets})

	assert.Equal(t, 2, findings)
	assert.InDelta(t, TotalInstanceSavings(recs)+TotalBucketSavings(buckets), savings, 1e-9)
	assert.InDelta(t, -12.75, savings, 1e-9)
}

func TestSortProviderResults(t *testing.T) {
	results := []model.ProviderAdvisoryResult{
		{Provider: "gcp"},
		{Provider: "aws", Error: errors.New("no credentials")},
	}

	SortProviderResults(results)
	assert.Equal(t, "aws", results[0].Provider)
	assert.Equal(t, "gcp", results[1].Provider)
}

func TestTopSavings(t *testing.T) {
	bars := []SavingsBar{
		{"a", 1},
		{"b", 0},
		{"c", 5},
		{"d", -2},
		{"e", 3},
	}

	top := TopSavings(bars, 2)
	assert.Equal(t, []SavingsBar{{"c", 5}, {"e", 3}}, top)
	assert.Len(t, TopSavings(bars, 10), 3)
	assert.Empty(t, TopSavings(nil, 3))
}

func TestAssignRankedColors(t *testing.T) {
	bars := make([]SavingsBar, 8)
	colors := assignRankedColors(bars)

	assert.Equal(t, ColorRank1, colors[0])
	assert.Equal(t, ColorRank6, colors[5])
	assert.Equal(t, ColorRank6, colors[7])
}
