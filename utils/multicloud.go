package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawMultiCloudSavingsTable displays advisory results across providers
func DrawMultiCloudSavingsTable(results []model.ProviderAdvisoryResult) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💰 MULTI-CLOUD SAVINGS ADVISOR"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	drawSavingsSummaryTable(results)

	for _, result := range results {
		if result.Error != nil {
			fmt.Printf("\n %s %s: %s\n",
				text.FgHiRed.Sprint("⚠"),
				text.FgHiYellow.Sprint(strings.ToUpper(result.Provider)),
				text.FgRed.Sprint(result.Error.Error()))
			continue
		}

		switch result.Provider {
		case "gcp":
			DrawRecommendationTable(result.AccountID, result.Recommendations)
		case "aws":
			DrawBucketTable(result.AccountID, result.Buckets, result.MonthToDateSpend)
		}
	}
}

func drawSavingsSummaryTable(results []model.ProviderAdvisoryResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Savings Summary by Provider")
	tw.AppendHeader(table.Row{"Provider", "Account/Project ID", "Findings", "Est. Monthly Savings", "Status"})
	tw.SetStyle(table.StyleRounded)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignCenter},
	})

	var totalSavings float64
	totalFindings := 0

	for _, result := range results {
		if result.Error != nil {
			tw.AppendRow(table.Row{
				text.FgHiYellow.Sprint(strings.ToUpper(result.Provider)),
				text.FgRed.Sprint("Error"),
				"-",
				"-",
				text.FgRed.Sprint("⚠ Failed"),
			})
			continue
		}

		findings, savings := ProviderSavings(result)
		totalFindings += findings
		totalSavings += savings

		status := text.FgHiGreen.Sprint("✅ Optimized")
		if savings > 0 {
			status = text.FgHiYellow.Sprint("💡 Savings Available")
		}

		tw.AppendRow(table.Row{
			text.FgHiCyan.Sprint(strings.ToUpper(result.Provider)),
			result.AccountID,
			findings,
			colorSavings(savings, fmt.Sprintf("%.2f USD", savings)),
			status,
		})
	}

	if len(results) > 1 {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{
			text.FgHiWhite.Sprint("TOTAL"),
			"",
			totalFindings,
			colorSavings(totalSavings, fmt.Sprintf("%.2f USD", totalSavings)),
			"",
		})
	}

	tw.Render()
}

// ProviderSavings counts the findings with a positive saving and returns
// the net monthly savings, matching the per-provider table totals.
func ProviderSavings(result model.ProviderAdvisoryResult) (int, float64) {
	findings := 0

	for _, rec := range result.Recommendations {
		if rec.PotentialMonthlySavings > 0 {
			findings++
		}
	}

	for _, bucket := range result.Buckets {
		if ParseDollarAmount(bucket.EstimatedSavings) > 0 {
			findings++
		}
	}

	return findings, TotalInstanceSavings(result.Recommendations) + TotalBucketSavings(result.Buckets)
}

// SortProviderResults sorts results by provider name for consistent display
func SortProviderResults(results []model.ProviderAdvisoryResult) {
	providerOrder := map[string]int{"aws": 1, "gcp": 2}
	sort.Slice(results, func(i, j int) bool {
		return providerOrder[results[i].Provider] < providerOrder[results[j].Provider]
	})
}
