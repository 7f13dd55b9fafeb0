package utils

import (
	"fmt"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBucketTable(accountID string, buckets []model.BucketSummary, monthToDateSpend string) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🪣  S3 STORAGE ADVISOR"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountID))
	if monthToDateSpend != "" {
		fmt.Printf(" S3 spend this month: %s\n", text.FgHiYellow.Sprint(monthToDateSpend))
	}
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(buckets) == 0 {
		fmt.Println(text.FgHiGreen.Sprint(" ✅ No buckets found"))
		return
	}

	fmt.Println(RenderBucketTable(buckets))
}

// RenderBucketTable renders bucket summaries in listing order with a savings footer
func RenderBucketTable(buckets []model.BucketSummary) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Bucket", "Size", "Storage Class", "Region", "Recommendation", "Est. Monthly Savings"})

	for _, bucket := range buckets {
		tw.AppendRow(populateBucketRow(bucket))
	}

	total := TotalBucketSavings(buckets)
	tw.AppendFooter(table.Row{"", "", "", "", "Total", colorSavings(total, fmt.Sprintf("$%.2f", total))})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}

func populateBucketRow(bucket model.BucketSummary) table.Row {
	savings := ParseDollarAmount(bucket.EstimatedSavings)

	recommendation := text.FgGreen.Sprint(bucket.Recommendation)
	if savings > 0 {
		recommendation = text.FgYellow.Sprint(bucket.Recommendation)
	}

	return table.Row{
		text.FgBlue.Sprint(bucket.Name),
		bucket.FormattedSize,
		bucket.StorageClass,
		bucket.Region,
		recommendation,
		colorSavings(savings, bucket.EstimatedSavings),
	}
}

// TotalBucketSavings sums the formatted savings of every bucket
func TotalBucketSavings(buckets []model.BucketSummary) float64 {
	var total float64
	for _, bucket := range buckets {
		total += ParseDollarAmount(bucket.EstimatedSavings)
	}
	return total
}
