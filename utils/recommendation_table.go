package utils

import (
	"fmt"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawRecommendationTable(projectID string, recommendations []model.InstanceRecommendation) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🖥  GCP MACHINE TYPE RECOMMENDATIONS"))
	fmt.Printf(" Project ID: %s\n", text.FgBlue.Sprint(projectID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(recommendations) == 0 {
		fmt.Println(text.FgHiGreen.Sprint(" ✅ No right-sizing recommendations"))
		return
	}

	fmt.Println(RenderRecommendationTable(recommendations))
}

// RenderRecommendationTable renders recommendations in listing order with a net savings footer
func RenderRecommendationTable(recommendations []model.InstanceRecommendation) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{
		"Instance",
		"Zone",
		"Current Type\n(USD/h)",
		"Recommended Type\n(USD/h)",
		"Monthly Savings",
		"Reason",
	})

	for _, rec := range recommendations {
		tw.AppendRow(populateRecommendationRow(rec))
	}

	total := TotalInstanceSavings(recommendations)
	tw.AppendFooter(table.Row{"", "", "", "Net Savings", colorSavings(total, fmt.Sprintf("%.2f USD", total)), ""})

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 6, WidthMax: 48},
	})

	return tw.Render()
}

func populateRecommendationRow(rec model.InstanceRecommendation) table.Row {
	row := make(table.Row, 6)

	row[0] = text.FgBlue.Sprint(rec.InstanceID)
	row[1] = rec.Zone
	row[2] = fmt.Sprintf("%s\n(%.4f)", rec.CurrentMachineType, rec.CurrentCost)
	row[3] = fmt.Sprintf("%s\n(%.4f)", rec.RecommendedMachineType, rec.RecommendedCost)
	row[4] = colorSavings(rec.PotentialMonthlySavings, fmt.Sprintf("%.2f USD", rec.PotentialMonthlySavings))
	row[5] = rec.RecommendationReason

	return row
}

// TotalInstanceSavings sums the monthly savings, negative entries included
func TotalInstanceSavings(recommendations []model.InstanceRecommendation) float64 {
	var total float64
	for _, rec := range recommendations {
		total += rec.PotentialMonthlySavings
	}
	return total
}

func colorSavings(amount float64, value string) string {
	switch {
	case amount > 0:
		return text.FgHiGreen.Sprint(value)
	case amount < 0:
		return text.FgHiRed.Sprint(value)
	default:
		return value
	}
}
