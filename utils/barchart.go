package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#1a9850"
	ColorRank2 = "#66c2a5"
	ColorRank3 = "#abdda4"
	ColorRank4 = "#fee08b"
	ColorRank5 = "#f46d43"
	ColorRank6 = "#d73027"

	maxChartBars = 12
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// SavingsBar is one labelled bar of a savings chart
type SavingsBar struct {
	Label  string
	Amount float64
}

// DrawSavingsChart plots the largest positive savings as a bar chart
func DrawSavingsChart(title string, bars []SavingsBar) {
	bars = TopSavings(bars, maxChartBars)
	if len(bars) == 0 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprintf(" 📊 %s", title))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(130, 20)

	colors := assignRankedColors(bars)
	for idx, bar := range bars {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f", bar.Label, bar.Amount),
			Values: []barchart.BarValue{
				{
					Name:  bar.Label,
					Value: bar.Amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

// TopSavings keeps the n largest positive amounts, largest first
func TopSavings(bars []SavingsBar, n int) []SavingsBar {
	positive := make([]SavingsBar, 0, len(bars))
	for _, bar := range bars {
		if bar.Amount > 0 {
			positive = append(positive, bar)
		}
	}

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Amount > positive[j].Amount
	})

	if len(positive) > n {
		positive = positive[:n]
	}
	return positive
}

// assignRankedColors expects bars sorted by amount, largest first
func assignRankedColors(bars []SavingsBar) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	colors := make([]string, len(bars))
	for rank := range bars {
		if rank < len(palette) {
			colors[rank] = palette[rank]
		} else {
			colors[rank] = palette[len(palette)-1]
		}
	}
	return colors
}
