package awscostexplorer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
)

const (
	S3ServiceName = "Amazon Simple Storage Service"

	costsAggregation = "UnblendedCost"
	dateLayout       = "2006-01-02"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
		now:    time.Now,
	}
}

// GetServiceMonthToDateCost returns the unblended cost of a single service
// from the first of the current month until today, as "12.34 USD".
func (s *service) GetServiceMonthToDateCost(ctx context.Context, serviceName string) (*string, error) {
	today := s.now()
	firstOfMonth := s.getFirstDayOfMonth(today)

	// The end date is exclusive, so nothing has been billed yet on the 1st.
	if sameDay(firstOfMonth, today) {
		total := fmt.Sprintf("%.2f %s", 0.0, "USD")
		return &total, nil
	}

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(firstOfMonth.Format(dateLayout)),
			End:   aws.String(today.Format(dateLayout)),
		},
		Metrics: []string{costsAggregation},
		Filter: &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionService,
				Values: []string{serviceName},
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost and usage for %s: %w", serviceName, err)
	}

	var amount float64
	unit := "USD"
	for _, result := range output.ResultsByTime {
		metric, ok := result.Total[costsAggregation]
		if !ok || metric.Amount == nil {
			continue
		}

		value, err := strconv.ParseFloat(*metric.Amount, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cost amount %q: %w", *metric.Amount, err)
		}
		amount += value
		if metric.Unit != nil {
			unit = *metric.Unit
		}
	}

	total := fmt.Sprintf("%.2f %s", amount, unit)
	return &total, nil
}

func (s *service) getFirstDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
