package awscostexplorer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
)

type service struct {
	client costAndUsageAPI
	now    func() time.Time
}

type CostService interface {
	GetServiceMonthToDateCost(ctx context.Context, serviceName string) (*string, error)
}

type costAndUsageAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}
