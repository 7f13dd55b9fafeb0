package service

import (
	"context"

	"github.com/elC0mpa/cloud-advisor/model"
)

// IdentityService provides cloud account/project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// RecommendationService provides compute right-sizing recommendations
type RecommendationService interface {
	GetMachineTypeRecommendations(ctx context.Context, projectID string) ([]model.InstanceRecommendation, error)
	Close() error
}

// StorageService provides storage-tier advice
type StorageService interface {
	AnalyzeBuckets(ctx context.Context) ([]model.BucketSummary, error)
}

// SpendService provides actual month-to-date spend of a single service
type SpendService interface {
	GetServiceMonthToDateCost(ctx context.Context, serviceName string) (*string, error)
}
