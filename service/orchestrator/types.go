package orchestrator

import (
	"context"
	"io"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/service"
	"github.com/rs/zerolog"
)

// AWSClients groups the services of one AWS workflow
type AWSClients struct {
	Identity service.IdentityService
	Storage  service.StorageService
	Spend    service.SpendService
}

// GCPClients groups the services of one GCP workflow
type GCPClients struct {
	ProjectID       string
	Identity        service.IdentityService
	Recommendations service.RecommendationService
}

type (
	awsFactory func(ctx context.Context, flags model.Flags) (*AWSClients, error)
	gcpFactory func(ctx context.Context, flags model.Flags) (*GCPClients, error)
)

type orchestratorService struct {
	newAWSClients awsFactory
	newGCPClients gcpFactory
	out           io.Writer
	logger        zerolog.Logger
}

type OrchestratorService interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}
