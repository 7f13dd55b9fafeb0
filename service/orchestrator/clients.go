package orchestrator

import (
	"context"
	"fmt"

	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/pricing"
	awsconfig "github.com/elC0mpa/cloud-advisor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/cloud-advisor/service/aws/costexplorer"
	awss3 "github.com/elC0mpa/cloud-advisor/service/aws/s3"
	awssts "github.com/elC0mpa/cloud-advisor/service/aws/sts"
	gcpconfig "github.com/elC0mpa/cloud-advisor/service/gcp/config"
	gcpidentity "github.com/elC0mpa/cloud-advisor/service/gcp/identity"
	gcprecommender "github.com/elC0mpa/cloud-advisor/service/gcp/recommender"
	"github.com/rs/zerolog"
)

// NewAWSClients loads the AWS configuration and builds the services of the
// S3 workflow.
func NewAWSClients(ctx context.Context, flags model.Flags, prices *pricing.Table, logger zerolog.Logger) (*AWSClients, error) {
	cfg, err := awsconfig.NewService().GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return nil, err
	}

	return &AWSClients{
		Identity: awssts.NewService(cfg),
		Storage:  awss3.NewService(cfg, prices.Storage, flags.Concurrency, logger),
		Spend:    awscostexplorer.NewService(cfg),
	}, nil
}

// NewGCPClients reads the service account key named by the flags and opens
// the recommender and resource manager clients with it. The caller must
// close Recommendations.
func NewGCPClients(ctx context.Context, flags model.Flags, prices *pricing.Table, logger zerolog.Logger) (*GCPClients, error) {
	bundle, err := gcpconfig.LoadBundleFile(flags.CredentialsFile)
	if err != nil {
		return nil, err
	}
	if flags.Project != "" {
		bundle.ProjectID = flags.Project
	}

	cfg := gcpconfig.NewService(bundle)
	creds, err := cfg.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}

	recommendations, err := gcprecommender.NewService(ctx, creds, prices, logger)
	if err != nil {
		return nil, err
	}

	identity, err := gcpidentity.NewService(ctx, cfg.GetProjectID(), creds)
	if err != nil {
		_ = recommendations.Close()
		return nil, fmt.Errorf("failed to create resource manager client: %w", err)
	}

	return &GCPClients{
		ProjectID:       cfg.GetProjectID(),
		Identity:        identity,
		Recommendations: recommendations,
	}, nil
}
