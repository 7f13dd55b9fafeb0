package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

type loadFunc func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)

type service struct {
	load loadFunc
}

type ConfigService interface {
	GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error)
}
