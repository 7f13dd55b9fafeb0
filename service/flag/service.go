package flag

import (
	"errors"
	"flag"
	"fmt"

	"github.com/elC0mpa/cloud-advisor/model"
)

var ErrInvalidFlag = errors.New("invalid flag")

func NewService() *service {
	return &service{}
}

type service struct{}

func (s *service) GetParsedFlags() (model.Flags, error) {
	return s.parse(flag.CommandLine, nil, true)
}

// parse defines the flags on fs. When useOSArgs is true the process
// arguments are parsed, otherwise args.
func (s *service) parse(fs *flag.FlagSet, args []string, useOSArgs bool) (model.Flags, error) {
	provider := fs.String("provider", "aws", "Cloud provider to advise on: aws, gcp or all")
	output := fs.String("output", "table", "Output format: table or json")
	chart := fs.Bool("chart", false, "Display a bar chart of the largest savings")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	pricingFile := fs.String("pricing", "", "YAML file overriding the built-in price tables")

	region := fs.String("region", "us-east-1", "AWS region")
	profile := fs.String("profile", "", "AWS profile configuration")
	concurrency := fs.Int("concurrency", 4, "Number of S3 buckets analyzed in parallel")
	spend := fs.Bool("spend", false, "Show the actual S3 month-to-date spend (Cost Explorer)")

	credentials := fs.String("credentials", "", "GCP service account key file")
	project := fs.String("project", "", "GCP project ID (defaults to the key's project)")

	var err error
	if useOSArgs {
		flag.Parse()
	} else {
		err = fs.Parse(args)
	}
	if err != nil {
		return model.Flags{}, err
	}

	flags := model.Flags{
		Provider:        *provider,
		Output:          *output,
		Chart:           *chart,
		LogLevel:        *logLevel,
		PricingFile:     *pricingFile,
		Region:          *region,
		Profile:         *profile,
		Concurrency:     *concurrency,
		Spend:           *spend,
		CredentialsFile: *credentials,
		Project:         *project,
	}

	return flags, validate(flags)
}

func validate(flags model.Flags) error {
	switch flags.Provider {
	case "aws", "gcp", "all":
	default:
		return fmt.Errorf("%w: provider must be aws, gcp or all, got %q", ErrInvalidFlag, flags.Provider)
	}

	switch flags.Output {
	case "table", "json":
	default:
		return fmt.Errorf("%w: output must be table or json, got %q", ErrInvalidFlag, flags.Output)
	}

	if flags.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", ErrInvalidFlag)
	}

	if flags.Provider != "aws" && flags.CredentialsFile == "" {
		return fmt.Errorf("%w: -credentials is required for provider %s", ErrInvalidFlag, flags.Provider)
	}

	return nil
}
