package awss3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/elC0mpa/cloud-advisor/utils"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

func NewService(awsconfig aws.Config, rates pricing.StorageRates, concurrency int, logger zerolog.Logger) *service {
	client := s3.NewFromConfig(awsconfig)
	return newService(client, rates, concurrency, logger)
}

func newService(client s3API, rates pricing.StorageRates, concurrency int, logger zerolog.Logger) *service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &service{
		client:      client,
		rates:       rates,
		concurrency: concurrency,
		logger:      logger,
	}
}

// AnalyzeBuckets summarizes every bucket owned by the caller, in listing
// order. The first bucket that fails aborts the whole analysis.
func (s *service) AnalyzeBuckets(ctx context.Context) ([]model.BucketSummary, error) {
	names, err := s.listBucketNames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.BucketSummary, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, name := range names {
		g.Go(func() error {
			summary, err := s.AnalyzeBucket(gctx, name)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info().Int("buckets", len(summaries)).Msg("bucket analysis complete")

	return summaries, nil
}

// AnalyzeBucket builds the summary of a single bucket
func (s *service) AnalyzeBucket(ctx context.Context, bucket string) (model.BucketSummary, error) {
	region, err := s.GetBucketRegion(ctx, bucket)
	if err != nil {
		return model.BucketSummary{}, err
	}

	inRegion := func(o *s3.Options) {
		o.Region = region
	}

	size, err := s.GetBucketSizeInBytes(ctx, bucket, inRegion)
	if err != nil {
		return model.BucketSummary{}, err
	}

	storageClass := s.GetBucketStorageClass(ctx, bucket, inRegion)

	s.logger.Debug().
		Str("bucket", bucket).
		Str("region", region).
		Str("storage_class", storageClass).
		Int64("size_bytes", size).
		Msg("bucket analyzed")

	return model.BucketSummary{
		Name:             bucket,
		FormattedSize:    utils.FormatStorageSize(size),
		StorageClass:     storageClass,
		Region:           region,
		Recommendation:   Recommend(storageClass, size),
		EstimatedSavings: EstimateMonthlySavings(storageClass, size, s.rates),
	}, nil
}

// GetBucketSizeInBytes sums object sizes across every page of the listing.
// Paging follows NextContinuationToken until the listing returns none,
// whatever IsTruncated says.
func (s *service) GetBucketSizeInBytes(ctx context.Context, bucket string, optFns ...func(*s3.Options)) (int64, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}

	var totalSize int64
	for {
		page, err := s.client.ListObjectsV2(ctx, input, optFns...)
		if err != nil {
			return 0, fmt.Errorf("failed to list objects of bucket %s: %w", bucket, err)
		}

		for _, object := range page.Contents {
			totalSize += aws.ToInt64(object.Size)
		}

		if aws.ToString(page.NextContinuationToken) == "" {
			break
		}
		input.ContinuationToken = page.NextContinuationToken
	}

	return totalSize, nil
}

// GetBucketStorageClass samples the first object of the bucket. Empty
// buckets and listing errors are reported as STANDARD.
func (s *service) GetBucketStorageClass(ctx context.Context, bucket string, optFns ...func(*s3.Options)) string {
	output, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(1),
	}, optFns...)
	if err != nil {
		s.logger.Debug().Err(err).Str("bucket", bucket).Msg("storage class probe failed, assuming STANDARD")
		return StorageClassStandard
	}

	if len(output.Contents) == 0 || output.Contents[0].StorageClass == "" {
		return StorageClassStandard
	}

	return string(output.Contents[0].StorageClass)
}

func (s *service) GetBucketRegion(ctx context.Context, bucket string) (string, error) {
	output, err := s.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch bucket region for %s: %w", bucket, err)
	}

	return NormalizeRegion(string(output.LocationConstraint)), nil
}

func (s *service) listBucketNames(ctx context.Context) ([]string, error) {
	paginator := s3.NewListBucketsPaginator(s.client, &s3.ListBucketsInput{})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list buckets: %w", err)
		}

		for _, bucket := range page.Buckets {
			names = append(names, aws.ToString(bucket.Name))
		}
	}

	return names, nil
}
