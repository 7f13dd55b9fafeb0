package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/cloud-advisor/model"
	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/rs/zerolog"
)

type service struct {
	client      s3API
	rates       pricing.StorageRates
	concurrency int
	logger      zerolog.Logger
}

type S3Service interface {
	AnalyzeBuckets(ctx context.Context) ([]model.BucketSummary, error)
	AnalyzeBucket(ctx context.Context, bucket string) (model.BucketSummary, error)
	GetBucketSizeInBytes(ctx context.Context, bucket string, optFns ...func(*s3.Options)) (int64, error)
	GetBucketStorageClass(ctx context.Context, bucket string, optFns ...func(*s3.Options)) string
	GetBucketRegion(ctx context.Context, bucket string) (string, error)
}

// s3API is the subset of *s3.Client the analyzer calls
type s3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error)
}
