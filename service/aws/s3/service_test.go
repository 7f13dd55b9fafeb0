package awss3

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/elC0mpa/cloud-advisor/pricing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	location types.BucketLocationConstraint
	// pages of object sizes, one slice per ListObjectsV2 page
	pages        [][]int64
	storageClass types.ObjectStorageClass
	locationErr  error
	listErr      error
	probeErr     error

	// leave IsTruncated unset on every page
	omitTruncated bool
}

type fakeS3 struct {
	buckets map[string]*fakeBucket
	order   []string

	mu          sync.Mutex
	listCalls   map[string]int
	probeCalls  map[string]int
	regionsSeen map[string]string
	bucketsErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		buckets:     map[string]*fakeBucket{},
		listCalls:   map[string]int{},
		probeCalls:  map[string]int{},
		regionsSeen: map[string]string{},
	}
}

func (f *fakeS3) add(name string, b *fakeBucket) {
	f.buckets[name] = b
	f.order = append(f.order, name)
}

func (f *fakeS3) ListBuckets(_ context.Context, _ *s3.ListBucketsInput, _ ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	if f.bucketsErr != nil {
		return nil, f.bucketsErr
	}
	out := &s3.ListBucketsOutput{}
	for _, name := range f.order {
		out.Buckets = append(out.Buckets, types.Bucket{Name: aws.String(name)})
	}
	return out, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	name := aws.ToString(params.Bucket)
	b := f.buckets[name]

	opts := s3.Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	f.mu.Lock()
	f.regionsSeen[name] = opts.Region
	if aws.ToInt32(params.MaxKeys) == 1 {
		f.probeCalls[name]++
	} else {
		f.listCalls[name]++
	}
	f.mu.Unlock()

	if aws.ToInt32(params.MaxKeys) == 1 {
		if b.probeErr != nil {
			return nil, b.probeErr
		}
		out := &s3.ListObjectsV2Output{}
		if len(b.pages) > 0 && len(b.pages[0]) > 0 {
			out.Contents = []types.Object{{Key: aws.String("k0"), Size: aws.Int64(b.pages[0][0]), StorageClass: b.storageClass}}
		}
		return out, nil
	}

	if b.listErr != nil {
		return nil, b.listErr
	}

	page := 0
	if params.ContinuationToken != nil {
		page = tokenIndex(*params.ContinuationToken)
	}

	out := &s3.ListObjectsV2Output{}
	if page < len(b.pages) {
		for _, size := range b.pages[page] {
			out.Contents = append(out.Contents, types.Object{Size: aws.Int64(size), StorageClass: b.storageClass})
		}
	}
	if page+1 < len(b.pages) {
		out.NextContinuationToken = aws.String(pageToken(page + 1))
	}
	if !b.omitTruncated {
		out.IsTruncated = aws.Bool(page+1 < len(b.pages))
	}
	return out, nil
}

func (f *fakeS3) GetBucketLocation(_ context.Context, params *s3.GetBucketLocationInput, _ ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error) {
	b := f.buckets[aws.ToString(params.Bucket)]
	if b.locationErr != nil {
		return nil, b.locationErr
	}
	return &s3.GetBucketLocationOutput{LocationConstraint: b.location}, nil
}

var tokens = []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9"}

func pageToken(i int) string { return tokens[i] }

func tokenIndex(token string) int {
	for i, t := range tokens {
		if t == token {
			return i
		}
	}
	return len(tokens)
}

func newTestService(client s3API, concurrency int) *service {
	return newService(client, pricing.Default().Storage, concurrency, zerolog.Nop())
}

func TestGetBucketSizeInBytes_MultiplePages(t *testing.T) {
	fake := newFakeS3()
	fake.add("logs", &fakeBucket{pages: [][]int64{{100, 200}, {300}, {400, 500, 600}}})

	size, err := newTestService(fake, 1).GetBucketSizeInBytes(context.Background(), "logs")
	require.NoError(t, err)
	assert.Equal(t, int64(2100), size)
	assert.Equal(t, 3, fake.listCalls["logs"])
}

func TestGetBucketSizeInBytes_ManyPages(t *testing.T) {
	pages := make([][]int64, len(tokens))
	for i := range pages {
		pages[i] = []int64{1000}
	}
	fake := newFakeS3()
	fake.add("archive", &fakeBucket{pages: pages})

	size, err := newTestService(fake, 1).GetBucketSizeInBytes(context.Background(), "archive")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), size)
	assert.Equal(t, len(tokens), fake.listCalls["archive"])
}

func TestGetBucketSizeInBytes_FollowsTokenWithoutTruncatedFlag(t *testing.T) {
	fake := newFakeS3()
	fake.add("uploads", &fakeBucket{pages: [][]int64{{100}, {200}}, omitTruncated: true})

	size, err := newTestService(fake, 1).GetBucketSizeInBytes(context.Background(), "uploads")
	require.NoError(t, err)
	assert.Equal(t, int64(300), size)
	assert.Equal(t, 2, fake.listCalls["uploads"])
}

func TestGetBucketSizeInBytes_Empty(t *testing.T) {
	fake := newFakeS3()
	fake.add("empty", &fakeBucket{})

	size, err := newTestService(fake, 1).GetBucketSizeInBytes(context.Background(), "empty")
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestGetBucketSizeInBytes_Error(t *testing.T) {
	boom := errors.New("access denied")
	fake := newFakeS3()
	fake.add("locked", &fakeBucket{listErr: boom})

	_, err := newTestService(fake, 1).GetBucketSizeInBytes(context.Background(), "locked")
	assert.ErrorIs(t, err, boom)
}

func TestGetBucketStorageClass(t *testing.T) {
	fake := newFakeS3()
	fake.add("glacier", &fakeBucket{pages: [][]int64{{10}}, storageClass: types.ObjectStorageClassGlacier})
	fake.add("empty", &fakeBucket{})
	fake.add("broken", &fakeBucket{pages: [][]int64{{10}}, probeErr: errors.New("throttled")})
	fake.add("unlabelled", &fakeBucket{pages: [][]int64{{10}}})

	svc := newTestService(fake, 1)
	ctx := context.Background()

	assert.Equal(t, "GLACIER", svc.GetBucketStorageClass(ctx, "glacier"))
	assert.Equal(t, "STANDARD", svc.GetBucketStorageClass(ctx, "empty"))
	assert.Equal(t, "STANDARD", svc.GetBucketStorageClass(ctx, "broken"))
	assert.Equal(t, "STANDARD", svc.GetBucketStorageClass(ctx, "unlabelled"))
}

func TestGetBucketRegion(t *testing.T) {
	fake := newFakeS3()
	fake.add("virginia", &fakeBucket{})
	fake.add("ireland", &fakeBucket{location: types.BucketLocationConstraintEu})
	fake.add("mumbai", &fakeBucket{location: types.BucketLocationConstraintApSouth1})

	svc := newTestService(fake, 1)
	ctx := context.Background()

	for bucket, want := range map[string]string{
		"virginia": "us-east-1",
		"ireland":  "eu-west-1",
		"mumbai":   "ap-south-1",
	} {
		got, err := svc.GetBucketRegion(ctx, bucket)
		require.NoError(t, err)
		assert.Equal(t, want, got, bucket)
	}
}

func TestGetBucketRegion_Error(t *testing.T) {
	boom := errors.New("no such bucket")
	fake := newFakeS3()
	fake.add("gone", &fakeBucket{locationErr: boom})

	_, err := newTestService(fake, 1).GetBucketRegion(context.Background(), "gone")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to fetch bucket region")
}

func TestAnalyzeBuckets(t *testing.T) {
	fake := newFakeS3()
	fake.add("media", &fakeBucket{
		location:     "ap-south-1",
		pages:        [][]int64{{600_000_000}, {400_000_001}},
		storageClass: types.ObjectStorageClassStandard,
	})
	fake.add("reports", &fakeBucket{
		pages:        [][]int64{{150_000_000}},
		storageClass: types.ObjectStorageClassStandard,
	})
	fake.add("cold", &fakeBucket{
		location:     types.BucketLocationConstraintEu,
		pages:        [][]int64{{5_000_000_000}},
		storageClass: types.ObjectStorageClassGlacier,
	})
	fake.add("tiny", &fakeBucket{pages: [][]int64{{512}}})

	summaries, err := newTestService(fake, 1).AnalyzeBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	media := summaries[0]
	assert.Equal(t, "media", media.Name)
	assert.Equal(t, "953.67 MB", media.FormattedSize)
	assert.Equal(t, "STANDARD", media.StorageClass)
	assert.Equal(t, "ap-south-1", media.Region)
	assert.Equal(t, RecommendIntelligentTiering, media.Recommendation)
	assert.Equal(t, "$0.01", media.EstimatedSavings)

	reports := summaries[1]
	assert.Equal(t, "reports", reports.Name)
	assert.Equal(t, "143.05 MB", reports.FormattedSize)
	assert.Equal(t, "us-east-1", reports.Region)
	assert.Equal(t, RecommendStandardIA, reports.Recommendation)

	cold := summaries[2]
	assert.Equal(t, "GLACIER", cold.StorageClass)
	assert.Equal(t, "eu-west-1", cold.Region)
	assert.Equal(t, "4.66 GB", cold.FormattedSize)
	assert.Equal(t, NoRecommendation, cold.Recommendation)
	assert.Equal(t, "$0.00", cold.EstimatedSavings)

	tiny := summaries[3]
	assert.Equal(t, "512 Bytes", tiny.FormattedSize)
	assert.Equal(t, "STANDARD", tiny.StorageClass)
	assert.Equal(t, NoRecommendation, tiny.Recommendation)
}

func TestAnalyzeBuckets_ListsInBucketRegion(t *testing.T) {
	fake := newFakeS3()
	fake.add("frankfurt", &fakeBucket{location: "eu-central-1", pages: [][]int64{{1}}})

	_, err := newTestService(fake, 1).AnalyzeBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", fake.regionsSeen["frankfurt"])
}

func TestAnalyzeBuckets_ConcurrentKeepsOrder(t *testing.T) {
	fake := newFakeS3()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i, name := range names {
		fake.add(name, &fakeBucket{pages: [][]int64{{int64(i + 1)}}})
	}

	summaries, err := newTestService(fake, 3).AnalyzeBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, len(names))

	for i, name := range names {
		assert.Equal(t, name, summaries[i].Name)
	}
}

func TestAnalyzeBuckets_RegionErrorAbortsBatch(t *testing.T) {
	boom := errors.New("access denied")
	fake := newFakeS3()
	fake.add("ok", &fakeBucket{pages: [][]int64{{1}}})
	fake.add("denied", &fakeBucket{locationErr: boom})
	fake.add("also-ok", &fakeBucket{pages: [][]int64{{1}}})

	for _, concurrency := range []int{1, 4} {
		summaries, err := newTestService(fake, concurrency).AnalyzeBuckets(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Nil(t, summaries)
	}
}

func TestAnalyzeBuckets_SizeErrorAbortsBatch(t *testing.T) {
	boom := errors.New("slow down")
	fake := newFakeS3()
	fake.add("ok", &fakeBucket{pages: [][]int64{{1}}})
	fake.add("flaky", &fakeBucket{listErr: boom})

	_, err := newTestService(fake, 1).AnalyzeBuckets(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAnalyzeBuckets_ProbeErrorIsSwallowed(t *testing.T) {
	fake := newFakeS3()
	fake.add("flaky-probe", &fakeBucket{
		pages:        [][]int64{{2_000_000_000}},
		storageClass: types.ObjectStorageClassGlacier,
		probeErr:     errors.New("internal error"),
	})

	summaries, err := newTestService(fake, 1).AnalyzeBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "STANDARD", summaries[0].StorageClass)
	assert.Equal(t, RecommendIntelligentTiering, summaries[0].Recommendation)
}

func TestAnalyzeBuckets_ListBucketsError(t *testing.T) {
	fake := newFakeS3()
	fake.bucketsErr = errors.New("expired token")

	_, err := newTestService(fake, 1).AnalyzeBuckets(context.Background())
	assert.ErrorContains(t, err, "failed to list buckets")
}

func TestAnalyzeBuckets_NoBuckets(t *testing.T) {
	summaries, err := newTestService(newFakeS3(), 1).AnalyzeBuckets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestNewService_ClampsConcurrency(t *testing.T) {
	assert.Equal(t, 1, newTestService(newFakeS3(), 0).concurrency)
	assert.Equal(t, 1, newTestService(newFakeS3(), -3).concurrency)
	assert.Equal(t, 8, newTestService(newFakeS3(), 8).concurrency)
}
