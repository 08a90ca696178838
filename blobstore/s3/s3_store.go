package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/curego/blobstore"
)

// Options configures the S3 snapshot store.
type Options struct {
	// Prefix is prepended to all keys (e.g. "clusters/").
	Prefix string

	// Region overrides the region from the default AWS config chain.
	Region string

	// PartSize is the part size for multipart uploads.
	// Zero keeps the SDK default.
	PartSize int64

	// Concurrency is the number of concurrent part uploads.
	// Zero keeps the SDK default.
	Concurrency int
}

// Store implements blobstore.Store for Amazon S3.
type Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New creates a new S3 snapshot store using the default AWS config chain.
func New(ctx context.Context, bucket string, optFns ...func(o *Options)) (*Store, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return NewStore(s3.NewFromConfig(cfg), bucket, opts), nil
}

// NewStore creates a new S3 snapshot store from an existing client.
func NewStore(client *s3.Client, bucket string, opts Options) *Store {
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		if opts.PartSize > 0 {
			u.PartSize = opts.PartSize
		}
		if opts.Concurrency > 0 {
			u.Concurrency = opts.Concurrency
		}
	})

	return &Store{
		client:   client,
		uploader: uploader,
		bucket:   bucket,
		prefix:   opts.Prefix,
	}
}

// WithPrefix sets the key prefix for all snapshots.
func WithPrefix(prefix string) func(o *Options) {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithRegion overrides the AWS region.
func WithRegion(region string) func(o *Options) {
	return func(o *Options) {
		o.Region = region
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Put writes a snapshot atomically. Large snapshots are uploaded in
// parallel multipart requests.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(data),
	})
	return err
}

// Open opens a snapshot for reading.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, blobstore.ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}
	return resp.Body, nil
}

// Delete removes a snapshot. S3 treats deleting a missing key as success.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

// List returns all snapshot names with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var names []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(*obj.Key, s.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}
