// Package storage resolves media references kept in S3-compatible object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	catalogapp "github.com/doorshop/backend/internal/application/catalog"
	infraconfig "github.com/doorshop/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3MediaStore implements MediaResolver
var _ catalogapp.MediaResolver = (*S3MediaStore)(nil)

// S3MediaStore turns storage keys into loadable URLs.
// With a public base url keys are joined onto it, otherwise a presigned GET url is issued.
// Absolute urls are returned unchanged.
type S3MediaStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	publicBaseURL string
	presignExpiry time.Duration
	logger        *zap.Logger
}

// S3MediaStoreOption is a functional option for configuring S3MediaStore
type S3MediaStoreOption func(*S3MediaStore)

// WithLogger sets a custom logger for S3MediaStore
func WithLogger(logger *zap.Logger) S3MediaStoreOption {
	return func(s *S3MediaStore) {
		s.logger = logger
	}
}

// NewS3MediaStore creates a new S3MediaStore from configuration.
// It supports any S3-compatible backend (AWS S3, MinIO, RustFS).
func NewS3MediaStore(cfg *infraconfig.StorageConfig, opts ...S3MediaStoreOption) (*S3MediaStore, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage access key and secret key are required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	var endpoint *string
	if cfg.Endpoint != "" {
		raw := cfg.Endpoint
		if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
			raw = "https://" + raw
		}
		if _, err := url.Parse(raw); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
		endpoint = aws.String(raw)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != nil {
			o.BaseEndpoint = endpoint
		}
	})

	store := &S3MediaStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		presignExpiry: cfg.PresignExpiry,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(store)
	}
	if store.presignExpiry <= 0 {
		store.presignExpiry = 15 * time.Minute
	}
	return store, nil
}

// URL implements MediaResolver.
// A failed presign falls back to the raw reference.
func (s *S3MediaStore) URL(ctx context.Context, ref string) string {
	if ref == "" || isAbsolute(ref) {
		return ref
	}
	key := strings.TrimLeft(ref, "/")
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpiry))
	if err != nil {
		s.logger.Warn("failed to presign media url", zap.String("key", key), zap.Error(err))
		return ref
	}
	return req.URL
}

// Ping checks that the bucket is reachable
func (s *S3MediaStore) Ping(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("storage bucket %s unreachable: %w", s.bucket, err)
	}
	return nil
}

// Bucket returns the bucket name
func (s *S3MediaStore) Bucket() string {
	return s.bucket
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//") ||
		strings.HasPrefix(ref, "data:")
}
