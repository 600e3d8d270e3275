package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/log"
)

const (
	keyPrefix   = "ics"
	initTimeout = 10 * time.Second
)

// Config holds the MinIO connection and bucket settings.
type Config struct {
	Endpoint       string
	PublicEndpoint string // host or URL used in returned links; defaults to Endpoint
	AccessKey      string
	SecretKey      string
	Bucket         string
	Region         string
	UseSSL         bool
}

type implFileStore struct {
	client         *miniogo.Client
	bucket         string
	publicEndpoint string
	useSSL         bool
	l              log.Logger
}

// NewClient creates a MinIO client from cfg.
func NewClient(cfg Config) (*miniogo.Client, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	return client, nil
}

// New creates a MinIO backed FileStore. The bucket is created with a
// public-read policy when it does not exist.
func New(ctx context.Context, client *miniogo.Client, cfg Config, l log.Logger) (repository.FileStore, error) {
	if client == nil {
		return nil, fmt.Errorf("event/repository/minio: client is required")
	}

	publicEndpoint := cfg.PublicEndpoint
	if publicEndpoint == "" {
		publicEndpoint = cfg.Endpoint
	}
	publicEndpoint = strings.TrimSuffix(strings.Trim(strings.TrimSpace(publicEndpoint), `"'`), "/")

	s := &implFileStore{
		client:         client,
		bucket:         cfg.Bucket,
		publicEndpoint: publicEndpoint,
		useSSL:         cfg.UseSSL,
		l:              l,
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	l.Infof(ctx, "MinIO file store initialized: bucket=%s public_endpoint=%s", s.bucket, s.publicEndpoint)
	return s, nil
}

func (s *implFileStore) ensureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, miniogo.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}
	s.l.Infof(ctx, "Bucket %s created with public-read policy", s.bucket)
	return nil
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Action":["s3:GetObject"],"Effect":"Allow","Principal":{"AWS":["*"]},"Resource":["arn:aws:s3:::%s/*"],"Sid":""}]}`, bucket)
}
