package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Bucket    string
	KeyPrefix string
	Region    string
}

type S3PhotoStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	config    S3Config
}

var _ PhotoStore = (*S3PhotoStore)(nil)

func NewS3PhotoStore(ctx context.Context, cfg S3Config) (*S3PhotoStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3PhotoStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		config:    cfg,
	}, nil
}

func (s *S3PhotoStore) objectKey(key string) string {
	if s.config.KeyPrefix == "" {
		return key
	}
	return path.Join(s.config.KeyPrefix, key)
}

func (s *S3PhotoStore) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.Bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("failed to upload photo %s: %w", key, err)
	}

	return nil
}

func (s *S3PhotoStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.objectKey(key)),
	}, func(po *s3.PresignOptions) {
		po.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign photo %s: %w", key, err)
	}

	return req.URL, nil
}
