package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Anastasia-front/contacts-api/internal/config"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Prefix = "avatars/"

// putObjectAPI is the subset of *s3.Client used for uploads.
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storage uploads avatars to an S3 bucket or an S3-compatible endpoint.
type S3Storage struct {
	client    putObjectAPI
	bucket    string
	publicURL string
	logger    *slog.Logger
}

var _ AvatarStorage = (*S3Storage)(nil)

// NewS3Storage builds an S3 client from cfg. Static credentials are used
// when an access key is configured, otherwise the default AWS chain applies.
func NewS3Storage(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Storage(client, cfg, log), nil
}

func newS3Storage(client putObjectAPI, cfg config.StorageConfig, log *slog.Logger) *S3Storage {
	if log == nil {
		log = slog.Default()
	}

	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	if cfg.S3Endpoint != "" {
		publicURL = joinURL(cfg.S3Endpoint, cfg.S3Bucket)
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
		logger:    log.With(slog.String("component", "s3_storage")),
	}
}

// Save implements AvatarStorage.
func (s *S3Storage) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	objectKey := s3Prefix + key

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error("failed to upload avatar",
			slog.String("error", err.Error()),
			slog.String("bucket", s.bucket),
			slog.String("key", objectKey))
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	log.Debug("avatar uploaded", slog.String("key", objectKey))
	return joinURL(s.publicURL, objectKey), nil
}
