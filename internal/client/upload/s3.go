package upload

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"userdeck/internal/client/models"
)

// Seams for the AWS SDK constructors, replaceable in tests.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// S3Config holds the settings for an S3-compatible object store (MinIO or
// AWS proper). PublicBaseURL is the prefix objects are served from.
type S3Config struct {
	BaseEndpoint  string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// S3Uploader stores images in an S3-compatible bucket. It is the
// self-hosting alternative to HostedUploader.
type S3Uploader struct {
	cfg S3Config
}

func NewS3Uploader(cfg S3Config) *S3Uploader {
	return &S3Uploader{cfg: cfg}
}

// objectKey spreads uploads over date-based prefixes so a bucket listing
// stays navigable.
func objectKey() string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%02d/%02d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

func (u *S3Uploader) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.cfg.AccessKey,
			u.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(u.cfg.BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

func (u *S3Uploader) Upload(ctx context.Context, asset *models.ImageAsset) (string, error) {
	client, err := u.getClient(ctx)
	if err != nil {
		return "", err
	}

	key := objectKey()

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(asset.Data),
		ContentType: aws.String(asset.MIMEType),
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	base := strings.TrimRight(u.cfg.PublicBaseURL, "/")
	return base + "/" + u.cfg.Bucket + "/" + key, nil
}
