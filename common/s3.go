package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Config contains minimal configuration for creating an S3 client.
// Values are optional and fall back to the standard AWS config chain.
type S3Config struct {
	Region string
	Bucket string
	// UsePathStyle forces path-style addressing for S3-compatible providers.
	UsePathStyle bool
}

// S3ConfigFromEnv reads S3_BUCKET, AWS_REGION, and S3_PATH_STYLE.
// Returns ok=false when no bucket is configured; artifact upload is
// then skipped entirely.
func S3ConfigFromEnv() (S3Config, bool) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return S3Config{}, false
	}
	return S3Config{
		Region:       os.Getenv("AWS_REGION"),
		Bucket:       bucket,
		UsePathStyle: os.Getenv("S3_PATH_STYLE") == "true",
	}, true
}

// S3 wraps the AWS SDK v2 client, bound to a single artifact bucket.
type S3 struct {
	client *s3.Client
	bucket string
}

// NewS3 creates an S3 wrapper using the default AWS configuration chain.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3{client: c, bucket: cfg.Bucket}, nil
}

// Put uploads an object to the artifact bucket.
func (s *S3) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	_, err := s.client.PutObject(ctx, in)
	return err
}

// Get fetches an object body. Caller must Close it.
func (s *S3) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

// Delete removes the object at key.
func (s *S3) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// Exists reports whether the object exists; HTTP 404 and the NotFound
// API code both map to false without error.
func (s *S3) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var respErr *http.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}
	return false, err
}

// UploadVideo stores an encoded clip and returns the key it was stored
// under.
func (s *S3) UploadVideo(ctx context.Context, key string, data []byte) (string, error) {
	if err := s.Put(ctx, key, bytes.NewReader(data), "video/mp4"); err != nil {
		return "", fmt.Errorf("failed to upload video %s: %w", key, err)
	}
	return key, nil
}
