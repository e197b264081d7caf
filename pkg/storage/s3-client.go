// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

// Package storage provides the object storage adapter for rendered documents.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config points the client at AWS S3 or any S3-compatible service such as MinIO.
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// UsePathStyle is required by MinIO.
	UsePathStyle bool
}

var (
	// ErrBucketRequired indicates bucket name is missing.
	ErrBucketRequired = errors.New("bucket name is required")
	// ErrKeyRequired indicates object key is missing.
	ErrKeyRequired = errors.New("object key is required")
	// ErrObjectNotFound indicates the object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

// DocumentKey returns the object key of the PDF of a generated document.
func DocumentKey(batchID, documentID string) string {
	return path.Join(constant.PDFObjectPrefix, batchID, documentID+".pdf")
}

// S3Client stores document renditions in a single bucket.
type S3Client struct {
	s3     *s3.Client
	bucket string
}

// Compile-time interface check.
var _ ObjectStorage = (*S3Client)(nil)

// NewS3Client creates a new S3 client with the given configuration. Static
// credentials are used only when both halves are set, otherwise the default
// AWS credential chain applies.
func NewS3Client(ctx context.Context, cfg S3Config) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	var loadOpts []func(*config.LoadOptions) error

	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}

		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Client{s3: client, bucket: cfg.Bucket}, nil
}

// contentDisposition lets browsers open a PDF inline under its document id.
func contentDisposition(key, contentType string) *string {
	if contentType != constant.PDFContentType {
		return nil
	}

	return aws.String(fmt.Sprintf("inline; filename=%q", path.Base(key)))
}

// Upload stores reader at key. The body is buffered because request signing needs a seekable payload.
func (client *S3Client) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	logger, tracer, _ := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.storage.upload")
	defer span.End()

	if key == "" {
		return "", ErrKeyRequired
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading data: %w", err)
	}

	_, err = client.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(client.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(data),
		ContentType:        aws.String(contentType),
		ContentDisposition: contentDisposition(key, contentType),
	})
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to upload object", err)

		logger.Errorf("Failed to upload object %s: %v", key, err)

		return "", fmt.Errorf("uploading object: %w", err)
	}

	logger.Infof("Stored %d bytes at %s", len(data), key)

	return key, nil
}

// Download returns the object stored at key, or ErrObjectNotFound.
func (client *S3Client) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	logger, tracer, _ := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.storage.download")
	defer span.End()

	if key == "" {
		return nil, ErrKeyRequired
	}

	out, err := client.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrObjectNotFound
		}

		libOpentelemetry.HandleSpanError(&span, "Failed to download object", err)

		logger.Errorf("Failed to download object %s: %v", key, err)

		return nil, fmt.Errorf("downloading object: %w", err)
	}

	return out.Body, nil
}

// Exists reports whether an object is stored at key.
func (client *S3Client) Exists(ctx context.Context, key string) (bool, error) {
	_, tracer, _ := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.storage.exists")
	defer span.End()

	if key == "" {
		return false, ErrKeyRequired
	}

	_, err := client.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	})

	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		libOpentelemetry.HandleSpanError(&span, "Failed to check object existence", err)

		return false, fmt.Errorf("checking object existence: %w", err)
	}
}

// isNotFound matches GetObject's NoSuchKey and HeadObject's bodiless NotFound.
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var notFound *types.NotFound

	return errors.As(err, &notFound)
}
