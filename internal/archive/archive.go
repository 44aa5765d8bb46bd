// Package archive stores sync run reports outside the database.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/benx421/donorsync/internal/config"
)

// Archiver persists a finished run report
type Archiver interface {
	Archive(ctx context.Context, job string, finishedAt time.Time, report any) error
}

// Nop discards reports
type Nop struct{}

// Archive does nothing
func (Nop) Archive(context.Context, string, time.Time, any) error { return nil }

// PutObjectAPI is the subset of the S3 client used for archiving
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver writes each report as a JSON object in a bucket
type S3Archiver struct {
	client PutObjectAPI
	logger *slog.Logger
	newID  func() string
	bucket string
	prefix string
}

// New returns an S3Archiver when a bucket is configured, otherwise Nop
func New(ctx context.Context, cfg config.ArchiveConfig, logger *slog.Logger) (Archiver, error) {
	if cfg.Bucket == "" {
		return Nop{}, nil
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewS3Archiver(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewS3Archiver creates an S3Archiver over client
func NewS3Archiver(client PutObjectAPI, bucket, prefix string, logger *slog.Logger) *S3Archiver {
	return &S3Archiver{
		client: client,
		logger: logger,
		newID:  func() string { return uuid.New().String() },
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Archive uploads report under prefix/job/yyyy/mm/dd/
func (a *S3Archiver) Archive(ctx context.Context, job string, finishedAt time.Time, report any) error {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sync report: %w", err)
	}

	key := a.objectKey(job, finishedAt)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload sync report to S3: %w", err)
	}

	a.logger.Info("sync report archived", "bucket", a.bucket, "key", key)
	return nil
}

func (a *S3Archiver) objectKey(job string, finishedAt time.Time) string {
	at := finishedAt.UTC()
	name := fmt.Sprintf("%s-%s.json", at.Format("20060102T150405Z"), a.newID())
	return path.Join(a.prefix, job, at.Format("2006/01/02"), name)
}
