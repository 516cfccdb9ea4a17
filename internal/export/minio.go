package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/qanova/timesheet/internal/config"
)

// Minio uploads reports to an S3-compatible bucket.
type Minio struct {
	client *minio.Client
	bucket string
}

// NewMinio creates a client for cfg. No request is made until Export.
func NewMinio(cfg config.MinioConfig) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &Minio{client: client, bucket: cfg.Bucket}, nil
}

func (m *Minio) Export(ctx context.Context, name, report string) (string, error) {
	if report == "" {
		return "", ErrEmptyReport
	}
	info, err := m.client.PutObject(ctx, m.bucket, name,
		strings.NewReader(report),
		int64(len(report)),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"},
	)
	if err != nil {
		return "", fmt.Errorf("upload report to bucket %s: %w", m.bucket, err)
	}
	return fmt.Sprintf("s3://%s/%s", info.Bucket, info.Key), nil
}
