package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage stores rendered PDFs in an S3-compatible object store,
// keyed by job ID under a flat documents/ prefix.
type MinIOStorage struct {
	client     *minio.Client
	bucketName string
}

type MinIOConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	BucketName   string
	UseSSL       bool
	CreateBucket bool
}

func NewMinIOStorage(cfg MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	s := &MinIOStorage{client: client, bucketName: cfg.BucketName}
	if cfg.CreateBucket {
		if err := s.ensureBucket(context.Background()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewMinIOStorageFromEnv builds a MinIOStorage from the conventional
// MINIO_ENDPOINT / MINIO_ACCESS_KEY / MINIO_SECRET_KEY / MINIO_BUCKET /
// MINIO_USE_SSL environment variables.
func NewMinIOStorageFromEnv() (*MinIOStorage, error) {
	return NewMinIOStorage(MinIOConfig{
		Endpoint:     envOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:    envOrDefault("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:    envOrDefault("MINIO_SECRET_KEY", "minioadmin123"),
		BucketName:   envOrDefault("MINIO_BUCKET", "genpdf-documents"),
		UseSSL:       envOrDefault("MINIO_USE_SSL", "false") == "true",
		CreateBucket: true,
	})
}

func (s *MinIOStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("checking bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
	}
	return nil
}

func (s *MinIOStorage) objectKey(jobID string) string {
	return fmt.Sprintf("documents/%s.pdf", jobID)
}

func (s *MinIOStorage) Store(ctx context.Context, jobID string, pdf []byte) error {
	_, err := s.client.PutObject(ctx, s.bucketName, s.objectKey(jobID), bytes.NewReader(pdf), int64(len(pdf)), minio.PutObjectOptions{
		ContentType:  "application/pdf",
		UserMetadata: map[string]string{"job-id": jobID, "created-at": time.Now().UTC().Format(time.RFC3339)},
	})
	if err != nil {
		return fmt.Errorf("storing pdf in minio: %w", err)
	}
	return nil
}

func (s *MinIOStorage) Get(ctx context.Context, jobID string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, s.objectKey(jobID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("getting pdf from minio: %w", err)
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
