package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore implements Getter on top of an S3-compatible bucket.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// NewObjectStore connects to the configured endpoint. The bucket is not
// probed here; a bad bucket surfaces on the first Get.
func NewObjectStore(cfg Config) (*ObjectStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("dataset: endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("dataset: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("dataset: initialize object store: %w", err)
	}

	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

// Get opens the dataset object. MinIO defers existence checks to the first
// read, so the object is stat'ed up front to fail early with a typed error.
func (s *ObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, key)
		}
		return nil, fmt.Errorf("dataset: stat %s: %w", key, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("dataset: get %s: %w", key, err)
	}
	return obj, nil
}
