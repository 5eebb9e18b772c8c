package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"jobboard-api/config"
)

// Client wraps the durable object store. Objects uploaded here are not
// public; the serving layer fronts them with its own authorization.
type Client struct {
	logger *zap.Logger
	mc     *minio.Client
	bucket string
}

func New(logger *zap.Logger, cfg config.Storage) (*Client, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	mc, err := minio.New(creds.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(creds.AccessKeyID, creds.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}

	return &Client{
		logger: logger,
		mc:     mc,
		bucket: cfg.Bucket,
	}, nil
}

func (c *Client) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, metadata map[string]string) error {
	_, err := c.mc.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (c *Client) BucketName() string { return c.bucket }
