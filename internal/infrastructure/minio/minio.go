package minio

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"songart/pkg/logger"
)

type Client struct {
	MinioClient *minio.Client
	Bucket      string
	PublicBase  string
}

func New(cfg *ClientConfig) (*Client, error) {
	logger.Info("connecting to object storage", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.UseSSL,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, fmt.Errorf("storage auth failed: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage auth failed: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q not found", cfg.Bucket)
	}

	return &Client{
		MinioClient: client,
		Bucket:      cfg.Bucket,
		PublicBase:  strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

// PublicURL is a deterministic function of the public base, bucket and key:
// {base}/{bucket}/{key}.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.PublicBase, c.Bucket, key)
}
