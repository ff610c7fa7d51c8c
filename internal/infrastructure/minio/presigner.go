package minio

import (
	"context"
	"fmt"
	"time"

	"songart/internal/domain/entity"
	"songart/pkg/utils"
)

type Presigner struct {
	client *Client
	cfg    *PresignerConfig
}

func NewPresigner(client *Client, cfg *PresignerConfig) *Presigner {
	return &Presigner{
		client: client,
		cfg:    cfg,
	}
}

// UploadTarget issues a presigned PUT URL for a direct client upload. The
// final object key is fixed here so the public URL is known before the
// upload happens.
func (p *Presigner) UploadTarget(ctx context.Context, filename, contentType string) (entity.UploadTarget, error) {
	key := utils.BuildObjectKey(contentType, filename, time.Now())

	expiry := time.Duration(p.cfg.ExpiryMinutes) * time.Minute
	signed, err := p.client.MinioClient.PresignedPutObject(ctx, p.client.Bucket, key, expiry)
	if err != nil {
		return entity.UploadTarget{}, fmt.Errorf("presign failed: %w", err)
	}

	return entity.UploadTarget{
		UploadURL: signed.String(),
		Key:       key,
		PublicURL: p.client.PublicURL(key),
	}, nil
}
