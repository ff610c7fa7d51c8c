package minio

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"context"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"songart/internal/domain/model"
	"songart/pkg/logger"
	"songart/pkg/utils"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

// Put uploads body under a key of the form {folder}/{unixMillis}-{sanitized}.
// When contentType is empty the leading bytes are sniffed instead.
func (u *Uploader) Put(ctx context.Context, body io.Reader, size int64, contentType, filename string) (model.MediaObject, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	buffered := bufio.NewReader(body)
	if contentType == "" || contentType == "application/octet-stream" {
		head, err := buffered.Peek(512)
		if err != nil && err != io.EOF {
			return model.MediaObject{}, fmt.Errorf("read error: %w", err)
		}
		if sniffed := mimetype.Detect(head); sniffed != nil {
			contentType = sniffed.String()
		}
	}

	now := time.Now()
	key := utils.BuildObjectKey(contentType, filename, now)

	info, err := u.client.MinioClient.PutObject(ctx, u.client.Bucket, key, buffered, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		logger.Error("object upload rejected", "key", key, "err", err)

		return model.MediaObject{}, fmt.Errorf("upload rejected: %w", err)
	}

	return model.MediaObject{
		Key:         key,
		Folder:      utils.ClassifyFolder(contentType, filename),
		ContentType: contentType,
		Size:        info.Size,
		PublicURL:   u.client.PublicURL(key),
		UploadTime:  now,
	}, nil
}
