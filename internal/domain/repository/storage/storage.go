package storage

import (
	"context"
	"io"

	"songart/internal/domain/entity"
	"songart/internal/domain/model"
)

type Uploader interface {
	Put(ctx context.Context, body io.Reader, size int64, contentType, filename string) (model.MediaObject, error)
}

type Lister interface {
	List(ctx context.Context, prefix string) ([]model.MediaObject, []string, error)
}

type Presigner interface {
	UploadTarget(ctx context.Context, filename, contentType string) (entity.UploadTarget, error)
}
