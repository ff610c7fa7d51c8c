package database

import (
	"context"

	"songart/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, media *model.MediaObject) error
}

type Lister interface {
	Recent(ctx context.Context, limit int64) ([]model.MediaObject, error)
}
