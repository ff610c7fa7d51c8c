package abstraction

import (
	"context"

	"songart/internal/domain/dto"
	"songart/internal/domain/model"
)

type Lister interface {
	ListFiles(ctx context.Context, prefix string) (dto.FileListing, error)
}

// CatalogLister reads the media catalog rather than the live bucket.
type CatalogLister interface {
	Recent(ctx context.Context, limit int64) ([]model.MediaObject, error)
}
