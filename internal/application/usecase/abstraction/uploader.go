package abstraction

import (
	"context"
	"io"

	"songart/internal/domain/dto"
	"songart/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, body io.Reader, size int64, contentType, filename string) (model.MediaObject, error)
	UploadTarget(ctx context.Context, filename, contentType string) (dto.UploadTarget, error)
}
