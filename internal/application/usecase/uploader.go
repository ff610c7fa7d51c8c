package usecase

import (
	"context"
	"io"

	"songart/internal/domain/dto"
	"songart/internal/domain/model"
	"songart/internal/domain/repository/database"
	"songart/internal/domain/repository/storage"
	"songart/pkg/logger"
)

type Uploader struct {
	storageUploader storage.Uploader
	presigner       storage.Presigner
	catalog         database.Writer
}

func NewUploader(storageUploader storage.Uploader, presigner storage.Presigner, catalog database.Writer) *Uploader {
	return &Uploader{
		storageUploader: storageUploader,
		presigner:       presigner,
		catalog:         catalog,
	}
}

// Upload streams body into object storage and records the object in the
// media catalog. The object is durable once the storage write succeeds; a
// catalog failure is logged but does not fail the upload.
func (u *Uploader) Upload(ctx context.Context, body io.Reader, size int64, contentType, filename string) (model.MediaObject, error) {
	media, err := u.storageUploader.Put(ctx, body, size, contentType, filename)
	if err != nil {
		return model.MediaObject{}, err
	}

	if err := u.catalog.Write(ctx, &media); err != nil {
		logger.Error("media catalog write failed", "key", media.Key, "err", err)
	}

	return media, nil
}

// UploadTarget issues a pre-authorized direct upload URL for browser-side
// uploads that bypass this server.
func (u *Uploader) UploadTarget(ctx context.Context, filename, contentType string) (dto.UploadTarget, error) {
	target, err := u.presigner.UploadTarget(ctx, filename, contentType)
	if err != nil {
		return dto.UploadTarget{}, err
	}

	return dto.UploadTarget{
		UploadURL: target.UploadURL,
		FileName:  target.Key,
		PublicURL: target.PublicURL,
	}, nil
}
