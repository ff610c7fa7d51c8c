package usecase

import (
	"context"

	"songart/internal/domain/dto"
	"songart/internal/domain/model"
	"songart/internal/domain/repository/database"
	"songart/internal/domain/repository/storage"
)

// Lister resolves file listings against the live bucket.
type Lister struct {
	storageLister storage.Lister
}

func NewLister(storageLister storage.Lister) *Lister {
	return &Lister{storageLister: storageLister}
}

func (l *Lister) ListFiles(ctx context.Context, prefix string) (dto.FileListing, error) {
	files, folders, err := l.storageLister.List(ctx, prefix)
	if err != nil {
		return dto.FileListing{}, err
	}

	entries := make([]dto.FileEntry, 0, len(files))
	for i := range files {
		entries = append(entries, dto.FileEntry{
			Name:     files[i].Key,
			Size:     files[i].Size,
			Uploaded: files[i].UploadTime.UnixMilli(),
			Type:     files[i].ContentType,
			URL:      files[i].PublicURL,
		})
	}

	return dto.FileListing{
		Files:   entries,
		Folders: folders,
	}, nil
}

// Catalog reads recently uploaded media from the catalog collection.
type Catalog struct {
	lister database.Lister
}

func NewCatalog(lister database.Lister) *Catalog {
	return &Catalog{lister: lister}
}

func (c *Catalog) Recent(ctx context.Context, limit int64) ([]model.MediaObject, error) {
	return c.lister.Recent(ctx, limit)
}
