package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"songart/internal/domain/model"
	"songart/pkg/utils"
)

type Lister struct {
	client *Client
	cfg    *ListerConfig
}

func NewLister(client *Client, cfg *ListerConfig) *Lister {
	return &Lister{
		client: client,
		cfg:    cfg,
	}
}

// List returns objects under prefix, non-recursive. Delimiter-detected
// folder entries come back separately, each ending in "/".
func (l *Lister) List(ctx context.Context, prefix string) ([]model.MediaObject, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(l.cfg.Timeout)*time.Millisecond)
	defer cancel()

	objects := l.client.MinioClient.ListObjects(ctx, l.client.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	})

	files := make([]model.MediaObject, 0)
	folders := make([]string, 0)
	for obj := range objects {
		if obj.Err != nil {
			return nil, nil, fmt.Errorf("list failed: %w", obj.Err)
		}

		if strings.HasSuffix(obj.Key, "/") {
			folders = append(folders, obj.Key)

			continue
		}

		contentType := obj.ContentType
		if contentType == "" {
			contentType = utils.ContentTypeByExtension(obj.Key)
		}

		files = append(files, model.MediaObject{
			Key:         obj.Key,
			Folder:      utils.ClassifyFolder(contentType, obj.Key),
			ContentType: contentType,
			Size:        obj.Size,
			PublicURL:   l.client.PublicURL(obj.Key),
			UploadTime:  obj.LastModified,
		})

		if l.cfg.MaxFiles > 0 && len(files) >= l.cfg.MaxFiles {
			break
		}
	}

	return files, folders, nil
}
