package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songart/internal/domain/entity"
	"songart/internal/domain/model"
)

type fakeStorage struct {
	stored  model.MediaObject
	putErr  error
	written []model.MediaObject
	wrtErr  error
	target  entity.UploadTarget
}

func (f *fakeStorage) Put(_ context.Context, body io.Reader, _ int64, _, _ string) (model.MediaObject, error) {
	if f.putErr != nil {
		return model.MediaObject{}, f.putErr
	}
	io.Copy(io.Discard, body)

	return f.stored, nil
}

func (f *fakeStorage) Write(_ context.Context, media *model.MediaObject) error {
	if f.wrtErr != nil {
		return f.wrtErr
	}
	f.written = append(f.written, *media)

	return nil
}

func (f *fakeStorage) UploadTarget(_ context.Context, _, _ string) (entity.UploadTarget, error) {
	return f.target, nil
}

func TestUpload(t *testing.T) {
	stored := model.MediaObject{
		Key:         "audio/1700000000000-track.mp3",
		Folder:      "audio",
		ContentType: "audio/mpeg",
		Size:        4,
		PublicURL:   "https://files.example.com/media/audio/1700000000000-track.mp3",
		UploadTime:  time.Now(),
	}

	t.Run("stores and catalogs", func(t *testing.T) {
		fake := &fakeStorage{stored: stored}
		up := NewUploader(fake, fake, fake)

		media, err := up.Upload(context.Background(), strings.NewReader("data"), 4, "audio/mpeg", "track.mp3")
		require.NoError(t, err)
		assert.Equal(t, stored.Key, media.Key)
		require.Len(t, fake.written, 1)
		assert.Equal(t, stored.Key, fake.written[0].Key)
	})

	t.Run("catalog failure does not fail the upload", func(t *testing.T) {
		fake := &fakeStorage{stored: stored, wrtErr: errors.New("catalog down")}
		up := NewUploader(fake, fake, fake)

		media, err := up.Upload(context.Background(), strings.NewReader("data"), 4, "audio/mpeg", "track.mp3")
		require.NoError(t, err)
		assert.Equal(t, stored.PublicURL, media.PublicURL)
	})

	t.Run("storage failure fails the upload", func(t *testing.T) {
		fake := &fakeStorage{putErr: errors.New("bucket gone")}
		up := NewUploader(fake, fake, fake)

		_, err := up.Upload(context.Background(), strings.NewReader("data"), 4, "audio/mpeg", "track.mp3")
		assert.Error(t, err)
		assert.Empty(t, fake.written)
	})
}

func TestUploadTarget(t *testing.T) {
	fake := &fakeStorage{target: entity.UploadTarget{
		UploadURL: "https://minio.example.com/media/images/1700000000000-cover.png?X-Amz-Signature=abc",
		Key:       "images/1700000000000-cover.png",
		PublicURL: "https://files.example.com/media/images/1700000000000-cover.png",
	}}
	up := NewUploader(fake, fake, fake)

	target, err := up.UploadTarget(context.Background(), "cover.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, fake.target.UploadURL, target.UploadURL)
	assert.Equal(t, fake.target.Key, target.FileName)
	assert.Equal(t, fake.target.PublicURL, target.PublicURL)
}
