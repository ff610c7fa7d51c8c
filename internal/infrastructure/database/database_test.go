package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"songart/internal/domain/model"
)

const (
	mongoImage    = "mongo:latest"
	mongoUser     = "testuser"
	mongoPassword = "testpass"
	mongoDBName   = "testdb"
)

func setupDatabase(t *testing.T) *Database {
	t.Helper()

	ctx := context.Background()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{"27017/tcp"},
			Env: map[string]string{
				"MONGO_INITDB_ROOT_USERNAME": mongoUser,
				"MONGO_INITDB_ROOT_PASSWORD": mongoPassword,
			},
			WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start mongo container: %v", err)
	}
	t.Cleanup(func() {
		if err := mongoC.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate mongo container: %v", err)
		}
	})

	endpoint, err := mongoC.Endpoint(ctx, "")
	require.NoError(t, err)

	db, err := Connect(Config{
		URI:               fmt.Sprintf("mongodb://%s:%s@%s", mongoUser, mongoPassword, endpoint),
		DBName:            mongoDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Stop()
	})

	return db
}

func TestMediaCatalog_Integration(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	writer := NewMediaWriter(db)
	lister := NewMediaLister(db)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 3; i++ {
		err := writer.Write(ctx, &model.MediaObject{
			Key:         fmt.Sprintf("audio/%d-track.mp3", i),
			Folder:      "audio",
			ContentType: "audio/mpeg",
			Size:        int64(100 + i),
			PublicURL:   fmt.Sprintf("https://files.example.com/media/audio/%d-track.mp3", i),
			UploadTime:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	t.Run("recent returns newest first", func(t *testing.T) {
		media, err := lister.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, media, 3)
		assert.Equal(t, "audio/2-track.mp3", media[0].Key)
		assert.Equal(t, "audio/0-track.mp3", media[2].Key)
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		media, err := lister.Recent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, media, 2)
	})

	t.Run("validator rejects unknown folder", func(t *testing.T) {
		err := writer.Write(ctx, &model.MediaObject{
			Key:         "video/1-clip.mp4",
			Folder:      "video",
			ContentType: "video/mp4",
			Size:        1,
			PublicURL:   "https://files.example.com/media/video/1-clip.mp4",
			UploadTime:  base,
		})
		assert.Error(t, err)
	})
}
