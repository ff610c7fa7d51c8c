package usecase

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songart/internal/domain/model"
	"songart/internal/domain/repository/shortlink"
)

type fakeStore struct {
	data          map[string][]byte
	createCalls   int
	alwaysCollide bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Create(_ context.Context, key string, value []byte) (bool, error) {
	f.createCalls++
	if f.alwaysCollide {
		return false, nil
	}
	if _, exists := f.data[key]; exists {
		return false, nil
	}
	f.data[key] = value

	return true, nil
}

func (f *fakeStore) Put(_ context.Context, key string, value []byte) error {
	f.data[key] = value

	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := f.data[key]
	if !ok {
		return nil, shortlink.ErrNotFound
	}

	return value, nil
}

func TestNewID(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90, "ids should be close to unique")
}

func TestPlayerRoundTrip(t *testing.T) {
	store := newFakeStore()
	linker := NewLinker(store)
	ctx := context.Background()

	image := "https://files.example.com/media/images/cover.png"
	title := "Night Drive"

	id, err := linker.CreatePlayer(ctx, model.PlayerConfig{
		Audio: "https://files.example.com/media/audio/track.mp3",
		Image: &image,
		Title: &title,
	})
	require.NoError(t, err)
	require.Len(t, id, 6)

	got, err := linker.GetPlayer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/media/audio/track.mp3", got.Audio)
	require.NotNil(t, got.Image)
	assert.Equal(t, image, *got.Image)
	require.NotNil(t, got.Title)
	assert.Equal(t, title, *got.Title)
	assert.NotZero(t, got.Created)
}

func TestPlayerOptionalFieldsStayNil(t *testing.T) {
	linker := NewLinker(newFakeStore())
	ctx := context.Background()

	id, err := linker.CreatePlayer(ctx, model.PlayerConfig{Audio: "a.mp3"})
	require.NoError(t, err)

	got, err := linker.GetPlayer(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Image)
	assert.Nil(t, got.Title)
}

func TestCreatePlayerRequiresAudio(t *testing.T) {
	linker := NewLinker(newFakeStore())

	_, err := linker.CreatePlayer(context.Background(), model.PlayerConfig{})
	assert.Error(t, err)
}

func TestPlaylistRoundTrip(t *testing.T) {
	store := newFakeStore()
	linker := NewLinker(store)
	ctx := context.Background()

	id, err := linker.CreatePlaylist(ctx, model.PlaylistConfig{
		Name: "Road Trip",
		Tracks: []model.Track{
			{URL: "https://files.example.com/media/audio/one.mp3", Title: "One"},
			{URL: "https://files.example.com/media/audio/two.mp3", Title: "Two"},
		},
	})
	require.NoError(t, err)

	got, err := linker.GetPlaylist(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", got.Name)
	require.Len(t, got.Tracks, 2)
	assert.Equal(t, "Two", got.Tracks[1].Title)
}

func TestCreatePlaylistValidation(t *testing.T) {
	linker := NewLinker(newFakeStore())
	ctx := context.Background()

	_, err := linker.CreatePlaylist(ctx, model.PlaylistConfig{Tracks: []model.Track{{URL: "x"}}})
	assert.Error(t, err, "name is required")

	_, err = linker.CreatePlaylist(ctx, model.PlaylistConfig{Name: "Empty"})
	assert.Error(t, err, "tracks are required")
}

func TestGetPlayerUnknownID(t *testing.T) {
	linker := NewLinker(newFakeStore())

	_, err := linker.GetPlayer(context.Background(), "zzzzzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateStopsRetryingAfterBound(t *testing.T) {
	store := newFakeStore()
	store.alwaysCollide = true
	linker := NewLinker(store)

	id, err := linker.CreatePlayer(context.Background(), model.PlayerConfig{Audio: "a.mp3"})
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Equal(t, maxIDAttempts, store.createCalls)

	// the fallback write still landed
	_, err = linker.GetPlayer(context.Background(), id)
	assert.NoError(t, err)
}

func TestPlayersAndPlaylistsAreSeparateNamespaces(t *testing.T) {
	store := newFakeStore()
	linker := NewLinker(store)
	ctx := context.Background()

	id, err := linker.CreatePlayer(ctx, model.PlayerConfig{Audio: "a.mp3"})
	require.NoError(t, err)

	_, err = linker.GetPlaylist(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
