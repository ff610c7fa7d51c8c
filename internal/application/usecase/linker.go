package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"time"

	"songart/internal/domain/model"
	"songart/internal/domain/repository/shortlink"
	"songart/pkg/logger"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6

	// maxIDAttempts bounds collision retries; afterwards the last candidate
	// is written unconditionally.
	maxIDAttempts = 5

	playerKeyPrefix   = "songart:p:"
	playlistKeyPrefix = "songart:pl:"
)

// ErrNotFound is returned when no config exists under a short ID.
var ErrNotFound = errors.New("not found")

// Linker assigns short IDs to player and playlist configs. Configs are
// immutable and kept forever: printed QR codes must not rot.
type Linker struct {
	store shortlink.Store
}

func NewLinker(store shortlink.Store) *Linker {
	return &Linker{store: store}
}

// NewID draws a 6-character identifier uniformly from a 62-character
// alphabet (~5.6e10 combinations).
func NewID() string {
	id := make([]byte, idLength)
	for i := range id {
		id[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}

	return string(id)
}

func (l *Linker) CreatePlayer(ctx context.Context, config model.PlayerConfig) (string, error) {
	if config.Audio == "" {
		return "", errors.New("audio is required")
	}
	config.Created = time.Now().Unix()

	payload, err := json.Marshal(config)
	if err != nil {
		return "", err
	}

	return l.create(ctx, playerKeyPrefix, payload)
}

func (l *Linker) GetPlayer(ctx context.Context, id string) (*model.PlayerConfig, error) {
	payload, err := l.store.Get(ctx, playerKeyPrefix+id)
	if errors.Is(err, shortlink.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var config model.PlayerConfig
	if err := json.Unmarshal(payload, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *Linker) CreatePlaylist(ctx context.Context, config model.PlaylistConfig) (string, error) {
	if config.Name == "" {
		return "", errors.New("name is required")
	}
	if len(config.Tracks) == 0 {
		return "", errors.New("at least one track is required")
	}
	config.Created = time.Now().Unix()

	payload, err := json.Marshal(config)
	if err != nil {
		return "", err
	}

	return l.create(ctx, playlistKeyPrefix, payload)
}

func (l *Linker) GetPlaylist(ctx context.Context, id string) (*model.PlaylistConfig, error) {
	payload, err := l.store.Get(ctx, playlistKeyPrefix+id)
	if errors.Is(err, shortlink.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var config model.PlaylistConfig
	if err := json.Unmarshal(payload, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// create assigns an ID with a conditional write so concurrent creations of
// the same ID cannot both succeed. After maxIDAttempts collisions the last
// candidate is written unconditionally, accepting the residual risk.
func (l *Linker) create(ctx context.Context, prefix string, payload []byte) (string, error) {
	var id string
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id = NewID()

		stored, err := l.store.Create(ctx, prefix+id, payload)
		if err != nil {
			return "", err
		}
		if stored {
			return id, nil
		}

		logger.Warn("short ID collision", "id", id, "attempt", attempt+1)
	}

	if err := l.store.Put(ctx, prefix+id, payload); err != nil {
		return "", err
	}

	return id, nil
}
