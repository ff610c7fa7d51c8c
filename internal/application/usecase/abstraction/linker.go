package abstraction

import (
	"context"

	"songart/internal/domain/model"
)

type Linker interface {
	CreatePlayer(ctx context.Context, config model.PlayerConfig) (string, error)
	GetPlayer(ctx context.Context, id string) (*model.PlayerConfig, error)
	CreatePlaylist(ctx context.Context, config model.PlaylistConfig) (string, error)
	GetPlaylist(ctx context.Context, id string) (*model.PlaylistConfig, error)
}
