package repository

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

type PlayerRepository interface {
	ListPlayers(ctx context.Context, query domain.PlayerQuery) (domain.PlayerPage, error)
	GetByID(ctx context.Context, season string, id int) (*domain.Player, error)
}
