package service

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

type PlayerService interface {
	ListPlayers(ctx context.Context, query domain.PlayerQuery) (domain.PlayerPage, error)
	GetPlayer(ctx context.Context, season string, id int) (*domain.Player, error)
}
