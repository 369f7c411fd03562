package service

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/repository"
)

type playerService struct {
	playerRepo    repository.PlayerRepository
	defaultSeason string
}

func NewPlayerService(playerRepo repository.PlayerRepository, defaultSeason string) PlayerService {
	return &playerService{playerRepo: playerRepo, defaultSeason: defaultSeason}
}

func (s *playerService) ListPlayers(ctx context.Context, query domain.PlayerQuery) (domain.PlayerPage, error) {
	if query.Season == "" {
		query.Season = s.defaultSeason
	}
	return s.playerRepo.ListPlayers(ctx, query)
}

func (s *playerService) GetPlayer(ctx context.Context, season string, id int) (*domain.Player, error) {
	if season == "" {
		season = s.defaultSeason
	}
	return s.playerRepo.GetByID(ctx, season, id)
}
