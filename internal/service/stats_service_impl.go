package service

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/repository"
)

type statsService struct {
	statsRepo     repository.StatsRepository
	defaultSeason string
}

func NewStatsService(statsRepo repository.StatsRepository, defaultSeason string) StatsService {
	return &statsService{statsRepo: statsRepo, defaultSeason: defaultSeason}
}

func (s *statsService) GetSelectionStats(ctx context.Context, season string, limit int) ([]*domain.SelectionStat, error) {
	if season == "" {
		season = s.defaultSeason
	}
	return s.statsRepo.GetSelectionStats(ctx, season, limit)
}

func (s *statsService) GetFormationStats(ctx context.Context, season string) ([]*domain.FormationStat, error) {
	if season == "" {
		season = s.defaultSeason
	}
	return s.statsRepo.GetFormationStats(ctx, season)
}
