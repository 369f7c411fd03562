package service

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

type StatsService interface {
	GetSelectionStats(ctx context.Context, season string, limit int) ([]*domain.SelectionStat, error)
	GetFormationStats(ctx context.Context, season string) ([]*domain.FormationStat, error)
}
