package repository

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

type SquadRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.SquadRecord, error)
	Save(ctx context.Context, record *domain.SquadRecord) error
}
