package service

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/optimizer"
	"github.com/stretchr/testify/mock"
)

type MockSquadRepository struct {
	mock.Mock
}

func (m *MockSquadRepository) Get(ctx context.Context, sessionID string) (*domain.SquadRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SquadRecord), args.Error(1)
}

func (m *MockSquadRepository) Save(ctx context.Context, record *domain.SquadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) ListPlayers(ctx context.Context, query domain.PlayerQuery) (domain.PlayerPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.PlayerPage), args.Error(1)
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, season string, id int) (*domain.Player, error) {
	args := m.Called(ctx, season, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetSelectionStats(ctx context.Context, season string, limit int) ([]*domain.SelectionStat, error) {
	args := m.Called(ctx, season, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SelectionStat), args.Error(1)
}

func (m *MockStatsRepository) GetFormationStats(ctx context.Context, season string) ([]*domain.FormationStat, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FormationStat), args.Error(1)
}

type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) Optimize(ctx context.Context, req optimizer.Request) (*optimizer.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*optimizer.Response), args.Error(1)
}
