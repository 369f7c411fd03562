package handler

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/budget"
	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/engine"
	"github.com/bagdasarian/squad-builder/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSquadService struct {
	mock.Mock
}

func (m *MockSquadService) record(args mock.Arguments) (*domain.SquadRecord, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SquadRecord), args.Error(1)
}

func (m *MockSquadService) CreateSquad(ctx context.Context, season string, budgetLimit domain.Price, formationID string) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, season, budgetLimit, formationID))
}

func (m *MockSquadService) GetSquad(ctx context.Context, sessionID string) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, sessionID))
}

func (m *MockSquadService) AssignPlayer(ctx context.Context, sessionID string, slot, playerID int) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, sessionID, slot, playerID))
}

func (m *MockSquadService) RemovePlayer(ctx context.Context, sessionID string, slot int) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, sessionID, slot))
}

func (m *MockSquadService) AddToBench(ctx context.Context, sessionID string, playerID int) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, sessionID, playerID))
}

func (m *MockSquadService) RemoveFromBench(ctx context.Context, sessionID string, seat int) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, sessionID, seat))
}

func (m *MockSquadService) ClearSquad(ctx context.Context, sessionID string) (*domain.SquadRecord, error) {
	return m.record(m.Called(ctx, sessionID))
}

func (m *MockSquadService) ChangeFormation(ctx context.Context, sessionID, formationID string, mode service.FormationMode) (*domain.SquadRecord, engine.Reshuffle, error) {
	args := m.Called(ctx, sessionID, formationID, mode)
	if args.Get(0) == nil {
		return nil, engine.Reshuffle{}, args.Error(2)
	}
	return args.Get(0).(*domain.SquadRecord), args.Get(1).(engine.Reshuffle), args.Error(2)
}

func (m *MockSquadService) Summary(ctx context.Context, sessionID string) (*budget.Summary, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Summary), args.Error(1)
}

func (m *MockSquadService) Optimize(ctx context.Context, sessionID string, params service.OptimizeParams) (*service.OptimizeResult, error) {
	args := m.Called(ctx, sessionID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OptimizeResult), args.Error(1)
}

func (m *MockSquadService) LoadSample(ctx context.Context, sessionID string) (*service.SampleResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SampleResult), args.Error(1)
}

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) ListPlayers(ctx context.Context, query domain.PlayerQuery) (domain.PlayerPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.PlayerPage), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, season string, id int) (*domain.Player, error) {
	args := m.Called(ctx, season, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetSelectionStats(ctx context.Context, season string, limit int) ([]*domain.SelectionStat, error) {
	args := m.Called(ctx, season, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SelectionStat), args.Error(1)
}

func (m *MockStatsService) GetFormationStats(ctx context.Context, season string) ([]*domain.FormationStat, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FormationStat), args.Error(1)
}
