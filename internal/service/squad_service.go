package service

import (
	"context"

	"github.com/bagdasarian/squad-builder/internal/budget"
	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/engine"
	"github.com/bagdasarian/squad-builder/internal/optimizer"
)

type FormationMode string

const (
	FormationModeSmart FormationMode = "smart"
	FormationModeHard  FormationMode = "hard"
)

const (
	purposeOptimize = "optimize"
	purposeSample   = "sample"
)

// Optimizer - внешний сервис оптимизации состава
type Optimizer interface {
	Optimize(ctx context.Context, req optimizer.Request) (*optimizer.Response, error)
}

type Defaults struct {
	Season    string
	Budget    domain.Price
	Formation string
}

type OptimizeParams struct {
	Horizon        int
	FreeTransfers  int
	Candidate      int
	ExcludePlayers []int
	LockPlayers    []int
}

type OptimizeResult struct {
	Record     *domain.SquadRecord
	Selected   optimizer.Ranked
	Candidates int
}

type SampleResult struct {
	Record   *domain.SquadRecord
	Assigned int
	Benched  int
	Skipped  int
}

type SquadService interface {
	CreateSquad(ctx context.Context, season string, budget domain.Price, formationID string) (*domain.SquadRecord, error)
	GetSquad(ctx context.Context, sessionID string) (*domain.SquadRecord, error)
	AssignPlayer(ctx context.Context, sessionID string, slot, playerID int) (*domain.SquadRecord, error)
	RemovePlayer(ctx context.Context, sessionID string, slot int) (*domain.SquadRecord, error)
	AddToBench(ctx context.Context, sessionID string, playerID int) (*domain.SquadRecord, error)
	RemoveFromBench(ctx context.Context, sessionID string, seat int) (*domain.SquadRecord, error)
	ClearSquad(ctx context.Context, sessionID string) (*domain.SquadRecord, error)
	ChangeFormation(ctx context.Context, sessionID, formationID string, mode FormationMode) (*domain.SquadRecord, engine.Reshuffle, error)
	Summary(ctx context.Context, sessionID string) (*budget.Summary, error)
	Optimize(ctx context.Context, sessionID string, params OptimizeParams) (*OptimizeResult, error)
	LoadSample(ctx context.Context, sessionID string) (*SampleResult, error)
}
