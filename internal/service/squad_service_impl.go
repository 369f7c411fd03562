package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bagdasarian/squad-builder/internal/budget"
	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/engine"
	"github.com/bagdasarian/squad-builder/internal/formation"
	"github.com/bagdasarian/squad-builder/internal/optimizer"
	"github.com/bagdasarian/squad-builder/internal/reconcile"
	"github.com/bagdasarian/squad-builder/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// samplePoolSize - сколько игроков каждой позиции запрашивается для случайного состава
const samplePoolSize = 30

type squadService struct {
	squadRepo   repository.SquadRepository
	playerRepo  repository.PlayerRepository
	optimizer   Optimizer
	defaults    Defaults
	logger      *zap.Logger
	locks       *sessionLocks
	generations *generations
	newID       func() string
	newRand     func() *rand.Rand
}

// NewSquadService создает новый экземпляр SquadService
func NewSquadService(
	squadRepo repository.SquadRepository,
	playerRepo repository.PlayerRepository,
	opt Optimizer,
	defaults Defaults,
	logger *zap.Logger,
) SquadService {
	if logger == nil {
		logger = zap.NewNop()
	}

	if id, ok := formation.OrDefault(defaults.Formation); !ok {
		logger.Warn("configured default formation is invalid, falling back",
			zap.String("configured", defaults.Formation),
			zap.String("fallback", id),
		)
		defaults.Formation = id
	}

	return &squadService{
		squadRepo:   squadRepo,
		playerRepo:  playerRepo,
		optimizer:   opt,
		defaults:    defaults,
		logger:      logger,
		locks:       newSessionLocks(),
		generations: newGenerations(),
		newID:       uuid.NewString,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// mutate - загрузка, изменение и сохранение под замком сессии.
// Если fn ничего не изменила, запись не сохраняется.
func (s *squadService) mutate(ctx context.Context, sessionID string, fn func(e *engine.Engine) error) (*domain.SquadRecord, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	record, err := s.squadRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	e := engine.New(record.Squad)
	if err := fn(e); err != nil {
		return nil, err
	}
	if e.Version() == 0 {
		return record, nil
	}

	record.Squad = e.Snapshot()
	record.Version += e.Version()
	if err := s.squadRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateSquad создает пустой состав новой сессии
func (s *squadService) CreateSquad(ctx context.Context, season string, budgetLimit domain.Price, formationID string) (*domain.SquadRecord, error) {
	if season == "" {
		season = s.defaults.Season
	}
	if budgetLimit <= 0 {
		budgetLimit = s.defaults.Budget
	}
	if formationID == "" {
		formationID = s.defaults.Formation
	}

	squad, err := engine.NewSquad(formationID, season, budgetLimit)
	if err != nil {
		return nil, err
	}

	record := &domain.SquadRecord{
		SessionID: s.newID(),
		Squad:     squad,
	}
	if err := s.squadRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("squad created",
		zap.String("session_id", record.SessionID),
		zap.String("formation", squad.Formation),
		zap.String("season", season),
	)
	return record, nil
}

func (s *squadService) GetSquad(ctx context.Context, sessionID string) (*domain.SquadRecord, error) {
	return s.squadRepo.Get(ctx, sessionID)
}

func (s *squadService) lookupPlayer(ctx context.Context, season string, playerID int) (domain.Player, error) {
	p, err := s.playerRepo.GetByID(ctx, season, playerID)
	if err != nil {
		return domain.Player{}, err
	}
	return *p, nil
}

func (s *squadService) AssignPlayer(ctx context.Context, sessionID string, slot, playerID int) (*domain.SquadRecord, error) {
	return s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		p, err := s.lookupPlayer(ctx, e.Snapshot().Season, playerID)
		if err != nil {
			return err
		}
		return e.Assign(slot, p)
	})
}

func (s *squadService) RemovePlayer(ctx context.Context, sessionID string, slot int) (*domain.SquadRecord, error) {
	return s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		return e.Remove(slot)
	})
}

func (s *squadService) AddToBench(ctx context.Context, sessionID string, playerID int) (*domain.SquadRecord, error) {
	return s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		p, err := s.lookupPlayer(ctx, e.Snapshot().Season, playerID)
		if err != nil {
			return err
		}
		return e.AddToBench(p)
	})
}

func (s *squadService) RemoveFromBench(ctx context.Context, sessionID string, seat int) (*domain.SquadRecord, error) {
	return s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		return e.RemoveFromBench(seat)
	})
}

func (s *squadService) ClearSquad(ctx context.Context, sessionID string) (*domain.SquadRecord, error) {
	return s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		return e.Clear()
	})
}

// ChangeFormation: smart сохраняет игроков, насколько позволяет новая схема; hard очищает состав
func (s *squadService) ChangeFormation(ctx context.Context, sessionID, formationID string, mode FormationMode) (*domain.SquadRecord, engine.Reshuffle, error) {
	var reshuffle engine.Reshuffle
	record, err := s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		switch mode {
		case "", FormationModeSmart:
			result, err := e.ChangeFormation(formationID)
			if err != nil {
				return err
			}
			reshuffle = result
			return nil
		case FormationModeHard:
			return e.SetFormation(formationID)
		default:
			return domain.NewBadRequestError(fmt.Sprintf("unknown formation mode %q", mode))
		}
	})
	if err != nil {
		return nil, engine.Reshuffle{}, err
	}

	if reshuffle.Lossy() {
		s.logger.Info("formation change moved players out of the lineup",
			zap.String("session_id", sessionID),
			zap.String("formation", record.Squad.Formation),
			zap.Int("benched", len(reshuffle.Benched)),
			zap.Int("dropped", len(reshuffle.Dropped)),
		)
	}
	return record, reshuffle, nil
}

func (s *squadService) Summary(ctx context.Context, sessionID string) (*budget.Summary, error) {
	record, err := s.squadRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := budget.Summarize(record.Squad)
	return &summary, nil
}

// Optimize запрашивает оптимизатор и заменяет состав выбранным кандидатом.
// Запрос к оптимизатору и справочнику идет без замка; если за это время
// пришел более новый запрос оптимизации той же сессии, результат отбрасывается.
func (s *squadService) Optimize(ctx context.Context, sessionID string, params OptimizeParams) (*OptimizeResult, error) {
	gen := s.generations.Next(sessionID, purposeOptimize)
	defer s.generations.Done(sessionID, purposeOptimize)

	record, err := s.squadRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.optimizer == nil {
		return nil, domain.ErrOptimizerUnavailable
	}

	resp, err := s.optimizer.Optimize(ctx, optimizer.Request{
		Season:         record.Squad.Season,
		Budget:         record.Squad.Budget,
		Horizon:        params.Horizon,
		CurrentSquad:   record.Squad.PlayerIDs(),
		FreeTransfers:  params.FreeTransfers,
		ExcludePlayers: params.ExcludePlayers,
		LockPlayers:    params.LockPlayers,
	})
	if err != nil {
		return nil, err
	}
	if params.Candidate < 0 || params.Candidate >= len(resp.Candidates) {
		return nil, domain.ErrNoCandidate
	}
	selected := resp.Candidates[params.Candidate]

	formationID, players, err := reconcile.Resolve(ctx, record.Squad.Season, selected.Candidate, s.playerRepo)
	if err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		if !s.generations.IsLatest(sessionID, purposeOptimize, gen) {
			return domain.ErrStaleRequest
		}
		next, err := reconcile.Apply(e.Snapshot(), formationID, players)
		if err != nil {
			return err
		}
		e.Replace(next)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStaleRequest) {
			s.logger.Info("discarding stale optimizer result", zap.String("session_id", sessionID), zap.Uint64("generation", gen))
		}
		return nil, err
	}

	return &OptimizeResult{
		Record:     updated,
		Selected:   selected,
		Candidates: len(resp.Candidates),
	}, nil
}

// LoadSample заполняет пустые места случайными игроками из справочника.
// Списки по позициям запрашиваются параллельно, изменения накладываются на
// состав, актуальный к моменту завершения запросов.
func (s *squadService) LoadSample(ctx context.Context, sessionID string) (*SampleResult, error) {
	gen := s.generations.Next(sessionID, purposeSample)
	defer s.generations.Done(sessionID, purposeSample)

	record, err := s.squadRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pools, err := s.fetchPools(ctx, record.Squad.Season)
	if err != nil {
		return nil, err
	}

	result := &SampleResult{}
	updated, err := s.mutate(ctx, sessionID, func(e *engine.Engine) error {
		if !s.generations.IsLatest(sessionID, purposeSample, gen) {
			return domain.ErrStaleRequest
		}
		result.Assigned, result.Benched, result.Skipped = s.fillFromPools(e, pools)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStaleRequest) {
			s.logger.Info("discarding stale sample load", zap.String("session_id", sessionID), zap.Uint64("generation", gen))
		}
		return nil, err
	}

	if result.Skipped > 0 {
		s.logger.Warn("sample load skipped players",
			zap.String("session_id", sessionID),
			zap.Int("skipped", result.Skipped),
		)
	}
	result.Record = updated
	return result, nil
}

func (s *squadService) fetchPools(ctx context.Context, season string) (map[domain.Position][]domain.Player, error) {
	results := make([][]domain.Player, len(domain.Positions))

	g, gctx := errgroup.WithContext(ctx)
	for i, pos := range domain.Positions {
		g.Go(func() error {
			page, err := s.playerRepo.ListPlayers(gctx, domain.PlayerQuery{
				Position: pos,
				Season:   season,
				Limit:    samplePoolSize,
			})
			if err != nil {
				return fmt.Errorf("load %s pool: %w", pos, err)
			}
			results[i] = page.Players
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pools := make(map[domain.Position][]domain.Player, len(domain.Positions))
	for i, pos := range domain.Positions {
		pools[pos] = results[i]
	}
	return pools, nil
}

// fillFromPools занимает пустые слоты основы, затем по одному запасному на линию.
// Ошибка отдельного игрока не прерывает загрузку.
func (s *squadService) fillFromPools(e *engine.Engine, pools map[domain.Position][]domain.Player) (assigned, benched, skipped int) {
	snapshot := e.Snapshot()
	exclude := make(map[int]bool)
	for _, id := range snapshot.PlayerIDs() {
		exclude[id] = true
	}

	need := make(map[domain.Position]int, len(domain.Positions))
	for _, slot := range snapshot.Lineup {
		if slot.Empty() {
			need[slot.Position]++
		}
	}

	rng := s.newRand()
	picked := make(map[domain.Position][]domain.Player, len(domain.Positions))
	for _, pos := range domain.Positions {
		picked[pos] = SelectPlayers(pools[pos], exclude, need[pos]+1, rng)
	}

	for i, slot := range snapshot.Lineup {
		if !slot.Empty() || len(picked[slot.Position]) == 0 {
			continue
		}
		p := picked[slot.Position][0]
		picked[slot.Position] = picked[slot.Position][1:]
		if err := e.Assign(i, p); err != nil {
			skipped++
			continue
		}
		assigned++
	}

	for _, pos := range domain.Positions {
		if e.Snapshot().BenchCount() == domain.BenchCapacity {
			break
		}
		if len(picked[pos]) == 0 {
			continue
		}
		if err := e.AddToBench(picked[pos][0]); err != nil {
			skipped++
			continue
		}
		benched++
	}
	return assigned, benched, skipped
}
