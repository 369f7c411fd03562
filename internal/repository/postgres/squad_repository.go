package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

type squadRepository struct {
	executor DBExecutor
}

func NewSquadRepository(db *sql.DB) *squadRepository {
	return &squadRepository{executor: db}
}

func (r *squadRepository) Get(ctx context.Context, sessionID string) (*domain.SquadRecord, error) {
	query := `
		SELECT session_id, squad, version, created_at, updated_at
		FROM squads
		WHERE session_id = $1
	`

	record := &domain.SquadRecord{}
	var payload []byte
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, sessionID).Scan(
		&record.SessionID,
		&payload,
		&record.Version,
		&record.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("squad")
		}
		return nil, err
	}

	if updatedAt.Valid {
		record.UpdatedAt = &updatedAt.Time
	}

	if err := json.Unmarshal(payload, &record.Squad); err != nil {
		return nil, fmt.Errorf("decode squad %s: %w", sessionID, err)
	}
	// в старых записях скамейка могла быть короче
	if len(record.Squad.Bench) != domain.BenchCapacity {
		record.Squad = record.Squad.Clone()
	}

	return record, nil
}

// Save - upsert по session_id. Снимок хранится в JSONB целиком.
func (r *squadRepository) Save(ctx context.Context, record *domain.SquadRecord) error {
	payload, err := json.Marshal(record.Squad)
	if err != nil {
		return fmt.Errorf("encode squad %s: %w", record.SessionID, err)
	}

	query := `
		INSERT INTO squads (session_id, season, formation, squad, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO UPDATE
		SET season = EXCLUDED.season,
			formation = EXCLUDED.formation,
			squad = EXCLUDED.squad,
			version = EXCLUDED.version,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		record.SessionID,
		record.Squad.Season,
		record.Squad.Formation,
		payload,
		record.Version,
		time.Now(),
	).Scan(&record.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	if updatedAt.Valid {
		record.UpdatedAt = &updatedAt.Time
	} else {
		record.UpdatedAt = nil
	}
	return nil
}
