package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

// GetSelectionStats считает, в скольких составах сезона встречается игрок (основа или скамейка)
func (r *statsRepository) GetSelectionStats(ctx context.Context, season string, limit int) ([]*domain.SelectionStat, error) {
	limit, _ = normalizePage(limit, 0)

	query := `
		WITH seats AS (
			SELECT s.session_id, slot->'player' AS player
			FROM squads s, jsonb_array_elements(s.squad->'lineup') AS slot
			WHERE s.season = $1
			UNION ALL
			SELECT s.session_id, seat AS player
			FROM squads s, jsonb_array_elements(s.squad->'bench') AS seat
			WHERE s.season = $1
		)
		SELECT (player->>'id')::int AS player_id,
			player->>'name' AS name,
			player->>'position' AS position,
			COUNT(DISTINCT session_id) AS selection_count
		FROM seats
		WHERE jsonb_typeof(player) = 'object'
		GROUP BY 1, 2, 3
		ORDER BY selection_count DESC, player_id
		LIMIT $2
	`

	rows, err := r.executor.QueryContext(ctx, query, season, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.SelectionStat
	for rows.Next() {
		stat := &domain.SelectionStat{}
		var position string
		err := rows.Scan(&stat.PlayerID, &stat.Name, &position, &stat.Count)
		if err != nil {
			return nil, err
		}
		stat.Position = domain.Position(position)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetFormationStats(ctx context.Context, season string) ([]*domain.FormationStat, error) {
	query := `
		SELECT formation, COUNT(*) AS count
		FROM squads
		WHERE season = $1
		GROUP BY formation
		ORDER BY count DESC, formation
	`

	rows, err := r.executor.QueryContext(ctx, query, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.FormationStat
	for rows.Next() {
		stat := &domain.FormationStat{}
		err := rows.Scan(&stat.Formation, &stat.Count)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
