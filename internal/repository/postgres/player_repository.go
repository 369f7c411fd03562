package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

type playerRepository struct {
	executor DBExecutor
}

func NewPlayerRepository(db *sql.DB) *playerRepository {
	return &playerRepository{executor: db}
}

// normalizePage ограничивает limit диапазоном [1, 200], offset не бывает отрицательным
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// likeEscaper экранирует спецсимволы LIKE, чтобы поиск шел по буквальной подстроке
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func playerFilter(q domain.PlayerQuery) (string, []any) {
	conditions := []string{"season = $1"}
	args := []any{q.Season}

	if q.Position != "" {
		args = append(args, string(q.Position))
		conditions = append(conditions, fmt.Sprintf("position = $%d", len(args)))
	}
	if team := strings.TrimSpace(q.Team); team != "" {
		args = append(args, team)
		conditions = append(conditions, fmt.Sprintf("LOWER(team) = LOWER($%d)", len(args)))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		conditions = append(conditions, fmt.Sprintf(`name ILIKE $%d ESCAPE '\'`, len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

func (r *playerRepository) ListPlayers(ctx context.Context, q domain.PlayerQuery) (domain.PlayerPage, error) {
	limit, offset := normalizePage(q.Limit, q.Offset)
	where, args := playerFilter(q)

	var page domain.PlayerPage
	countQuery := "SELECT COUNT(*) FROM players WHERE " + where
	if err := r.executor.QueryRowContext(ctx, countQuery, args...).Scan(&page.Total); err != nil {
		return domain.PlayerPage{}, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, position, team, price, extra
		FROM players
		WHERE %s
		ORDER BY price DESC, id
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.PlayerPage{}, err
	}
	defer rows.Close()

	page.Players = make([]domain.Player, 0, limit)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return domain.PlayerPage{}, err
		}
		page.Players = append(page.Players, p)
	}

	return page, rows.Err()
}

func (r *playerRepository) GetByID(ctx context.Context, season string, id int) (*domain.Player, error) {
	query := `
		SELECT id, name, position, team, price, extra
		FROM players
		WHERE season = $1 AND id = $2
	`

	p, err := scanPlayer(r.executor.QueryRowContext(ctx, query, season, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("player %d", id))
		}
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var p domain.Player
	var position string
	var price decimal.Decimal
	var extra []byte

	err := row.Scan(&p.ID, &p.Name, &position, &p.Team, &price, &extra)
	if err != nil {
		return domain.Player{}, err
	}

	pos, ok := domain.ParsePosition(position)
	if !ok {
		return domain.Player{}, fmt.Errorf("player %d: unknown position %q", p.ID, position)
	}
	p.Position = pos
	if p.Price, err = domain.PriceFromDecimal(price); err != nil {
		return domain.Player{}, fmt.Errorf("player %d: %w", p.ID, err)
	}

	if len(extra) > 0 && string(extra) != "null" {
		if err := json.Unmarshal(extra, &p.Extra); err != nil {
			return domain.Player{}, fmt.Errorf("player %d extra: %w", p.ID, err)
		}
	}
	return p, nil
}
