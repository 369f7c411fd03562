package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/engine"
	"github.com/bagdasarian/squad-builder/internal/formation"
)

// PageSize - размер страницы при поиске идентификаторов в справочнике
const PageSize = 200

// Candidate - состав, предложенный оптимизатором: либо полные записи игроков,
// либо только идентификаторы, упорядоченные по линиям (GK, DEF, MID, FWD).
type Candidate interface {
	FormationID() string
	isCandidate()
}

type FullRoster struct {
	Formation string
	Players   []domain.Player
}

func (r FullRoster) FormationID() string { return r.Formation }
func (FullRoster) isCandidate()          {}

type IdentifierRoster struct {
	Formation string
	IDs       []int
}

func (r IdentifierRoster) FormationID() string { return r.Formation }
func (IdentifierRoster) isCandidate()          {}

// Directory - справочник игроков, по которому разрешаются идентификаторы
type Directory interface {
	ListPlayers(ctx context.Context, query domain.PlayerQuery) (domain.PlayerPage, error)
}

// Reconcile заменяет содержимое состава кандидатом оптимизатора.
// При любой ошибке возвращается исходный снимок.
func Reconcile(ctx context.Context, s domain.Squad, c Candidate, dir Directory) (domain.Squad, error) {
	formationID, players, err := Resolve(ctx, s.Season, c, dir)
	if err != nil {
		return s, err
	}
	return Apply(s, formationID, players)
}

// Resolve приводит кандидата к списку полных записей игроков
func Resolve(ctx context.Context, season string, c Candidate, dir Directory) (string, []domain.Player, error) {
	if c == nil {
		return "", nil, domain.ErrNoCandidate
	}

	formationID := strings.TrimSpace(c.FormationID())
	if _, err := formation.CountsFor(formationID); err != nil {
		return "", nil, err
	}

	switch v := c.(type) {
	case FullRoster:
		players := make([]domain.Player, len(v.Players))
		copy(players, v.Players)
		return formationID, players, nil
	case IdentifierRoster:
		players, err := resolveIDs(ctx, season, formationID, v.IDs, dir)
		if err != nil {
			return "", nil, err
		}
		return formationID, players, nil
	default:
		return "", nil, fmt.Errorf("unknown candidate type %T", c)
	}
}

func resolveIDs(ctx context.Context, season, formationID string, ids []int, dir Directory) ([]domain.Player, error) {
	cache := &listingCache{ctx: ctx, season: season, dir: dir, byPosition: map[domain.Position]map[int]domain.Player{}}

	players := make([]domain.Player, 0, len(ids))
	for i, id := range ids {
		if i < formation.LineupSize {
			pos, err := formation.PositionAt(formationID, i)
			if err != nil {
				return nil, err
			}
			p, ok, err := cache.find(pos, id)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, domain.NewUnresolvedPlayerError(id, pos)
			}
			players = append(players, p)
			continue
		}

		// запасные: позиция заранее неизвестна
		p, found, err := cache.findAny(id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, domain.NewUnresolvedPlayerError(id, "any")
		}
		players = append(players, p)
	}
	return players, nil
}

// listingCache загружает список игроков каждой позиции не более одного раза
type listingCache struct {
	ctx        context.Context
	season     string
	dir        Directory
	byPosition map[domain.Position]map[int]domain.Player
}

func (c *listingCache) find(pos domain.Position, id int) (domain.Player, bool, error) {
	listing, err := c.listing(pos)
	if err != nil {
		return domain.Player{}, false, err
	}
	p, ok := listing[id]
	return p, ok, nil
}

func (c *listingCache) findAny(id int) (domain.Player, bool, error) {
	for _, pos := range domain.Positions {
		p, ok, err := c.find(pos, id)
		if err != nil || ok {
			return p, ok, err
		}
	}
	return domain.Player{}, false, nil
}

func (c *listingCache) listing(pos domain.Position) (map[int]domain.Player, error) {
	if listing, ok := c.byPosition[pos]; ok {
		return listing, nil
	}

	listing := make(map[int]domain.Player)
	for offset := 0; ; offset += PageSize {
		page, err := c.dir.ListPlayers(c.ctx, domain.PlayerQuery{
			Position: pos,
			Season:   c.season,
			Limit:    PageSize,
			Offset:   offset,
		})
		if err != nil {
			return nil, fmt.Errorf("list %s players: %w", pos, err)
		}
		for _, p := range page.Players {
			if p.Position == pos {
				listing[p.ID] = p
			}
		}
		if len(page.Players) < PageSize || (page.Total > 0 && offset+len(page.Players) >= page.Total) {
			break
		}
	}

	c.byPosition[pos] = listing
	return listing, nil
}

// Apply - жесткая смена схемы и последовательное заполнение: первые 11 игроков
// занимают первый свободный слот своей позиции, остальные идут на скамейку.
func Apply(s domain.Squad, formationID string, players []domain.Player) (domain.Squad, error) {
	next, err := engine.SetFormation(s, formationID)
	if err != nil {
		return s, err
	}

	for i, p := range players {
		if i >= formation.LineupSize {
			next, err = engine.AddToBench(next, p)
			if err != nil {
				return s, err
			}
			continue
		}

		slot := firstEmptySlot(next, p.Position)
		if slot < 0 {
			return s, domain.ErrPositionMismatch
		}
		next, err = engine.Assign(next, slot, p)
		if err != nil {
			return s, err
		}
	}
	return next, nil
}

func firstEmptySlot(s domain.Squad, pos domain.Position) int {
	for i, slot := range s.Lineup {
		if slot.Position == pos && slot.Player == nil {
			return i
		}
	}
	return -1
}
