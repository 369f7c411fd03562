package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/engine"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	players []domain.Player
	calls   map[domain.Position]int
	err     error
}

func newFakeDirectory(players ...domain.Player) *fakeDirectory {
	return &fakeDirectory{players: players, calls: map[domain.Position]int{}}
}

func (d *fakeDirectory) ListPlayers(_ context.Context, q domain.PlayerQuery) (domain.PlayerPage, error) {
	if d.err != nil {
		return domain.PlayerPage{}, d.err
	}
	if q.Offset == 0 {
		d.calls[q.Position]++
	}

	var filtered []domain.Player
	for _, p := range d.players {
		if p.Position == q.Position {
			filtered = append(filtered, p)
		}
	}
	page := domain.PlayerPage{Total: len(filtered)}
	if q.Offset < len(filtered) {
		end := q.Offset + q.Limit
		if end > len(filtered) {
			end = len(filtered)
		}
		page.Players = filtered[q.Offset:end]
	}
	return page, nil
}

// roster442 - 11 игроков основы 4-4-2 и 4 запасных, упорядоченных по линиям
func roster442() ([]int, []domain.Player) {
	layout := []struct {
		pos   domain.Position
		count int
		base  int
	}{
		{domain.PositionGK, 2, 100},
		{domain.PositionDEF, 5, 200},
		{domain.PositionMID, 5, 300},
		{domain.PositionFWD, 3, 400},
	}
	var xi, bench []int
	var players []domain.Player
	xiCounts := map[domain.Position]int{domain.PositionGK: 1, domain.PositionDEF: 4, domain.PositionMID: 4, domain.PositionFWD: 2}
	for _, l := range layout {
		for n := 1; n <= l.count; n++ {
			id := l.base + n
			players = append(players, domain.Player{ID: id, Position: l.pos, Team: "T", Price: 50})
			if n <= xiCounts[l.pos] {
				xi = append(xi, id)
			} else {
				bench = append(bench, id)
			}
		}
	}
	return append(xi, bench...), players
}

func startingSquad(t *testing.T) domain.Squad {
	t.Helper()
	s, err := engine.NewSquad("3-5-2", "2025-26", 1000)
	require.NoError(t, err)
	s, err = engine.Assign(s, 0, domain.Player{ID: 999, Position: domain.PositionGK})
	require.NoError(t, err)
	return s
}

func TestReconcile_IdentifierRoster(t *testing.T) {
	ids, players := roster442()
	dir := newFakeDirectory(players...)
	s := startingSquad(t)

	next, err := Reconcile(context.Background(), s, IdentifierRoster{Formation: "4-4-2", IDs: ids}, dir)
	require.NoError(t, err)

	assert.Equal(t, "4-4-2", next.Formation)
	assert.Equal(t, 0, next.EmptySlots())
	assert.Equal(t, domain.BenchCapacity, next.BenchCount())
	assert.False(t, next.Contains(999), "прежний состав полностью заменяется")
	assert.Equal(t, ids, next.PlayerIDs())
	for pos, n := range dir.calls {
		assert.Equal(t, 1, n, "listing for %s fetched more than once", pos)
	}
}

func TestReconcile_UnresolvedLeavesSnapshot(t *testing.T) {
	ids, players := roster442()
	// убираем одного защитника из справочника
	var without []domain.Player
	for _, p := range players {
		if p.ID != 203 {
			without = append(without, p)
		}
	}
	s := startingSquad(t)

	next, err := Reconcile(context.Background(), s, IdentifierRoster{Formation: "4-4-2", IDs: ids}, newFakeDirectory(without...))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnresolvedPlayer))
	assert.Contains(t, err.Error(), "203")
	assert.Empty(t, cmp.Diff(s, next))
}

func TestReconcile_WrongPositionIsUnresolved(t *testing.T) {
	ids, players := roster442()
	// первый защитник в справочнике числится полузащитником
	for i := range players {
		if players[i].ID == 201 {
			players[i].Position = domain.PositionMID
		}
	}

	_, err := Reconcile(context.Background(), startingSquad(t), IdentifierRoster{Formation: "4-4-2", IDs: ids}, newFakeDirectory(players...))
	assert.True(t, errors.Is(err, domain.ErrUnresolvedPlayer))
}

func TestReconcile_Paging(t *testing.T) {
	var players []domain.Player
	for i := 1; i <= PageSize+5; i++ {
		players = append(players, domain.Player{ID: i, Position: domain.PositionGK})
	}
	dir := newFakeDirectory(players...)

	_, resolved, err := Resolve(context.Background(), "2025-26", IdentifierRoster{Formation: "4-4-2", IDs: []int{PageSize + 3}}, dir)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, PageSize+3, resolved[0].ID)
}

func TestReconcile_FullRoster(t *testing.T) {
	_, players := roster442()
	// полные записи могут идти не по порядку линий внутри основы
	xi := []domain.Player{}
	for _, p := range players {
		if p.Position == domain.PositionFWD && len(xi) < 2 {
			xi = append(xi, p)
		}
	}
	counts := map[domain.Position]int{domain.PositionGK: 1, domain.PositionDEF: 4, domain.PositionMID: 4}
	for _, p := range players {
		if counts[p.Position] > 0 {
			xi = append(xi, p)
			counts[p.Position]--
		}
	}
	require.Len(t, xi, 11)

	next, err := Reconcile(context.Background(), startingSquad(t), FullRoster{Formation: "4-4-2", Players: xi}, newFakeDirectory())
	require.NoError(t, err)
	assert.Equal(t, 0, next.EmptySlots())
	assert.Equal(t, 0, next.BenchCount())
}

func TestReconcile_Failures(t *testing.T) {
	s := startingSquad(t)
	gk := domain.Player{ID: 1, Position: domain.PositionGK}

	tests := []struct {
		name      string
		candidate Candidate
		dir       *fakeDirectory
		wantErr   error
	}{
		{
			name:      "неверная схема",
			candidate: FullRoster{Formation: "4-4-3", Players: []domain.Player{gk}},
			dir:       newFakeDirectory(),
			wantErr:   domain.ErrInvalidFormation,
		},
		{
			name:      "лишний вратарь в основе",
			candidate: FullRoster{Formation: "4-4-2", Players: []domain.Player{gk, {ID: 2, Position: domain.PositionGK}}},
			dir:       newFakeDirectory(),
			wantErr:   domain.ErrPositionMismatch,
		},
		{
			name:      "дубликат",
			candidate: FullRoster{Formation: "4-4-2", Players: []domain.Player{gk, {ID: 1, Position: domain.PositionDEF}}},
			dir:       newFakeDirectory(),
			wantErr:   domain.ErrDuplicatePlayer,
		},
		{
			name:      "нет кандидата",
			candidate: nil,
			dir:       newFakeDirectory(),
			wantErr:   domain.ErrNoCandidate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Reconcile(context.Background(), s, tt.candidate, tt.dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, cmp.Diff(s, next))
		})
	}

	t.Run("ошибка справочника", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.err = errors.New("connection refused")
		next, err := Reconcile(context.Background(), s, IdentifierRoster{Formation: "4-4-2", IDs: []int{1}}, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Empty(t, cmp.Diff(s, next))
	})

	t.Run("переполнение скамейки", func(t *testing.T) {
		ids, players := roster442()
		players = append(players, domain.Player{ID: 501, Position: domain.PositionFWD})
		ids = append(ids, 501)
		next, err := Reconcile(context.Background(), s, IdentifierRoster{Formation: "4-4-2", IDs: ids}, newFakeDirectory(players...))
		assert.True(t, errors.Is(err, domain.ErrBenchFull))
		assert.Empty(t, cmp.Diff(s, next))
	})
}
