package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/formation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(id int, pos domain.Position) domain.Player {
	return domain.Player{ID: id, Name: "p", Position: pos, Team: "ARS", Price: 50}
}

func newSquad(t *testing.T, formationID string) domain.Squad {
	t.Helper()
	s, err := NewSquad(formationID, "2025-26", 1000)
	require.NoError(t, err)
	return s
}

// fillLineup заполняет все слоты; id = 100*(индекс линии+1) + номер в линии
func fillLineup(t *testing.T, s domain.Squad) domain.Squad {
	t.Helper()
	perLine := map[domain.Position]int{}
	lineNo := map[domain.Position]int{domain.PositionGK: 1, domain.PositionDEF: 2, domain.PositionMID: 3, domain.PositionFWD: 4}
	for i, slot := range s.Lineup {
		perLine[slot.Position]++
		var err error
		s, err = Assign(s, i, player(100*lineNo[slot.Position]+perLine[slot.Position], slot.Position))
		require.NoError(t, err)
	}
	return s
}

func lineIDs(s domain.Squad, pos domain.Position) []int {
	var ids []int
	for _, slot := range s.Lineup {
		if slot.Position == pos && slot.Player != nil {
			ids = append(ids, slot.Player.ID)
		}
	}
	return ids
}

func benchIDs(s domain.Squad) []int {
	var ids []int
	for _, p := range s.Bench {
		if p != nil {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func TestNewSquad(t *testing.T) {
	s := newSquad(t, "4-4-2")
	assert.Equal(t, "4-4-2", s.Formation)
	assert.Len(t, s.Lineup, formation.LineupSize)
	assert.Len(t, s.Bench, domain.BenchCapacity)
	assert.Equal(t, formation.LineupSize, s.EmptySlots())
	assert.Equal(t, 0, s.BenchCount())

	_, err := NewSquad("4-4", "2025-26", 1000)
	assert.True(t, errors.Is(err, domain.ErrInvalidFormation))
}

func TestAssign(t *testing.T) {
	t.Run("успешное назначение", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		next, err := Assign(s, 0, player(1, domain.PositionGK))
		require.NoError(t, err)
		require.NotNil(t, next.Lineup[0].Player)
		assert.Equal(t, 1, next.Lineup[0].Player.ID)
		assert.True(t, s.Lineup[0].Empty(), "исходный снимок не должен меняться")
	})

	t.Run("отказ при несовпадении позиций для каждой пары", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		slotFor := map[domain.Position]int{
			domain.PositionGK:  0,
			domain.PositionDEF: 1,
			domain.PositionMID: 5,
			domain.PositionFWD: 9,
		}
		for _, slotPos := range domain.Positions {
			for _, playerPos := range domain.Positions {
				if slotPos == playerPos {
					continue
				}
				next, err := Assign(s, slotFor[slotPos], player(7, playerPos))
				require.Error(t, err, "%s into %s", playerPos, slotPos)
				assert.True(t, errors.Is(err, domain.ErrPositionMismatch))
				assert.Empty(t, cmp.Diff(s, next))
			}
		}
	})

	t.Run("отказ при дубликате в основе", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		s, err := Assign(s, 1, player(10, domain.PositionDEF))
		require.NoError(t, err)

		next, err := Assign(s, 2, player(10, domain.PositionDEF))
		assert.True(t, errors.Is(err, domain.ErrDuplicatePlayer))
		assert.Empty(t, cmp.Diff(s, next))
	})

	t.Run("отказ при дубликате на скамейке", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		s, err := AddToBench(s, player(10, domain.PositionDEF))
		require.NoError(t, err)

		_, err = Assign(s, 1, player(10, domain.PositionDEF))
		assert.True(t, errors.Is(err, domain.ErrDuplicatePlayer))
	})

	t.Run("вытесненный игрок выбывает из состава", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		s, err := Assign(s, 1, player(10, domain.PositionDEF))
		require.NoError(t, err)

		s, err = Assign(s, 1, player(11, domain.PositionDEF))
		require.NoError(t, err)
		assert.Equal(t, 11, s.Lineup[1].Player.ID)
		assert.False(t, s.Contains(10))
		assert.Equal(t, 0, s.BenchCount())
	})

	t.Run("повторное назначение того же игрока в тот же слот", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		s, err := Assign(s, 1, player(10, domain.PositionDEF))
		require.NoError(t, err)

		next, err := Assign(s, 1, player(10, domain.PositionDEF))
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(s, next))
	})

	t.Run("индекс вне диапазона", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		for _, idx := range []int{-1, formation.LineupSize} {
			_, err := Assign(s, idx, player(1, domain.PositionGK))
			assert.True(t, errors.Is(err, domain.ErrInvalidSlot))
		}
	})
}

func TestRemove(t *testing.T) {
	s := newSquad(t, "4-4-2")
	s, err := Assign(s, 0, player(1, domain.PositionGK))
	require.NoError(t, err)

	s, err = Remove(s, 0)
	require.NoError(t, err)
	assert.True(t, s.Lineup[0].Empty())

	again, err := Remove(s, 0)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(s, again))

	_, err = Remove(s, 42)
	assert.True(t, errors.Is(err, domain.ErrInvalidSlot))
}

func TestBench(t *testing.T) {
	t.Run("заполнение до отказа", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		var err error
		for i := 1; i <= domain.BenchCapacity; i++ {
			s, err = AddToBench(s, player(i, domain.PositionMID))
			require.NoError(t, err)
		}
		assert.Equal(t, []int{1, 2, 3, 4}, benchIDs(s))

		next, err := AddToBench(s, player(5, domain.PositionMID))
		assert.True(t, errors.Is(err, domain.ErrBenchFull))
		assert.Empty(t, cmp.Diff(s, next))
	})

	t.Run("дубликат из основы", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		s, err := Assign(s, 0, player(1, domain.PositionGK))
		require.NoError(t, err)

		_, err = AddToBench(s, player(1, domain.PositionGK))
		assert.True(t, errors.Is(err, domain.ErrDuplicatePlayer))
	})

	t.Run("освобожденное место занимается первым", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		var err error
		for i := 1; i <= 3; i++ {
			s, err = AddToBench(s, player(i, domain.PositionFWD))
			require.NoError(t, err)
		}
		s, err = RemoveFromBench(s, 1)
		require.NoError(t, err)
		assert.Nil(t, s.Bench[1])

		s, err = AddToBench(s, player(9, domain.PositionGK))
		require.NoError(t, err)
		assert.Equal(t, 9, s.Bench[1].ID)
	})

	t.Run("удаление с пустого места и вне диапазона", func(t *testing.T) {
		s := newSquad(t, "4-4-2")
		next, err := RemoveFromBench(s, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, next.BenchCount())

		_, err = RemoveFromBench(s, domain.BenchCapacity)
		assert.True(t, errors.Is(err, domain.ErrInvalidSlot))
	})
}

func TestClear(t *testing.T) {
	s := fillLineup(t, newSquad(t, "3-5-2"))
	s, err := AddToBench(s, player(999, domain.PositionGK))
	require.NoError(t, err)

	cleared, err := Clear(s)
	require.NoError(t, err)
	assert.Equal(t, "3-5-2", cleared.Formation)
	assert.Equal(t, domain.Price(1000), cleared.Budget)
	assert.Equal(t, "2025-26", cleared.Season)
	assert.Equal(t, formation.LineupSize, cleared.EmptySlots())
	assert.Equal(t, 0, cleared.BenchCount())
}

func TestSetFormation(t *testing.T) {
	s := fillLineup(t, newSquad(t, "4-4-2"))
	s, err := AddToBench(s, player(999, domain.PositionGK))
	require.NoError(t, err)

	next, err := SetFormation(s, "3-4-3")
	require.NoError(t, err)
	assert.Equal(t, "3-4-3", next.Formation)
	assert.Equal(t, formation.LineupSize, next.EmptySlots())
	assert.Equal(t, 0, next.BenchCount())

	bad, err := SetFormation(s, "10-0-0")
	assert.True(t, errors.Is(err, domain.ErrInvalidFormation))
	assert.Empty(t, cmp.Diff(s, bad))
}

// Случайные последовательности операций никогда не дают двух мест с одним игроком
func TestNoDuplicatesUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := newSquad(t, "4-4-2")

	for step := 0; step < 5000; step++ {
		p := player(rng.Intn(25), domain.Positions[rng.Intn(len(domain.Positions))])
		switch rng.Intn(5) {
		case 0, 1:
			s, _ = Assign(s, rng.Intn(len(s.Lineup)), p)
		case 2:
			s, _ = AddToBench(s, p)
		case 3:
			s, _ = Remove(s, rng.Intn(len(s.Lineup)))
		case 4:
			s, _ = RemoveFromBench(s, rng.Intn(domain.BenchCapacity))
		}

		seen := map[int]bool{}
		for _, id := range s.PlayerIDs() {
			require.False(t, seen[id], "step %d: player %d occupies two seats", step, id)
			seen[id] = true
		}
		for i, slot := range s.Lineup {
			if slot.Player != nil {
				require.Equal(t, slot.Position, slot.Player.Position, "step %d slot %d", step, i)
			}
		}
		require.LessOrEqual(t, s.BenchCount(), domain.BenchCapacity)
	}
}
