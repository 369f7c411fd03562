package domain

import "time"

// BenchCapacity - количество мест на скамейке запасных
const BenchCapacity = 4

type Slot struct {
	Position Position `json:"position"`
	Player   *Player  `json:"player,omitempty"`
}

func (s Slot) Empty() bool {
	return s.Player == nil
}

// Squad - неизменяемый снимок состава. Любая операция движка возвращает новый Squad.
type Squad struct {
	Formation string    `json:"formation"`
	Lineup    []Slot    `json:"lineup"`
	Bench     []*Player `json:"bench"`
	Season    string    `json:"season"`
	Budget    Price     `json:"budget"`
}

// Clone копирует срезы слотов и скамейки. Сами Player не копируются:
// они считаются неизменяемыми значениями.
func (s Squad) Clone() Squad {
	out := s
	out.Lineup = make([]Slot, len(s.Lineup))
	copy(out.Lineup, s.Lineup)
	out.Bench = make([]*Player, BenchCapacity)
	copy(out.Bench, s.Bench)
	return out
}

// Players возвращает всех игроков: сначала основа по порядку слотов, затем скамейка.
func (s Squad) Players() []Player {
	players := make([]Player, 0, len(s.Lineup)+len(s.Bench))
	for _, slot := range s.Lineup {
		if slot.Player != nil {
			players = append(players, *slot.Player)
		}
	}
	for _, p := range s.Bench {
		if p != nil {
			players = append(players, *p)
		}
	}
	return players
}

func (s Squad) PlayerIDs() []int {
	players := s.Players()
	ids := make([]int, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s Squad) Contains(playerID int) bool {
	for _, slot := range s.Lineup {
		if slot.Player != nil && slot.Player.ID == playerID {
			return true
		}
	}
	for _, p := range s.Bench {
		if p != nil && p.ID == playerID {
			return true
		}
	}
	return false
}

func (s Squad) BenchCount() int {
	n := 0
	for _, p := range s.Bench {
		if p != nil {
			n++
		}
	}
	return n
}

func (s Squad) EmptySlots() int {
	n := 0
	for _, slot := range s.Lineup {
		if slot.Player == nil {
			n++
		}
	}
	return n
}

// SquadRecord - то, что хранится в БД для одной сессии пользователя
type SquadRecord struct {
	SessionID string
	Squad     Squad
	Version   int
	CreatedAt time.Time
	UpdatedAt *time.Time
}
