package engine

import (
	"strings"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/formation"
)

// Reshuffle описывает потери при мягкой смене схемы. Это не ошибка, а информация для пользователя.
type Reshuffle struct {
	Benched []domain.Player `json:"benched"`
	Dropped []domain.Player `json:"dropped"`
}

func (r Reshuffle) Lossy() bool {
	return len(r.Benched) > 0 || len(r.Dropped) > 0
}

// ChangeFormation - мягкая смена схемы.
//
// Для каждой линии (GK, DEF, MID, FWD) игроки берутся в порядке текущих слотов,
// первые min(текущее, новое) занимают слоты этой линии в новой схеме.
// Лишние уходят на скамейку по линиям (DEF, затем MID, затем FWD), пока есть места,
// остальные выбывают из состава. Свободные слоты со скамейки не заполняются.
func ChangeFormation(s domain.Squad, formationID string) (domain.Squad, Reshuffle, error) {
	formationID = strings.TrimSpace(formationID)
	slots, err := formation.BuildSlots(formationID)
	if err != nil {
		return s, Reshuffle{}, err
	}

	byLine := make(map[domain.Position][]*domain.Player, len(domain.Positions))
	for _, slot := range s.Lineup {
		if slot.Player != nil {
			byLine[slot.Position] = append(byLine[slot.Position], slot.Player)
		}
	}

	var overflow []*domain.Player
	for _, pos := range domain.Positions {
		current := byLine[pos]
		kept := 0
		for i := range slots {
			if kept == len(current) {
				break
			}
			if slots[i].Position == pos {
				slots[i].Player = current[kept]
				kept++
			}
		}
		overflow = append(overflow, current[kept:]...)
	}

	next := s.Clone()
	next.Formation = formationID
	next.Lineup = slots

	var result Reshuffle
	for _, p := range overflow {
		seat := freeSeat(next.Bench)
		if seat < 0 {
			result.Dropped = append(result.Dropped, *p)
			continue
		}
		next.Bench[seat] = p
		result.Benched = append(result.Benched, *p)
	}

	return next, result, nil
}

func freeSeat(bench []*domain.Player) int {
	for i, p := range bench {
		if p == nil {
			return i
		}
	}
	return -1
}
