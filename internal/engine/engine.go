package engine

import (
	"strings"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/formation"
)

// NewSquad создает пустой состав для схемы
func NewSquad(formationID, season string, budget domain.Price) (domain.Squad, error) {
	formationID = strings.TrimSpace(formationID)
	slots, err := formation.BuildSlots(formationID)
	if err != nil {
		return domain.Squad{}, err
	}
	return domain.Squad{
		Formation: formationID,
		Lineup:    slots,
		Bench:     make([]*domain.Player, domain.BenchCapacity),
		Season:    season,
		Budget:    budget,
	}, nil
}

// Assign ставит игрока в слот. Прежний игрок слота выбывает из состава:
// если его нужно сохранить, вызывающий сначала отправляет его на скамейку.
func Assign(s domain.Squad, slotIndex int, player domain.Player) (domain.Squad, error) {
	if slotIndex < 0 || slotIndex >= len(s.Lineup) {
		return s, domain.ErrInvalidSlot
	}

	slot := s.Lineup[slotIndex]
	if player.Position != slot.Position {
		return s, domain.ErrPositionMismatch
	}
	if slot.Player != nil && slot.Player.ID == player.ID {
		return s, nil
	}
	if s.Contains(player.ID) {
		return s, domain.ErrDuplicatePlayer
	}

	next := s.Clone()
	p := player
	next.Lineup[slotIndex].Player = &p
	return next, nil
}

// Remove очищает слот. Повторный вызов на пустом слоте ничего не меняет.
func Remove(s domain.Squad, slotIndex int) (domain.Squad, error) {
	if slotIndex < 0 || slotIndex >= len(s.Lineup) {
		return s, domain.ErrInvalidSlot
	}
	if s.Lineup[slotIndex].Player == nil {
		return s, nil
	}

	next := s.Clone()
	next.Lineup[slotIndex].Player = nil
	return next, nil
}

// AddToBench занимает первое свободное место на скамейке
func AddToBench(s domain.Squad, player domain.Player) (domain.Squad, error) {
	if s.Contains(player.ID) {
		return s, domain.ErrDuplicatePlayer
	}

	next := s.Clone()
	for i, seat := range next.Bench {
		if seat == nil {
			p := player
			next.Bench[i] = &p
			return next, nil
		}
	}
	return s, domain.ErrBenchFull
}

func RemoveFromBench(s domain.Squad, seatIndex int) (domain.Squad, error) {
	if seatIndex < 0 || seatIndex >= domain.BenchCapacity {
		return s, domain.ErrInvalidSlot
	}

	next := s.Clone()
	next.Bench[seatIndex] = nil
	return next, nil
}

// Clear сбрасывает основу и скамейку, схема и бюджет сохраняются
func Clear(s domain.Squad) (domain.Squad, error) {
	return NewSquad(s.Formation, s.Season, s.Budget)
}

// SetFormation - жесткая смена схемы: все назначения отбрасываются
func SetFormation(s domain.Squad, formationID string) (domain.Squad, error) {
	return NewSquad(formationID, s.Season, s.Budget)
}

// Snapshot-значение, которое безопасно отдавать читателям
func Snapshot(s domain.Squad) domain.Squad {
	return s.Clone()
}
