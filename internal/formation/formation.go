// Package formation описывает тактические схемы и раскладку слотов стартового состава.
package formation

import (
	"strconv"
	"strings"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

// Default используется, когда пришла невалидная схема и вызывающий не может вернуть ошибку пользователю.
const Default = "4-4-2"

// OutfieldSlots - количество полевых игроков в основе
const OutfieldSlots = 10

// LineupSize - вратарь плюс полевые
const LineupSize = 1 + OutfieldSlots

type Counts struct {
	DEF int
	MID int
	FWD int
}

func (c Counts) For(pos domain.Position) int {
	switch pos {
	case domain.PositionGK:
		return 1
	case domain.PositionDEF:
		return c.DEF
	case domain.PositionMID:
		return c.MID
	case domain.PositionFWD:
		return c.FWD
	default:
		return 0
	}
}

var known = []string{"3-4-3", "3-5-2", "4-3-3", "4-4-2", "4-5-1", "5-3-2", "5-4-1"}

// Known возвращает схемы, которые предлагаются пользователю
func Known() []string {
	out := make([]string, len(known))
	copy(out, known)
	return out
}

// CountsFor разбирает идентификатор вида "D-M-F".
func CountsFor(formationID string) (Counts, error) {
	parts := strings.Split(strings.TrimSpace(formationID), "-")
	if len(parts) != 3 {
		return Counts{}, domain.NewInvalidFormationError(formationID)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return Counts{}, domain.NewInvalidFormationError(formationID)
		}
		nums[i] = n
	}

	if nums[0]+nums[1]+nums[2] != OutfieldSlots {
		return Counts{}, domain.NewInvalidFormationError(formationID)
	}

	return Counts{DEF: nums[0], MID: nums[1], FWD: nums[2]}, nil
}

// OrDefault возвращает формацию, если она валидна, иначе Default.
// Второе значение сообщает, был ли применен fallback.
func OrDefault(formationID string) (string, bool) {
	if _, err := CountsFor(formationID); err != nil {
		return Default, true
	}
	return strings.TrimSpace(formationID), false
}

// BuildSlots строит пустой стартовый состав: GK, затем DEF, MID, FWD.
// Порядок слотов - единственная адресация в движке, он детерминирован.
func BuildSlots(formationID string) ([]domain.Slot, error) {
	counts, err := CountsFor(formationID)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, LineupSize)
	for _, pos := range domain.Positions {
		for i := 0; i < counts.For(pos); i++ {
			slots = append(slots, domain.Slot{Position: pos})
		}
	}
	return slots, nil
}

// PositionAt возвращает позицию слота с индексом i
func PositionAt(formationID string, i int) (domain.Position, error) {
	slots, err := BuildSlots(formationID)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(slots) {
		return "", domain.ErrInvalidSlot
	}
	return slots[i].Position, nil
}
