package engine

import "github.com/bagdasarian/squad-builder/internal/domain"

// Engine владеет текущим снимком состава. Каждая успешная операция заменяет
// снимок целиком и увеличивает версию; при ошибке снимок не меняется.
// Engine не потокобезопасен: у него один писатель.
type Engine struct {
	squad   domain.Squad
	version int
}

func New(squad domain.Squad) *Engine {
	return &Engine{squad: squad.Clone()}
}

func (e *Engine) Snapshot() domain.Squad { return Snapshot(e.squad) }

func (e *Engine) Version() int { return e.version }

func (e *Engine) commit(next domain.Squad, err error) error {
	if err != nil {
		return err
	}
	e.squad = next
	e.version++
	return nil
}

func (e *Engine) Assign(slotIndex int, player domain.Player) error {
	return e.commit(Assign(e.squad, slotIndex, player))
}

func (e *Engine) Remove(slotIndex int) error {
	return e.commit(Remove(e.squad, slotIndex))
}

func (e *Engine) AddToBench(player domain.Player) error {
	return e.commit(AddToBench(e.squad, player))
}

func (e *Engine) RemoveFromBench(seatIndex int) error {
	return e.commit(RemoveFromBench(e.squad, seatIndex))
}

func (e *Engine) Clear() error {
	return e.commit(Clear(e.squad))
}

func (e *Engine) SetFormation(formationID string) error {
	return e.commit(SetFormation(e.squad, formationID))
}

func (e *Engine) ChangeFormation(formationID string) (Reshuffle, error) {
	next, result, err := ChangeFormation(e.squad, formationID)
	if err := e.commit(next, err); err != nil {
		return Reshuffle{}, err
	}
	return result, nil
}

// Replace ставит снимок, полученный извне (например, после сверки с оптимизатором)
func (e *Engine) Replace(squad domain.Squad) {
	e.squad = squad.Clone()
	e.version++
}
