package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is() по коду ошибки
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeInvalidFormation     = "INVALID_FORMATION"
	CodePositionMismatch     = "POSITION_MISMATCH"
	CodeDuplicatePlayer      = "DUPLICATE_PLAYER"
	CodeBenchFull            = "BENCH_FULL"
	CodeUnresolvedPlayer     = "UNRESOLVED_PLAYER"
	CodeInvalidSlot          = "INVALID_SLOT"
	CodeNotFound             = "NOT_FOUND"
	CodeBadRequest           = "BAD_REQUEST"
	CodeStaleRequest         = "STALE_REQUEST"
	CodeOptimizerUnavailable = "OPTIMIZER_UNAVAILABLE"
	CodeNoCandidate          = "NO_CANDIDATE"
)

var (
	// ErrInvalidFormation - идентификатор схемы не соответствует "D-M-F"
	ErrInvalidFormation = &DomainError{
		Code:    CodeInvalidFormation,
		Message: "invalid formation",
	}

	// ErrPositionMismatch - позиция игрока не совпадает с позицией слота
	ErrPositionMismatch = &DomainError{
		Code:    CodePositionMismatch,
		Message: "player position does not match slot position",
	}

	// ErrDuplicatePlayer - игрок уже есть в составе или на скамейке
	ErrDuplicatePlayer = &DomainError{
		Code:    CodeDuplicatePlayer,
		Message: "player is already in the squad",
	}

	// ErrBenchFull - на скамейке нет свободных мест
	ErrBenchFull = &DomainError{
		Code:    CodeBenchFull,
		Message: "bench is full",
	}

	// ErrUnresolvedPlayer - идентификатор от оптимизатора не найден в справочнике
	ErrUnresolvedPlayer = &DomainError{
		Code:    CodeUnresolvedPlayer,
		Message: "player could not be resolved",
	}

	// ErrInvalidSlot - индекс слота или места на скамейке вне диапазона
	ErrInvalidSlot = &DomainError{
		Code:    CodeInvalidSlot,
		Message: "slot index out of range",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrStaleRequest - пришел более новый запрос той же категории, результат отброшен
	ErrStaleRequest = &DomainError{
		Code:    CodeStaleRequest,
		Message: "request superseded by a newer one",
	}

	// ErrOptimizerUnavailable - внешний оптимизатор не ответил
	ErrOptimizerUnavailable = &DomainError{
		Code:    CodeOptimizerUnavailable,
		Message: "optimizer is unavailable",
	}

	// ErrNoCandidate - оптимизатор не вернул кандидата с нужным номером
	ErrNoCandidate = &DomainError{
		Code:    CodeNoCandidate,
		Message: "optimizer returned no such candidate",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST
func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// NewInvalidFormationError сохраняет код INVALID_FORMATION, но называет конкретную схему
func NewInvalidFormationError(formationID string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidFormation,
		Message: fmt.Sprintf("invalid formation %q", formationID),
	}
}

// NewUnresolvedPlayerError указывает идентификатор и ожидаемую позицию
func NewUnresolvedPlayerError(playerID int, position Position) *DomainError {
	return &DomainError{
		Code:    CodeUnresolvedPlayer,
		Message: fmt.Sprintf("player %d not found among %s players", playerID, position),
	}
}
