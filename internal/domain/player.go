package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

type Position string

const (
	PositionGK  Position = "GK"
	PositionDEF Position = "DEF"
	PositionMID Position = "MID"
	PositionFWD Position = "FWD"
)

// Positions в порядке линий: вратарь, защита, полузащита, нападение
var Positions = []Position{PositionGK, PositionDEF, PositionMID, PositionFWD}

func ParsePosition(s string) (Position, bool) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PositionGK, PositionDEF, PositionMID, PositionFWD:
		return p, true
	default:
		return "", false
	}
}

// Price - цена в десятых долях миллиона (5.5m == 55).
type Price int64

const priceScale = 10

// MaxBudget - верхняя граница бюджета состава (200.0m), как у оптимизатора
const MaxBudget Price = 2000

// maxPriceMillions ограничивает модуль цены, чтобы перевод в Price не переполнял int64
var maxPriceMillions = decimal.New(1, 15)

var ErrPriceOutOfRange = errors.New("price out of range")

// PriceFromFloat переводит цену в миллионах (как ее отдают внешние API) в Price.
// NaN, бесконечность и слишком большие значения - ошибка.
func PriceFromFloat(millions float64) (Price, error) {
	if math.IsNaN(millions) || math.IsInf(millions, 0) {
		return 0, fmt.Errorf("%w: %v", ErrPriceOutOfRange, millions)
	}
	return PriceFromDecimal(decimal.NewFromFloat(millions))
}

// PriceFromDecimal - то же для значений, прочитанных из БД (numeric)
func PriceFromDecimal(millions decimal.Decimal) (Price, error) {
	if millions.Abs().GreaterThan(maxPriceMillions) {
		return 0, fmt.Errorf("%w: %s", ErrPriceOutOfRange, millions)
	}
	return Price(millions.Shift(1).Round(0).IntPart()), nil
}

// BudgetFromFloat проверяет бюджет в миллионах: 0 < budget <= 200.0
func BudgetFromFloat(millions float64) (Price, error) {
	budget, err := PriceFromFloat(millions)
	if err != nil || budget <= 0 || budget > MaxBudget {
		return 0, NewBadRequestError(fmt.Sprintf("budget must be greater than 0 and at most %s", MaxBudget))
	}
	return budget, nil
}

func (p Price) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -1)
}

func (p Price) Float64() float64 {
	return p.Decimal().InexactFloat64()
}

func (p Price) String() string {
	return p.Decimal().StringFixed(1)
}

type Player struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Position Position       `json:"position"`
	Team     string         `json:"team"`
	Price    Price          `json:"price"`
	Extra    map[string]any `json:"extra,omitempty"`
}

type PlayerQuery struct {
	Position Position
	Season   string
	Limit    int
	Offset   int
	Team     string
	Search   string
}

type PlayerPage struct {
	Players []Player
	Total   int
}
