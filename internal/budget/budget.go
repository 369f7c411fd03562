package budget

import (
	"sort"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

// MaxPlayersPerClub - правило лиги. Здесь только сообщаем о нарушении, не запрещаем.
const MaxPlayersPerClub = 3

// TotalSpend - сумма цен всех игроков основы и скамейки. Пустые места не считаются.
func TotalSpend(s domain.Squad) domain.Price {
	var total domain.Price
	for _, p := range s.Players() {
		total += p.Price
	}
	return total
}

// Remaining может быть отрицательным: бюджет носит рекомендательный характер
func Remaining(s domain.Squad, budget domain.Price) domain.Price {
	return budget - TotalSpend(s)
}

type Summary struct {
	Value             domain.Price            `json:"value"`
	InBank            domain.Price            `json:"in_bank"`
	Budget            domain.Price            `json:"budget"`
	OverBudget        bool                    `json:"over_budget"`
	PlayerCount       int                     `json:"player_count"`
	ByPosition        map[domain.Position]int `json:"by_position"`
	ClubCounts        map[string]int          `json:"club_counts"`
	ClubLimitBreaches []string                `json:"club_limit_breaches"`
	MVP               *domain.Player          `json:"mvp,omitempty"`
}

// Summarize считает сводку по текущему снимку, ничего не кэшируя
func Summarize(s domain.Squad) Summary {
	players := s.Players()

	summary := Summary{
		Value:             TotalSpend(s),
		Budget:            s.Budget,
		PlayerCount:       len(players),
		ByPosition:        make(map[domain.Position]int, len(domain.Positions)),
		ClubCounts:        make(map[string]int),
		ClubLimitBreaches: []string{},
	}
	summary.InBank = summary.Budget - summary.Value
	summary.OverBudget = summary.InBank < 0

	for _, pos := range domain.Positions {
		summary.ByPosition[pos] = 0
	}

	for i := range players {
		p := players[i]
		summary.ByPosition[p.Position]++
		if p.Team != "" {
			summary.ClubCounts[p.Team]++
		}
		if summary.MVP == nil || p.Price > summary.MVP.Price {
			summary.MVP = &players[i]
		}
	}

	for club, n := range summary.ClubCounts {
		if n > MaxPlayersPerClub {
			summary.ClubLimitBreaches = append(summary.ClubLimitBreaches, club)
		}
	}
	sort.Strings(summary.ClubLimitBreaches)

	return summary
}
