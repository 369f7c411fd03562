package handler

import (
	"time"

	"github.com/bagdasarian/squad-builder/internal/budget"
	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/engine"
)

func domainPlayerToHTTP(p domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:       p.ID,
		Name:     p.Name,
		Position: string(p.Position),
		Team:     p.Team,
		Price:    p.Price.Float64(),
		Extra:    p.Extra,
	}
}

func domainPlayersToHTTP(players []domain.Player) []PlayerResponse {
	result := make([]PlayerResponse, 0, len(players))
	for _, p := range players {
		result = append(result, domainPlayerToHTTP(p))
	}
	return result
}

func optionalPlayerToHTTP(p *domain.Player) *PlayerResponse {
	if p == nil {
		return nil
	}
	resp := domainPlayerToHTTP(*p)
	return &resp
}

func formatTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func domainSquadToHTTP(record *domain.SquadRecord) SquadResponse {
	squad := record.Squad

	lineup := make([]SlotResponse, 0, len(squad.Lineup))
	for i, slot := range squad.Lineup {
		lineup = append(lineup, SlotResponse{
			Index:    i,
			Position: string(slot.Position),
			Player:   optionalPlayerToHTTP(slot.Player),
		})
	}

	// Скамейка всегда отдается целиком, пустые места как null
	bench := make([]*PlayerResponse, domain.BenchCapacity)
	for i := 0; i < len(squad.Bench) && i < domain.BenchCapacity; i++ {
		bench[i] = optionalPlayerToHTTP(squad.Bench[i])
	}

	return SquadResponse{
		SessionID: record.SessionID,
		Formation: squad.Formation,
		Season:    squad.Season,
		Budget:    squad.Budget.Float64(),
		Lineup:    lineup,
		Bench:     bench,
		Version:   record.Version,
		CreatedAt: formatTime(&record.CreatedAt),
		UpdatedAt: formatTime(record.UpdatedAt),
	}
}

func reshuffleToHTTP(r engine.Reshuffle) ReshuffleResponse {
	return ReshuffleResponse{
		Benched: domainPlayersToHTTP(r.Benched),
		Dropped: domainPlayersToHTTP(r.Dropped),
	}
}

func summaryToHTTP(s *budget.Summary) SummaryResponse {
	byPosition := make(map[string]int, len(s.ByPosition))
	for pos, n := range s.ByPosition {
		byPosition[string(pos)] = n
	}

	return SummaryResponse{
		Value:             s.Value.Float64(),
		InBank:            s.InBank.Float64(),
		Budget:            s.Budget.Float64(),
		OverBudget:        s.OverBudget,
		PlayerCount:       s.PlayerCount,
		ByPosition:        byPosition,
		ClubCounts:        s.ClubCounts,
		ClubLimitBreaches: s.ClubLimitBreaches,
		MVP:               optionalPlayerToHTTP(s.MVP),
	}
}
