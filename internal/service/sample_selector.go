package service

import (
	"math/rand"

	"github.com/bagdasarian/squad-builder/internal/domain"
)

// SelectPlayers выбирает до maxPlayers игроков из пула в случайном порядке, пропуская exclude
func SelectPlayers(pool []domain.Player, exclude map[int]bool, maxPlayers int, rng *rand.Rand) []domain.Player {
	if maxPlayers <= 0 {
		return []domain.Player{}
	}

	candidates := make([]domain.Player, 0, len(pool))
	for _, p := range pool {
		if !exclude[p.ID] {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		return []domain.Player{}
	}

	count := len(candidates)
	if count > maxPlayers {
		count = maxPlayers
	}

	indices := make([]int, len(candidates))
	for i := range indices {
		indices[i] = i
	}

	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	selected := make([]domain.Player, 0, count)
	for i := 0; i < count; i++ {
		selected = append(selected, candidates[indices[i]])
	}

	return selected
}
