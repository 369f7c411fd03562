package handler

import (
	"net/http"
)

func (h *Handler) GetSelectionStats(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.handleError(w, err)
		return
	}
	season := r.URL.Query().Get("season")

	stats, err := h.statsService.GetSelectionStats(r.Context(), season, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := SelectionStatsResponse{
		Season:     season,
		Selections: make([]SelectionStatResponse, len(stats)),
	}
	for i, stat := range stats {
		response.Selections[i] = SelectionStatResponse{
			PlayerID: stat.PlayerID,
			Name:     stat.Name,
			Position: string(stat.Position),
			Count:    stat.Count,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetFormationStats(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")

	stats, err := h.statsService.GetFormationStats(r.Context(), season)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := FormationStatsResponse{
		Season:     season,
		Formations: make([]FormationStatResponse, len(stats)),
	}
	for i, stat := range stats {
		response.Formations[i] = FormationStatResponse{
			Formation: stat.Formation,
			Count:     stat.Count,
		}
	}

	writeJSON(w, http.StatusOK, response)
}
