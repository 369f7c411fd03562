package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/formation"
)

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, domain.NewBadRequestError(fmt.Sprintf("%s must be a non-negative integer", name))
	}
	return v, nil
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := domain.PlayerQuery{
		Season: q.Get("season"),
		Team:   q.Get("team"),
		Search: q.Get("q"),
	}
	if raw := q.Get("position"); raw != "" {
		pos, ok := domain.ParsePosition(raw)
		if !ok {
			h.handleError(w, domain.NewBadRequestError(fmt.Sprintf("unknown position %q", raw)))
			return
		}
		query.Position = pos
	}

	var err error
	if query.Limit, err = queryInt(r, "limit"); err != nil {
		h.handleError(w, err)
		return
	}
	if query.Offset, err = queryInt(r, "offset"); err != nil {
		h.handleError(w, err)
		return
	}

	page, err := h.playerService.ListPlayers(r.Context(), query)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PlayerListResponse{
		Players: domainPlayersToHTTP(page.Players),
		Total:   page.Total,
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "playerID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), r.URL.Query().Get("season"), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainPlayerToHTTP(*player))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ids := formation.Known()
	response := make([]FormationResponse, 0, len(ids))
	for _, id := range ids {
		counts, err := formation.CountsFor(id)
		if err != nil {
			h.handleError(w, err)
			return
		}
		response = append(response, FormationResponse{ID: id, DEF: counts.DEF, MID: counts.MID, FWD: counts.FWD})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
