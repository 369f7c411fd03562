package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"github.com/bagdasarian/squad-builder/internal/service"
	"github.com/go-chi/chi/v5"
)

// decodeBody читает JSON тела запроса. Пустое тело допустимо, если allowEmpty.
func decodeBody(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	if err != nil {
		return domain.NewBadRequestError("invalid request body")
	}
	return nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewBadRequestError(fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

func (h *Handler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	var req CreateSquadRequest
	if err := decodeBody(r, &req, true); err != nil {
		h.handleError(w, err)
		return
	}

	var limit domain.Price
	if req.Budget != nil {
		var err error
		if limit, err = domain.BudgetFromFloat(*req.Budget); err != nil {
			h.handleError(w, err)
			return
		}
	}

	record, err := h.squadService.CreateSquad(r.Context(), req.Season, limit, req.Formation)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainSquadToHTTP(record))
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	record, err := h.squadService.GetSquad(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSquadToHTTP(record))
}

func (h *Handler) AssignPlayer(w http.ResponseWriter, r *http.Request) {
	slot, err := intParam(r, "slot")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req PlayerIDRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.handleError(w, err)
		return
	}
	if req.PlayerID <= 0 {
		h.handleError(w, domain.NewBadRequestError("player_id is required"))
		return
	}

	record, err := h.squadService.AssignPlayer(r.Context(), chi.URLParam(r, "sessionID"), slot, req.PlayerID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSquadToHTTP(record))
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	slot, err := intParam(r, "slot")
	if err != nil {
		h.handleError(w, err)
		return
	}

	record, err := h.squadService.RemovePlayer(r.Context(), chi.URLParam(r, "sessionID"), slot)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSquadToHTTP(record))
}

func (h *Handler) AddToBench(w http.ResponseWriter, r *http.Request) {
	var req PlayerIDRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.handleError(w, err)
		return
	}
	if req.PlayerID <= 0 {
		h.handleError(w, domain.NewBadRequestError("player_id is required"))
		return
	}

	record, err := h.squadService.AddToBench(r.Context(), chi.URLParam(r, "sessionID"), req.PlayerID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSquadToHTTP(record))
}

func (h *Handler) RemoveFromBench(w http.ResponseWriter, r *http.Request) {
	seat, err := intParam(r, "seat")
	if err != nil {
		h.handleError(w, err)
		return
	}

	record, err := h.squadService.RemoveFromBench(r.Context(), chi.URLParam(r, "sessionID"), seat)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSquadToHTTP(record))
}

func (h *Handler) ClearSquad(w http.ResponseWriter, r *http.Request) {
	record, err := h.squadService.ClearSquad(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainSquadToHTTP(record))
}

func (h *Handler) ChangeFormation(w http.ResponseWriter, r *http.Request) {
	var req ChangeFormationRequest
	if err := decodeBody(r, &req, false); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Formation == "" {
		h.handleError(w, domain.NewBadRequestError("formation is required"))
		return
	}

	record, reshuffle, err := h.squadService.ChangeFormation(r.Context(), chi.URLParam(r, "sessionID"), req.Formation, service.FormationMode(req.Mode))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ChangeFormationResponse{
		Squad:     domainSquadToHTTP(record),
		Reshuffle: reshuffleToHTTP(reshuffle),
	})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.squadService.Summary(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryToHTTP(summary))
}

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := decodeBody(r, &req, true); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Horizon < 0 || req.FreeTransfers < 0 || req.Candidate < 0 {
		h.handleError(w, domain.NewBadRequestError("horizon, free_transfers and candidate must not be negative"))
		return
	}

	result, err := h.squadService.Optimize(r.Context(), chi.URLParam(r, "sessionID"), service.OptimizeParams{
		Horizon:        req.Horizon,
		FreeTransfers:  req.FreeTransfers,
		Candidate:      req.Candidate,
		ExcludePlayers: req.ExcludePlayers,
		LockPlayers:    req.LockPlayers,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OptimizeResponse{
		Squad:      domainSquadToHTTP(result.Record),
		Candidate:  req.Candidate,
		Candidates: result.Candidates,
		TotalCost:  result.Selected.TotalCost.Float64(),
		TotalScore: result.Selected.TotalScore,
	})
}

func (h *Handler) LoadSample(w http.ResponseWriter, r *http.Request) {
	result, err := h.squadService.LoadSample(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SampleResponse{
		Squad:    domainSquadToHTTP(result.Record),
		Assigned: result.Assigned,
		Benched:  result.Benched,
		Skipped:  result.Skipped,
	})
}
