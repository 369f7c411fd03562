package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/squad-builder/internal/domain"
	"go.uber.org/zap"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		if statusCode >= http.StatusInternalServerError {
			h.logger.Warn("request failed", zap.String("code", domainErr.Code), zap.Error(err))
		}
		writeJSON(w, statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.logger.Error("internal error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeBadRequest, domain.CodeInvalidFormation, domain.CodeInvalidSlot:
		return http.StatusBadRequest
	case domain.CodePositionMismatch, domain.CodeDuplicatePlayer, domain.CodeBenchFull,
		domain.CodeStaleRequest, domain.CodeNoCandidate:
		return http.StatusConflict
	case domain.CodeUnresolvedPlayer:
		return http.StatusUnprocessableEntity
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeOptimizerUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
