package handler

import (
	"github.com/bagdasarian/squad-builder/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	squadService  service.SquadService
	playerService service.PlayerService
	statsService  service.StatsService
	logger        *zap.Logger
}

func NewHandler(
	squadService service.SquadService,
	playerService service.PlayerService,
	statsService service.StatsService,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		squadService:  squadService,
		playerService: playerService,
		statsService:  statsService,
		logger:        logger,
	}
}
