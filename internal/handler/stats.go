package handler

import (
	"net/http"

	"user-directory-service/api"
	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для получения статистических данных.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetStatsUsers обрабатывает GET запрос статистики каталога по рангам и статусам.
func (h *StatsHandler) GetStatsUsers(c echo.Context, params api.GetStatsUsersParams) error {
	logEntry := h.logRequest(c, "get_directory_stats")
	logEntry.Info("Getting directory statistics")

	stats, err := h.statsUseCase.GetDirectoryStats(c.Request().Context(), callerToken(c), deref(params.ServerToken))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get directory stats")
		return respondError(c, err)
	}

	logEntry.WithField("total", stats.Total).Info("Directory stats retrieved")
	return c.JSON(http.StatusOK, toAPIStats(stats))
}
