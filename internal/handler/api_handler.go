package handler

import (
	"net/http"

	"user-directory-service/api"
	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*UserHandler
	*StatsHandler
}

func NewAPIHandler(
	userUseCase domain.UserUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		UserHandler:  NewUserHandler(userUseCase, logger),
		StatsHandler: NewStatsHandler(statsUseCase, logger),
	}
}

// GetHealth отвечает, что процесс жив.
func (h *APIHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
