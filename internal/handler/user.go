package handler

import (
	"net/http"

	"user-directory-service/api"
	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// GetUsersGet обрабатывает запрос поиска пользователя по идентификатору.
func (h *UserHandler) GetUsersGet(c echo.Context, params api.GetUsersGetParams) error {
	logEntry := h.logRequest(c, "get_user").WithFields(logrus.Fields{
		"search":     params.Search,
		"identifier": tokenPrefix(params.Id),
	})

	search, err := domain.ParseSearchKind(string(params.Search))
	if err != nil {
		logEntry.WithError(err).Warn("Invalid search type")
		return respondError(c, err)
	}

	user, err := h.userUseCase.GetUser(c.Request().Context(), callerToken(c), search, params.Id)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user")
		return respondError(c, err)
	}

	logEntry.Info("User retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// GetUsersMe обрабатывает запрос записи владельца токена.
func (h *UserHandler) GetUsersMe(c echo.Context, params api.GetUsersMeParams) error {
	token := deref(params.Token)
	if token == "" {
		token = callerToken(c)
	}

	logEntry := h.logRequest(c, "get_me").WithField("caller", tokenPrefix(token))

	user, err := h.userUseCase.GetMe(c.Request().Context(), token)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to resolve caller")
		return respondError(c, err)
	}

	logEntry.Info("Caller resolved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// GetUsersAll обрабатывает запрос списка всех пользователей.
func (h *UserHandler) GetUsersAll(c echo.Context, params api.GetUsersAllParams) error {
	logEntry := h.logRequest(c, "get_all_users")

	users, err := h.userUseCase.GetAllUsers(c.Request().Context(), callerToken(c), deref(params.ServerToken))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list users")
		return respondError(c, err)
	}

	logEntry.WithField("users_count", len(users)).Info("Users listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": toAPIUsers(users),
	})
}

// PostUsersEdit обрабатывает запрос изменения одного поля пользователя.
func (h *UserHandler) PostUsersEdit(c echo.Context) error {
	var req api.PostUsersEditJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind edit user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "edit_user").WithFields(logrus.Fields{
		"uniqueid": tokenPrefix(req.Uniqueid),
		"field":    req.Field,
	})

	ok, err := h.userUseCase.EditUser(c.Request().Context(), callerToken(c), req.Uniqueid, req.Field, req.Data)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to edit user")
		return respondError(c, err)
	}

	logEntry.Info("User edited")
	return c.JSON(http.StatusOK, api.ResultResponse{Result: ok})
}

// PostUsersCreate обрабатывает запрос создания учетной записи.
func (h *UserHandler) PostUsersCreate(c echo.Context) error {
	var req api.PostUsersCreateJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_user").WithField("username", req.Username)

	newUser := domain.NewUser{
		Username:    req.Username,
		Email:       deref(req.Email),
		DiscordID:   deref(req.DiscordId),
		DiscordName: deref(req.DiscordName),
		IP:          req.Ip,
	}

	ok, err := h.userUseCase.CreateUser(c.Request().Context(), callerToken(c), deref(req.ServerToken), newUser)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to create user")
		return respondError(c, err)
	}

	logEntry.Info("User created")
	return c.JSON(http.StatusCreated, api.ResultResponse{Result: ok})
}
