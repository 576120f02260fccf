package handler

import (
	"net/http"

	"user-directory-service/api"
	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
)

// CallerCookieName — cookie с токеном сессии (uniqueid вызывающего).
const CallerCookieName = "id"

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	games := make([]api.Game, len(user.Access.Games))
	for i, g := range user.Access.Games {
		games[i] = api.Game{Name: append([]string{}, g.Name...)}
	}

	ipList := user.IPList
	if ipList == nil {
		ipList = []string{}
	}

	return api.User{
		Uniqueid:      user.UniqueID,
		Rank:          int(user.Rank),
		Username:      user.Username,
		Email:         user.Email,
		DiscordName:   user.DiscordName,
		DiscordId:     user.DiscordID,
		AccountStatus: int(user.AccountStatus),
		IpList:        ipList,
		PcHwid:        user.PCHWID,
		Access:        api.Access{Games: games},
	}
}

func toAPIUsers(users []*domain.User) []api.User {
	result := make([]api.User, len(users))
	for i, u := range users {
		result[i] = toAPIUser(u)
	}
	return result
}

func toAPIStats(stats *domain.DirectoryStats) api.DirectoryStats {
	byRank := make(map[string]int, len(stats.ByRank))
	for rank, n := range stats.ByRank {
		byRank[rank.String()] = n
	}
	byStatus := make(map[string]int, len(stats.ByAccountStatus))
	for status, n := range stats.ByAccountStatus {
		byStatus[status.String()] = n
	}
	return api.DirectoryStats{
		Total:           stats.Total,
		ByRank:          byRank,
		ByAccountStatus: byStatus,
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch domain.KindOf(err) {
	case domain.ErrUserNotFound:
		return http.StatusNotFound
	case domain.ErrUnknownCaller:
		return http.StatusUnauthorized
	case domain.ErrUnauthorized:
		return http.StatusForbidden
	case domain.ErrInvalidField, domain.ErrInvalidValue:
		return http.StatusBadRequest
	case domain.ErrUserAlreadyExists:
		return http.StatusConflict
	case domain.ErrRateLimited:
		return http.StatusTooManyRequests
	case domain.ErrExternalSync:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError пишет ответ для ошибки use case'а.
func respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}

// callerToken возвращает токен вызывающего из cookie или пустую строку.
func callerToken(c echo.Context) string {
	cookie, err := c.Cookie(CallerCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// tokenPrefix укорачивает токен для логов.
func tokenPrefix(token string) string {
	if len(token) <= 6 {
		return token
	}
	return token[:6] + "..."
}
