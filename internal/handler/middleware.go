package handler

import (
	"context"
	"net/http"
	"time"

	"user-directory-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"bytes_out":  c.Response().Size,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
				"caller":     tokenPrefix(callerToken(c)),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// RateLimiter считает запросы по ключу вызывающего.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware отвечает 429, когда вызывающий превысил лимит. Ключ — токен
// из cookie, а без него адрес клиента. Сбой счетчика запрос не блокирует.
func RateLimitMiddleware(limiter RateLimiter, logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/health" {
				return next(c)
			}

			key := callerToken(c)
			if key == "" {
				key = "ip:" + c.RealIP()
			}

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				logger.WithError(err).Warn("Rate limiter unavailable, request passed")
				return next(c)
			}
			if !allowed {
				httpErr, _ := domain.ToHTTPError(domain.ErrRateLimited)
				return c.JSON(http.StatusTooManyRequests, toAPIErrorResponse(httpErr))
			}

			return next(c)
		}
	}
}
