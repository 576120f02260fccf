// Package identity зеркалирует изменения полей пользователя во внешнюю платформу идентификации.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"user-directory-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// ServiceCookieName — имя cookie, в которой передается служебный ключ.
const ServiceCookieName = "id"

// Client вызывает эндпоинт "set field" внешней платформы.
type Client struct {
	baseURL    string
	cookie     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент синхронизации. timeout ограничивает каждый вызов целиком.
func NewClient(baseURL, serviceCookie string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookie:     serviceCookie,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

var _ domain.IdentitySynchronizer = (*Client)(nil)

type setFieldRequest struct {
	Value string `json:"value"`
}

// SyncField отправляет новое значение поля. Любой ответ вне 2xx, ошибка транспорта
// или таймаут возвращаются как ErrExternalSync.
func (c *Client) SyncField(ctx context.Context, discordID string, field domain.FieldKind, value string) error {
	if !field.RequiresSync() {
		return fmt.Errorf("%w: field %q is not mirrored", domain.ErrInvalidField, field)
	}

	body, err := json.Marshal(setFieldRequest{Value: value})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", domain.ErrExternalSync, err)
	}

	endpoint := fmt.Sprintf("%s/members/%s/%s", c.baseURL, url.PathEscape(discordID), url.PathEscape(string(field)))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", domain.ErrExternalSync, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: ServiceCookieName, Value: c.cookie})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"discord_id": discordID,
			"field":      field,
			"error":      err.Error(),
		}).Warn("Identity sync request failed")
		return fmt.Errorf("%w: %v", domain.ErrExternalSync, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	entry := c.logger.WithFields(logrus.Fields{
		"discord_id": discordID,
		"field":      field,
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		entry.Warn("Identity sync rejected")
		return fmt.Errorf("%w: platform answered %d", domain.ErrExternalSync, resp.StatusCode)
	}

	entry.Info("Identity field synced")
	return nil
}
