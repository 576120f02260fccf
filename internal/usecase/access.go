package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"user-directory-service/internal/authz"
)

// Options — общие настройки use case'ов каталога.
type Options struct {
	StoreTimeout   time.Duration
	SyncTimeout    time.Duration
	ServiceToken   string
	SystemUsername string
}

// adminGate пропускает служебный токен или вызывающего с рангом не ниже Admin.
type adminGate struct {
	evaluator    *authz.Evaluator
	serviceToken string
}

func (g adminGate) isServiceToken(token string) bool {
	if g.serviceToken == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.serviceToken), []byte(token)) == 1
}

func (g adminGate) authorize(ctx context.Context, callerToken, serverToken string) error {
	if g.isServiceToken(serverToken) {
		return nil
	}
	_, err := g.evaluator.AuthorizeSelfOrAdmin(ctx, callerToken, "")
	return err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// tokenPrefix укорачивает токен для логов: токен совпадает с uniqueid и является сессией.
func tokenPrefix(token string) string {
	if len(token) <= 6 {
		return token
	}
	return token[:6] + "..."
}
