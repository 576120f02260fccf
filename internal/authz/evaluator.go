// Package authz решает, может ли вызывающий выполнить операцию над записью пользователя.
package authz

import (
	"context"
	"errors"
	"fmt"

	"user-directory-service/internal/domain"
)

// Evaluator проверяет права вызывающего. Ранг вызывающего всегда читается из
// репозитория заново; Evaluator ничего не кэширует.
type Evaluator struct {
	users domain.UserRepository
}

// NewEvaluator создает новый экземпляр Evaluator.
func NewEvaluator(users domain.UserRepository) *Evaluator {
	return &Evaluator{users: users}
}

// ResolveCaller возвращает запись вызывающего по его токену.
func (e *Evaluator) ResolveCaller(ctx context.Context, callerToken string) (*domain.User, error) {
	if callerToken == "" {
		return nil, domain.ErrUnknownCaller
	}

	caller, err := e.users.FindByUniqueID(ctx, callerToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownCaller
		}
		return nil, domain.Classify(err, domain.ErrStore)
	}

	return caller, nil
}

// AuthorizeSelfOrModerator разрешает доступ к своей записи или при ранге не ниже Moderator.
func (e *Evaluator) AuthorizeSelfOrModerator(ctx context.Context, callerToken, targetUniqueID string) (*domain.User, error) {
	return e.authorizeSelfOr(ctx, callerToken, targetUniqueID, domain.RankModerator)
}

// AuthorizeSelfOrAdmin разрешает доступ к своей записи или при ранге не ниже Admin.
func (e *Evaluator) AuthorizeSelfOrAdmin(ctx context.Context, callerToken, targetUniqueID string) (*domain.User, error) {
	return e.authorizeSelfOr(ctx, callerToken, targetUniqueID, domain.RankAdmin)
}

func (e *Evaluator) authorizeSelfOr(ctx context.Context, callerToken, targetUniqueID string, threshold domain.Rank) (*domain.User, error) {
	caller, err := e.ResolveCaller(ctx, callerToken)
	if err != nil {
		return nil, err
	}

	if err := SelfOrRank(caller, targetUniqueID, threshold); err != nil {
		return nil, err
	}
	return caller, nil
}

// SelfOrRank проверяет уже разрешенного вызывающего: доступ к своей записи
// или ранг не ниже threshold.
func SelfOrRank(caller *domain.User, targetUniqueID string, threshold domain.Rank) error {
	if targetUniqueID != "" && caller.UniqueID == targetUniqueID {
		return nil
	}
	return RequireRank(caller.Rank, threshold)
}

// RequireRank проверяет, что ранг вызывающего достигает порога.
func RequireRank(callerRank, threshold domain.Rank) error {
	if !callerRank.MeetsThreshold(threshold) {
		return fmt.Errorf("%w: rank %s is below %s", domain.ErrUnauthorized, callerRank, threshold)
	}
	return nil
}

// AuthorizeRankChange разрешает смену ранга только Admin и выше и только на ранг
// строго ниже собственного. Текущий ранг цели на решение не влияет.
func AuthorizeRankChange(callerRank, targetCurrentRank, requestedRank domain.Rank) error {
	if err := RequireRank(callerRank, domain.RankAdmin); err != nil {
		return err
	}
	if domain.Compare(callerRank, requestedRank) != domain.Greater {
		return fmt.Errorf("%w: %s cannot grant %s (current %s)",
			domain.ErrUnauthorized, callerRank, requestedRank, targetCurrentRank)
	}
	return nil
}

// AuthorizeAccountStatusChange разрешает смену статуса только Admin и выше и только
// на одно из трех допустимых значений.
func AuthorizeAccountStatusChange(callerRank domain.Rank, requested domain.AccountStatus) error {
	if !requested.Valid() {
		return fmt.Errorf("%w: account status %d is out of range", domain.ErrInvalidValue, int(requested))
	}
	return RequireRank(callerRank, domain.RankAdmin)
}
