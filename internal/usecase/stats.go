package usecase

import (
	"context"

	"user-directory-service/internal/authz"
	"user-directory-service/internal/domain"
	"user-directory-service/internal/sanitize"
)

// StatsUseCase реализует бизнес-логику для работы со статистикой каталога.
type StatsUseCase struct {
	userRepo domain.UserRepository
	gate     adminGate
	opts     Options
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(userRepo domain.UserRepository, evaluator *authz.Evaluator, opts Options) domain.StatsUseCase {
	return &StatsUseCase{
		userRepo: userRepo,
		gate:     adminGate{evaluator: evaluator, serviceToken: opts.ServiceToken},
		opts:     opts,
	}
}

// GetDirectoryStats возвращает количество пользователей по рангам и статусам.
// Служебная учетная запись не учитывается.
func (uc *StatsUseCase) GetDirectoryStats(ctx context.Context, callerToken, serverToken string) (*domain.DirectoryStats, error) {
	ctx, cancel := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancel()

	if err := uc.gate.authorize(ctx, sanitize.String(callerToken), serverToken); err != nil {
		return nil, err
	}

	users, err := uc.userRepo.ListAll(ctx, []string{uc.opts.SystemUsername})
	if err != nil {
		return nil, domain.Classify(err, domain.ErrStore)
	}

	stats := &domain.DirectoryStats{
		Total:           len(users),
		ByRank:          make(map[domain.Rank]int),
		ByAccountStatus: make(map[domain.AccountStatus]int),
	}
	for _, rank := range domain.AllRanks() {
		stats.ByRank[rank] = 0
	}
	for _, status := range []domain.AccountStatus{domain.AccountUnverified, domain.AccountVerified, domain.AccountBanned} {
		stats.ByAccountStatus[status] = 0
	}

	for _, u := range users {
		stats.ByRank[u.Rank]++
		stats.ByAccountStatus[u.AccountStatus]++
	}

	return stats, nil
}
