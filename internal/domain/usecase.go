package domain

import "context"

// DirectoryStats — сводка по каталогу пользователей.
type DirectoryStats struct {
	Total           int
	ByRank          map[Rank]int
	ByAccountStatus map[AccountStatus]int
}

// UserUseCase определяет бизнес-логику каталога пользователей.
type UserUseCase interface {
	GetUser(ctx context.Context, callerToken string, search SearchKind, identifier string) (*User, error)
	GetMe(ctx context.Context, token string) (*User, error)
	GetAllUsers(ctx context.Context, callerToken, serverToken string) ([]*User, error)
	EditUser(ctx context.Context, callerToken, uniqueID, field, data string) (bool, error)
	CreateUser(ctx context.Context, callerToken, serverToken string, user NewUser) (bool, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой каталога.
type StatsUseCase interface {
	GetDirectoryStats(ctx context.Context, callerToken, serverToken string) (*DirectoryStats, error)
}

// IdentitySynchronizer зеркалирует изменения полей во внешнюю платформу идентификации.
type IdentitySynchronizer interface {
	SyncField(ctx context.Context, discordID string, field FieldKind, value string) error
}
