package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// AccountStatus — состояние учетной записи.
type AccountStatus int

const (
	AccountUnverified AccountStatus = iota
	AccountVerified
	AccountBanned
)

// Valid сообщает, является ли статус одним из трех допустимых значений.
func (s AccountStatus) Valid() bool {
	return s >= AccountUnverified && s <= AccountBanned
}

func (s AccountStatus) String() string {
	switch s {
	case AccountUnverified:
		return "Unverified"
	case AccountVerified:
		return "Verified"
	case AccountBanned:
		return "Banned"
	default:
		return fmt.Sprintf("AccountStatus(%d)", int(s))
	}
}

// ParseAccountStatus разбирает статус из десятичной строки.
func ParseAccountStatus(s string) (AccountStatus, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: account status %q is not numeric", ErrInvalidValue, s)
	}
	status := AccountStatus(n)
	if !status.Valid() {
		return 0, fmt.Errorf("%w: account status %d is out of range", ErrInvalidValue, n)
	}
	return status, nil
}

// Game описывает доступ к одной игре.
type Game struct {
	Name []string `json:"name" bson:"name"`
}

// Access — вложенный набор разрешений пользователя.
type Access struct {
	Games []Game `json:"games" bson:"games"`
}

// User представляет запись каталога пользователей.
type User struct {
	UniqueID      string
	Rank          Rank
	Username      string
	Email         string
	DiscordName   string
	DiscordID     string
	AccountStatus AccountStatus
	IPList        []string
	PCHWID        string
	Access        Access
}

// NewUser описывает учетную запись, которую нужно создать. UniqueID выдает репозиторий.
type NewUser struct {
	Username    string
	Email       string
	DiscordID   string
	DiscordName string
	IP          string
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
//
// UpdateField ожидает значение уже приведенного типа: Rank для FieldRank,
// AccountStatus для FieldAccountStatus, []string для FieldIPList,
// Access для FieldAccess и string для остальных полей.
type UserRepository interface {
	FindByIdentifier(ctx context.Context, kind SearchKind, value string) (*User, error)
	FindByUniqueID(ctx context.Context, uniqueID string) (*User, error)
	UpdateField(ctx context.Context, uniqueID string, field FieldKind, value any) error
	Insert(ctx context.Context, user NewUser) (string, error)
	ListAll(ctx context.Context, excludeUsernames []string) ([]*User, error)
}
