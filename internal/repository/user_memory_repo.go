package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"user-directory-service/internal/domain"

	"github.com/google/uuid"
)

// MemoryUserRepository хранит пользователей в памяти процесса.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

var _ domain.UserRepository = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository создает пустое хранилище в памяти.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*domain.User),
	}
}

// Seed кладет готовые записи как есть, включая их uniqueid.
func (r *MemoryUserRepository) Seed(users ...*domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range users {
		if _, exists := r.users[u.UniqueID]; !exists {
			r.order = append(r.order, u.UniqueID)
		}
		r.users[u.UniqueID] = copyUser(u)
	}
}

func (r *MemoryUserRepository) FindByIdentifier(ctx context.Context, kind domain.SearchKind, value string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if kind == domain.SearchUniqueID {
		if u, ok := r.users[value]; ok {
			return copyUser(u), nil
		}
		return nil, domain.ErrUserNotFound
	}

	for _, id := range r.order {
		u := r.users[id]
		var candidate string
		switch kind {
		case domain.SearchUsername:
			candidate = u.Username
		case domain.SearchEmail:
			candidate = u.Email
		case domain.SearchDiscordID:
			candidate = u.DiscordID
		default:
			return nil, fmt.Errorf("%w: invalid search type %q", domain.ErrInvalidValue, kind)
		}
		if candidate == value {
			return copyUser(u), nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*domain.User, error) {
	return r.FindByIdentifier(ctx, domain.SearchUniqueID, uniqueID)
}

func (r *MemoryUserRepository) UpdateField(ctx context.Context, uniqueID string, field domain.FieldKind, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[uniqueID]
	if !ok {
		return domain.ErrUserNotFound
	}
	updated := copyUser(u)

	switch field {
	case domain.FieldRank:
		rank, err := valueAs[domain.Rank](field, value)
		if err != nil {
			return err
		}
		updated.Rank = rank
	case domain.FieldAccountStatus:
		status, err := valueAs[domain.AccountStatus](field, value)
		if err != nil {
			return err
		}
		updated.AccountStatus = status
	case domain.FieldIPList:
		ips, err := valueAs[[]string](field, value)
		if err != nil {
			return err
		}
		updated.IPList = append([]string(nil), ips...)
	case domain.FieldAccess:
		access, err := valueAs[domain.Access](field, value)
		if err != nil {
			return err
		}
		updated.Access = access
	default:
		s, err := valueAs[string](field, value)
		if err != nil {
			return err
		}
		if err := r.setString(updated, field, s); err != nil {
			return err
		}
	}

	if updated.UniqueID != uniqueID {
		delete(r.users, uniqueID)
		r.order[slices.Index(r.order, uniqueID)] = updated.UniqueID
	}
	r.users[updated.UniqueID] = copyUser(updated)

	return nil
}

// setString вызывается под r.mu.
func (r *MemoryUserRepository) setString(u *domain.User, field domain.FieldKind, s string) error {
	switch field {
	case domain.FieldUsername:
		for id, other := range r.users {
			if id != u.UniqueID && other.Username == s {
				return fmt.Errorf("%w: username", domain.ErrUserAlreadyExists)
			}
		}
		u.Username = s
	case domain.FieldUniqueID:
		if _, taken := r.users[s]; taken && s != u.UniqueID {
			return fmt.Errorf("%w: uniqueid", domain.ErrUserAlreadyExists)
		}
		u.UniqueID = s
	case domain.FieldEmail:
		u.Email = s
	case domain.FieldDiscordID:
		u.DiscordID = s
	case domain.FieldDiscordName:
		u.DiscordName = s
	case domain.FieldPCHWID:
		u.PCHWID = s
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
	}
	return nil
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user domain.NewUser) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.users {
		if other.Username == user.Username {
			return "", domain.ErrUserAlreadyExists
		}
	}

	uniqueID := uuid.NewString()
	r.users[uniqueID] = &domain.User{
		UniqueID:      uniqueID,
		Rank:          domain.RankGuest,
		Username:      user.Username,
		Email:         user.Email,
		DiscordName:   user.DiscordName,
		DiscordID:     user.DiscordID,
		AccountStatus: domain.AccountUnverified,
		IPList:        []string{user.IP},
	}
	r.order = append(r.order, uniqueID)

	return uniqueID, nil
}

func (r *MemoryUserRepository) ListAll(ctx context.Context, excludeUsernames []string) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.users[id]
		if slices.Contains(excludeUsernames, u.Username) {
			continue
		}
		users = append(users, copyUser(u))
	}

	return users, nil
}
