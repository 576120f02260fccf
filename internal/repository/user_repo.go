package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"user-directory-service/internal/database"
	"user-directory-service/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB, queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		db:      db,
		queries: queries,
	}
}

// FindByIdentifier возвращает пользователя по одному из поисковых идентификаторов.
func (r *UserRepository) FindByIdentifier(ctx context.Context, kind domain.SearchKind, value string) (*domain.User, error) {
	var (
		dbUser database.User
		err    error
	)

	switch kind {
	case domain.SearchUniqueID:
		dbUser, err = r.queries.GetUserByUniqueID(ctx, value)
	case domain.SearchUsername:
		dbUser, err = r.queries.GetUserByUsername(ctx, value)
	case domain.SearchEmail:
		dbUser, err = r.queries.GetUserByEmail(ctx, value)
	case domain.SearchDiscordID:
		dbUser, err = r.queries.GetUserByDiscordID(ctx, value)
	default:
		return nil, fmt.Errorf("%w: invalid search type %q", domain.ErrInvalidValue, kind)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser)
}

// FindByUniqueID возвращает пользователя по первичному ключу.
func (r *UserRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*domain.User, error) {
	return r.FindByIdentifier(ctx, domain.SearchUniqueID, uniqueID)
}

// UpdateField обновляет ровно одну колонку одной записи.
func (r *UserRepository) UpdateField(ctx context.Context, uniqueID string, field domain.FieldKind, value any) error {
	rows, err := r.updateColumn(ctx, uniqueID, field, value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidValue) || errors.Is(err, domain.ErrInvalidField) {
			return err
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUserAlreadyExists, field)
		}
		return fmt.Errorf("failed to update user %s: %w", field, err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) updateColumn(ctx context.Context, uniqueID string, field domain.FieldKind, value any) (int64, error) {
	switch field {
	case domain.FieldRank:
		rank, err := valueAs[domain.Rank](field, value)
		if err != nil {
			return 0, err
		}
		return r.queries.UpdateUserRank(ctx, database.UpdateUserRankParams{Uniqueid: uniqueID, Rank: int16(rank)})
	case domain.FieldAccountStatus:
		status, err := valueAs[domain.AccountStatus](field, value)
		if err != nil {
			return 0, err
		}
		return r.queries.UpdateUserAccountStatus(ctx, database.UpdateUserAccountStatusParams{Uniqueid: uniqueID, AccountStatus: int16(status)})
	case domain.FieldIPList:
		ips, err := valueAs[[]string](field, value)
		if err != nil {
			return 0, err
		}
		raw, err := marshalIPList(ips)
		if err != nil {
			return 0, err
		}
		return r.queries.UpdateUserIPList(ctx, database.UpdateUserIPListParams{Uniqueid: uniqueID, IpList: raw})
	case domain.FieldAccess:
		access, err := valueAs[domain.Access](field, value)
		if err != nil {
			return 0, err
		}
		raw, err := marshalAccess(access)
		if err != nil {
			return 0, err
		}
		return r.queries.UpdateUserAccess(ctx, database.UpdateUserAccessParams{Uniqueid: uniqueID, Access: raw})
	}

	s, err := valueAs[string](field, value)
	if err != nil {
		return 0, err
	}

	switch field {
	case domain.FieldUsername:
		return r.queries.UpdateUserUsername(ctx, database.UpdateUserUsernameParams{Uniqueid: uniqueID, Username: s})
	case domain.FieldUniqueID:
		return r.queries.UpdateUserUniqueID(ctx, database.UpdateUserUniqueIDParams{Uniqueid: uniqueID, Uniqueid_2: s})
	case domain.FieldEmail:
		return r.queries.UpdateUserEmail(ctx, database.UpdateUserEmailParams{Uniqueid: uniqueID, Email: s})
	case domain.FieldDiscordID:
		return r.queries.UpdateUserDiscordID(ctx, database.UpdateUserDiscordIDParams{Uniqueid: uniqueID, DiscordID: s})
	case domain.FieldDiscordName:
		return r.queries.UpdateUserDiscordName(ctx, database.UpdateUserDiscordNameParams{Uniqueid: uniqueID, DiscordName: s})
	case domain.FieldPCHWID:
		return r.queries.UpdateUserPCHWID(ctx, database.UpdateUserPCHWIDParams{Uniqueid: uniqueID, PcHwid: s})
	}

	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
}

// Insert создает пользователя со свежим uniqueid.
func (r *UserRepository) Insert(ctx context.Context, user domain.NewUser) (string, error) {
	uniqueID := uuid.NewString()

	ipList, err := marshalIPList([]string{user.IP})
	if err != nil {
		return "", err
	}

	err = r.queries.InsertUser(ctx, database.InsertUserParams{
		Uniqueid:      uniqueID,
		Rank:          int16(domain.RankGuest),
		Username:      user.Username,
		Email:         user.Email,
		DiscordName:   user.DiscordName,
		DiscordID:     user.DiscordID,
		AccountStatus: int16(domain.AccountUnverified),
		IpList:        ipList,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	return uniqueID, nil
}

// ListAll возвращает всех пользователей, кроме перечисленных имен.
func (r *UserRepository) ListAll(ctx context.Context, excludeUsernames []string) ([]*domain.User, error) {
	if excludeUsernames == nil {
		excludeUsernames = []string{}
	}
	excluded, err := json.Marshal(excludeUsernames)
	if err != nil {
		return nil, fmt.Errorf("failed to encode excluded usernames: %w", err)
	}

	dbUsers, err := r.queries.ListUsersExcluding(ctx, excluded)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		user, err := toDomainUser(dbUser)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func toDomainUser(dbUser database.User) (*domain.User, error) {
	user := &domain.User{
		UniqueID:      dbUser.Uniqueid,
		Rank:          domain.Rank(dbUser.Rank),
		Username:      dbUser.Username,
		Email:         dbUser.Email,
		DiscordName:   dbUser.DiscordName,
		DiscordID:     dbUser.DiscordID,
		AccountStatus: domain.AccountStatus(dbUser.AccountStatus),
		PCHWID:        dbUser.PcHwid,
	}

	if len(dbUser.IpList) > 0 {
		if err := json.Unmarshal(dbUser.IpList, &user.IPList); err != nil {
			return nil, fmt.Errorf("failed to decode ip_list of %s: %w", dbUser.Uniqueid, err)
		}
	}
	if len(dbUser.Access) > 0 {
		if err := json.Unmarshal(dbUser.Access, &user.Access); err != nil {
			return nil, fmt.Errorf("failed to decode access of %s: %w", dbUser.Uniqueid, err)
		}
	}

	return user, nil
}

func marshalIPList(ips []string) (json.RawMessage, error) {
	if ips == nil {
		ips = []string{}
	}
	raw, err := json.Marshal(ips)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ip_list: %w", err)
	}
	return raw, nil
}

func marshalAccess(access domain.Access) (json.RawMessage, error) {
	if access.Games == nil {
		access.Games = []domain.Game{}
	}
	raw, err := json.Marshal(access)
	if err != nil {
		return nil, fmt.Errorf("failed to encode access: %w", err)
	}
	return raw, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
