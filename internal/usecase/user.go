package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"user-directory-service/internal/authz"
	"user-directory-service/internal/domain"
	"user-directory-service/internal/sanitize"

	"github.com/sirupsen/logrus"
)

// Этапы редактирования поля; попадают в лог при отказе.
const (
	stageResolveCaller = "resolve_caller"
	stageAuthorize     = "authorize"
	stageSync          = "sync"
	stageCommit        = "commit"
)

// UserUseCase реализует бизнес-логику каталога пользователей.
type UserUseCase struct {
	userRepo  domain.UserRepository
	evaluator *authz.Evaluator
	syncer    domain.IdentitySynchronizer
	gate      adminGate
	opts      Options
	logger    *logrus.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(
	userRepo domain.UserRepository,
	evaluator *authz.Evaluator,
	syncer domain.IdentitySynchronizer,
	opts Options,
	logger *logrus.Logger,
) domain.UserUseCase {
	return &UserUseCase{
		userRepo:  userRepo,
		evaluator: evaluator,
		syncer:    syncer,
		gate:      adminGate{evaluator: evaluator, serviceToken: opts.ServiceToken},
		opts:      opts,
		logger:    logger,
	}
}

// GetUser ищет пользователя по идентификатору. Вызывающий видит свою запись,
// чужие записи доступны с ранга Moderator.
func (uc *UserUseCase) GetUser(ctx context.Context, callerToken string, search domain.SearchKind, identifier string) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancel()

	caller, err := uc.evaluator.ResolveCaller(ctx, sanitize.String(callerToken))
	if err != nil {
		return nil, err
	}

	identifier = sanitize.String(identifier)
	if identifier == "" || identifier == "0" {
		return nil, domain.ErrUserNotFound
	}

	target, err := uc.userRepo.FindByIdentifier(ctx, search, identifier)
	if err != nil {
		return nil, domain.Classify(err, domain.ErrStore)
	}

	if err := authz.SelfOrRank(caller, target.UniqueID, domain.RankModerator); err != nil {
		return nil, err
	}

	return target, nil
}

// GetMe возвращает запись владельца токена.
func (uc *UserUseCase) GetMe(ctx context.Context, token string) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancel()

	return uc.evaluator.ResolveCaller(ctx, sanitize.String(token))
}

// GetAllUsers возвращает всех пользователей, кроме служебной учетной записи.
func (uc *UserUseCase) GetAllUsers(ctx context.Context, callerToken, serverToken string) ([]*domain.User, error) {
	ctx, cancel := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancel()

	if err := uc.gate.authorize(ctx, sanitize.String(callerToken), serverToken); err != nil {
		return nil, err
	}

	users, err := uc.userRepo.ListAll(ctx, []string{uc.opts.SystemUsername})
	if err != nil {
		return nil, domain.Classify(err, domain.ErrStore)
	}
	return users, nil
}

// CreateUser заводит новую учетную запись с рангом Guest и статусом Unverified.
func (uc *UserUseCase) CreateUser(ctx context.Context, callerToken, serverToken string, user domain.NewUser) (bool, error) {
	ctx, cancel := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancel()

	if err := uc.gate.authorize(ctx, sanitize.String(callerToken), serverToken); err != nil {
		return false, err
	}

	newUser, err := validateNewUser(user)
	if err != nil {
		return false, err
	}

	uniqueID, err := uc.userRepo.Insert(ctx, newUser)
	if err != nil {
		return false, domain.Classify(err, domain.ErrStore)
	}

	uc.logger.WithFields(logrus.Fields{
		"operation": "createUser",
		"username":  newUser.Username,
		"uniqueid":  tokenPrefix(uniqueID),
	}).Info("User created")

	return true, nil
}

func validateNewUser(user domain.NewUser) (domain.NewUser, error) {
	out := domain.NewUser{
		Username:    strings.TrimSpace(sanitize.String(user.Username)),
		DiscordID:   strings.TrimSpace(sanitize.String(user.DiscordID)),
		DiscordName: strings.TrimSpace(sanitize.String(user.DiscordName)),
	}
	if out.Username == "" {
		return domain.NewUser{}, fmt.Errorf("%w: username must not be empty", domain.ErrInvalidValue)
	}

	if strings.TrimSpace(user.Email) != "" {
		email, err := parseEmail(user.Email)
		if err != nil {
			return domain.NewUser{}, err
		}
		out.Email = email
	}

	ip, err := parseIP(user.IP)
	if err != nil {
		return domain.NewUser{}, err
	}
	out.IP = ip

	return out, nil
}

// EditUser меняет ровно одно поле записи uniqueID:
// resolve_caller -> authorize -> [sync] -> commit.
func (uc *UserUseCase) EditUser(ctx context.Context, callerToken, uniqueID, field, data string) (bool, error) {
	kind, err := domain.ParseFieldKind(sanitize.String(field))
	if err != nil {
		return false, err
	}

	callerToken = sanitize.String(callerToken)
	uniqueID = sanitize.String(uniqueID)

	log := uc.logger.WithFields(logrus.Fields{
		"operation": "editUser",
		"field":     kind,
		"target":    tokenPrefix(uniqueID),
		"caller":    tokenPrefix(callerToken),
	})
	fail := func(stage string, err error) (bool, error) {
		log.WithFields(logrus.Fields{
			"stage": stage,
			"error": err.Error(),
		}).Warn("User edit rejected")
		return false, err
	}

	storeCtx, cancel := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancel()

	caller, err := uc.evaluator.AuthorizeSelfOrModerator(storeCtx, callerToken, uniqueID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCaller) {
			return fail(stageResolveCaller, err)
		}
		return fail(stageAuthorize, err)
	}

	target, value, err := uc.authorizeEdit(storeCtx, caller, uniqueID, kind, data)
	if err != nil {
		return fail(stageAuthorize, err)
	}

	synced := false
	if kind.RequiresSync() {
		if target.DiscordID == "" {
			log.Debug("Target has no linked identity, sync skipped")
		} else {
			if err := uc.sync(ctx, target.DiscordID, kind, value.mirror); err != nil {
				return fail(stageSync, err)
			}
			synced = true
		}
	}

	commitCtx, cancelCommit := withTimeout(ctx, uc.opts.StoreTimeout)
	defer cancelCommit()

	if err := uc.userRepo.UpdateField(commitCtx, target.UniqueID, kind, value.typed); err != nil {
		if synced {
			log.WithField("error", err.Error()).Error("Field synced to identity platform but local commit failed")
			return fail(stageCommit, fmt.Errorf("%w: commit after identity sync: %v", domain.ErrStore, err))
		}
		return fail(stageCommit, domain.Classify(err, domain.ErrStore))
	}

	log.Info("User field updated")
	return true, nil
}

// authorizeEdit загружает цель и проверяет правила конкретного поля.
// Доступ к самой записи к этому моменту уже проверен.
func (uc *UserUseCase) authorizeEdit(ctx context.Context, caller *domain.User, uniqueID string, kind domain.FieldKind, data string) (*domain.User, fieldValue, error) {
	target := caller
	if caller.UniqueID != uniqueID {
		var err error
		target, err = uc.userRepo.FindByUniqueID(ctx, uniqueID)
		if err != nil {
			return nil, fieldValue{}, domain.Classify(err, domain.ErrStore)
		}
	}

	value, err := parseFieldValue(kind, data)
	if err != nil {
		return nil, fieldValue{}, err
	}

	switch kind {
	case domain.FieldRank:
		err = authz.AuthorizeRankChange(caller.Rank, target.Rank, value.typed.(domain.Rank))
	case domain.FieldUniqueID:
		err = authz.RequireRank(caller.Rank, domain.RankAdmin)
	case domain.FieldAccountStatus:
		err = authz.AuthorizeAccountStatusChange(caller.Rank, value.typed.(domain.AccountStatus))
	}
	if err != nil {
		return nil, fieldValue{}, err
	}

	if kind == domain.FieldUsername {
		if err := uc.ensureUsernameFree(ctx, target.UniqueID, value.typed.(string)); err != nil {
			return nil, fieldValue{}, err
		}
	}

	return target, value, nil
}

// ensureUsernameFree отклоняет имя, занятое другой записью, до синхронизации с внешней платформой.
func (uc *UserUseCase) ensureUsernameFree(ctx context.Context, uniqueID, username string) error {
	owner, err := uc.userRepo.FindByIdentifier(ctx, domain.SearchUsername, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	case err != nil:
		return domain.Classify(err, domain.ErrStore)
	case owner.UniqueID != uniqueID:
		return fmt.Errorf("%w: username %q", domain.ErrUserAlreadyExists, username)
	}
	return nil
}

func (uc *UserUseCase) sync(ctx context.Context, discordID string, kind domain.FieldKind, value string) error {
	ctx, cancel := withTimeout(ctx, uc.opts.SyncTimeout)
	defer cancel()

	if err := uc.syncer.SyncField(ctx, discordID, kind, value); err != nil {
		return domain.Classify(err, domain.ErrExternalSync)
	}
	return nil
}
