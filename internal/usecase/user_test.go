package usecase_test

import (
	"context"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	"user-directory-service/internal/authz"
	"user-directory-service/internal/domain"
	"user-directory-service/internal/mocks"
	"user-directory-service/internal/repository"
	"user-directory-service/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const serviceToken = "svc-token"

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testOptions() usecase.Options {
	return usecase.Options{
		StoreTimeout:   time.Second,
		SyncTimeout:    time.Second,
		ServiceToken:   serviceToken,
		SystemUsername: "system",
	}
}

func newUseCase(repo domain.UserRepository, syncer domain.IdentitySynchronizer) domain.UserUseCase {
	return usecase.NewUserUseCase(repo, authz.NewEvaluator(repo), syncer, testOptions(), quietLogger())
}

func seededRepo() *repository.MemoryUserRepository {
	repo := repository.NewMemoryUserRepository()
	repo.Seed(
		&domain.User{UniqueID: "u-owner", Rank: domain.RankOwner, Username: "owner", DiscordID: "d-owner"},
		&domain.User{UniqueID: "u-admin", Rank: domain.RankAdmin, Username: "admin", DiscordID: "d-admin"},
		&domain.User{UniqueID: "u-admin2", Rank: domain.RankAdmin, Username: "admin2"},
		&domain.User{UniqueID: "u-mod", Rank: domain.RankModerator, Username: "mod", DiscordID: "d-mod"},
		&domain.User{UniqueID: "u-player", Rank: domain.RankRegular, Username: "player", DiscordID: "d-player", IPList: []string{"10.0.0.1"}},
		&domain.User{UniqueID: "u-nolink", Rank: domain.RankGuest, Username: "nolink"},
		&domain.User{UniqueID: "u-system", Rank: domain.RankOwner, Username: "system"},
	)
	return repo
}

func TestUserUseCase_EditUser_InvalidFieldPerformsNoWrites(t *testing.T) {
	repo := &mocks.UserRepository{}
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	for _, field := range []string{"password", "", "Rank", "is_active"} {
		ok, err := uc.EditUser(context.Background(), "u-admin", "u-player", field, "1")

		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrInvalidField, "field %q", field)
	}

	repo.AssertNotCalled(t, "FindByUniqueID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	syncer.AssertNotCalled(t, "SyncField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_EditUser_AccountStatusOutOfRangePerformsNoWrites(t *testing.T) {
	repo := &mocks.UserRepository{}
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	admin := &domain.User{UniqueID: "u-admin", Rank: domain.RankAdmin}
	target := &domain.User{UniqueID: "u-player", Rank: domain.RankRegular}
	repo.On("FindByUniqueID", mock.Anything, "u-admin").Return(admin, nil)
	repo.On("FindByUniqueID", mock.Anything, "u-player").Return(target, nil)

	for _, data := range []string{"3", "-1", "42", "banned", ""} {
		ok, err := uc.EditUser(context.Background(), "u-admin", "u-player", "accountStatus", data)

		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrInvalidValue, "data %q", data)
	}

	repo.AssertNotCalled(t, "UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_EditUser_AccountStatusRequiresAdmin(t *testing.T) {
	repo := seededRepo()
	uc := newUseCase(repo, &mocks.IdentitySynchronizer{})

	ok, err := uc.EditUser(context.Background(), "u-mod", "u-player", "accountStatus", "2")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ok, err = uc.EditUser(context.Background(), "u-player", "u-player", "accountStatus", "1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ok, err = uc.EditUser(context.Background(), "u-admin", "u-player", "accountStatus", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := repo.FindByUniqueID(context.Background(), "u-player")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountBanned, user.AccountStatus)
}

func TestUserUseCase_EditUser_ModeratorCannotGrantAdmin(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	ok, err := uc.EditUser(context.Background(), "u-mod", "u-player", "rank", "6")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	syncer.AssertNotCalled(t, "SyncField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	user, err := repo.FindByUniqueID(context.Background(), "u-player")
	require.NoError(t, err)
	assert.Equal(t, domain.RankRegular, user.Rank)
}

func TestUserUseCase_EditUser_RankCeiling(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	ok, err := uc.EditUser(context.Background(), "u-admin", "u-player", "rank", "6")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	syncer.On("SyncField", mock.Anything, "d-player", domain.FieldRank, "5").Return(nil).Once()

	ok, err = uc.EditUser(context.Background(), "u-admin", "u-player", "rank", "5")
	require.NoError(t, err)
	assert.True(t, ok)
	syncer.AssertExpectations(t)

	user, err := repo.FindByUniqueID(context.Background(), "u-player")
	require.NoError(t, err)
	assert.Equal(t, domain.RankDeveloper, user.Rank)
}

func TestUserUseCase_EditUser_RankMustBeNumericOrKnown(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})

	for _, data := range []string{"8", "-1", "emperor"} {
		ok, err := uc.EditUser(context.Background(), "u-owner", "u-player", "rank", data)

		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrInvalidValue, "data %q", data)
	}
}

func TestUserUseCase_EditUser_UsernameSyncFailureKeepsLocalValue(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	syncer.On("SyncField", mock.Anything, "d-admin", domain.FieldUsername, "renamed").
		Return(assert.AnError).Once()

	ok, err := uc.EditUser(context.Background(), "u-admin", "u-admin", "username", "renamed")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrExternalSync)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	syncer.AssertExpectations(t)

	user, err := uc.GetUser(context.Background(), "u-admin", domain.SearchUniqueID, "u-admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestUserUseCase_EditUser_UsernameSyncSuccessCommits(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	syncer.On("SyncField", mock.Anything, "d-player", domain.FieldUsername, "playerone").Return(nil).Once()

	ok, err := uc.EditUser(context.Background(), "u-player", "u-player", "username", "player<one>")
	require.NoError(t, err)
	assert.True(t, ok)
	syncer.AssertExpectations(t)

	user, err := repo.FindByUniqueID(context.Background(), "u-player")
	require.NoError(t, err)
	assert.Equal(t, "playerone", user.Username)
}

func TestUserUseCase_EditUser_SyncSkippedWithoutLinkedIdentity(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	ok, err := uc.EditUser(context.Background(), "u-nolink", "u-nolink", "username", "linked_later")
	require.NoError(t, err)
	assert.True(t, ok)

	syncer.AssertNotCalled(t, "SyncField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_EditUser_FieldsWithoutSyncCommitDirectly(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)
	ctx := context.Background()

	_, err := uc.EditUser(ctx, "u-player", "u-player", "email", "player@example.com")
	require.NoError(t, err)
	_, err = uc.EditUser(ctx, "u-player", "u-player", "discordName", "Player#0001")
	require.NoError(t, err)
	_, err = uc.EditUser(ctx, "u-mod", "u-player", "ipList", `["10.0.0.1", "2001:db8::1"]`)
	require.NoError(t, err)
	_, err = uc.EditUser(ctx, "u-mod", "u-player", "pc_hwid", "HW-1234")
	require.NoError(t, err)
	_, err = uc.EditUser(ctx, "u-mod", "u-player", "access", `{"games":[{"name":["arma","dayz"]}]}`)
	require.NoError(t, err)

	user, err := repo.FindByUniqueID(ctx, "u-player")
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", user.Email)
	assert.Equal(t, "Player#0001", user.DiscordName)
	assert.Equal(t, []string{"10.0.0.1", "2001:db8::1"}, user.IPList)
	assert.Equal(t, "HW-1234", user.PCHWID)
	assert.Equal(t, domain.Access{Games: []domain.Game{{Name: []string{"arma", "dayz"}}}}, user.Access)

	syncer.AssertNotCalled(t, "SyncField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_EditUser_InvalidValues(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})

	tests := []struct {
		field string
		data  string
	}{
		{"email", "not-an-email"},
		{"ipList", "10.0.0.1, nonsense"},
		{"ipList", `["10.0.0.1"`},
		{"access", `{"games":`},
		{"access", `{"roles":[]}`},
		{"username", "<<>>"},
		{"uniqueid", ""},
	}

	for _, tt := range tests {
		ok, err := uc.EditUser(context.Background(), "u-owner", "u-player", tt.field, tt.data)

		assert.False(t, ok)
		assert.ErrorIs(t, err, domain.ErrInvalidValue, "%s=%q", tt.field, tt.data)
	}
}

func TestUserUseCase_EditUser_UniqueIDRequiresAdmin(t *testing.T) {
	repo := seededRepo()
	uc := newUseCase(repo, &mocks.IdentitySynchronizer{})
	ctx := context.Background()

	ok, err := uc.EditUser(ctx, "u-player", "u-player", "uniqueid", "u-player-new")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ok, err = uc.EditUser(ctx, "u-mod", "u-player", "uniqueid", "u-player-new")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ok, err = uc.EditUser(ctx, "u-admin", "u-player", "uniqueid", "u-player-new")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByUniqueID(ctx, "u-player")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	user, err := repo.FindByUniqueID(ctx, "u-player-new")
	require.NoError(t, err)
	assert.Equal(t, "player", user.Username)
}

func TestUserUseCase_EditUser_AccessRules(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})
	ctx := context.Background()

	_, err := uc.EditUser(ctx, "", "u-player", "email", "a@example.com")
	assert.ErrorIs(t, err, domain.ErrUnknownCaller)

	_, err = uc.EditUser(ctx, "u-ghost", "u-player", "email", "a@example.com")
	assert.ErrorIs(t, err, domain.ErrUnknownCaller)

	_, err = uc.EditUser(ctx, "u-nolink", "u-player", "email", "a@example.com")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.EditUser(ctx, "u-mod", "u-ghost", "email", "a@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUseCase_EditUser_CommitFailureAfterSyncIsStoreError(t *testing.T) {
	repo := &mocks.UserRepository{}
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	owner := &domain.User{UniqueID: "u-owner", Rank: domain.RankOwner, DiscordID: "d-owner"}
	target := &domain.User{UniqueID: "u-player", Rank: domain.RankRegular, DiscordID: "d-player"}
	repo.On("FindByUniqueID", mock.Anything, "u-owner").Return(owner, nil)
	repo.On("FindByUniqueID", mock.Anything, "u-player").Return(target, nil)
	syncer.On("SyncField", mock.Anything, "d-player", domain.FieldRank, "3").Return(nil)
	repo.On("UpdateField", mock.Anything, "u-player", domain.FieldRank, domain.RankTrusted).Return(assert.AnError)

	ok, err := uc.EditUser(context.Background(), "u-owner", "u-player", "rank", "3")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrStore)
	syncer.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUserUseCase_EditUser_TakenUsernameIsRejectedBeforeSync(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	ok, err := uc.EditUser(context.Background(), "u-admin", "u-admin", "username", "owner")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	syncer.AssertNotCalled(t, "SyncField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	user, err := repo.FindByUniqueID(context.Background(), "u-admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestUserUseCase_EditUser_KeepingOwnUsernameIsAllowed(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	syncer.On("SyncField", mock.Anything, "d-admin", domain.FieldUsername, "admin").Return(nil).Once()
	uc := newUseCase(repo, syncer)

	ok, err := uc.EditUser(context.Background(), "u-admin", "u-admin", "username", "admin")

	require.NoError(t, err)
	assert.True(t, ok)
	syncer.AssertExpectations(t)
}

func TestUserUseCase_EditUser_ConflictAfterSyncIsStoreError(t *testing.T) {
	repo := &mocks.UserRepository{}
	syncer := &mocks.IdentitySynchronizer{}
	uc := newUseCase(repo, syncer)

	caller := &domain.User{UniqueID: "u-player", Rank: domain.RankRegular, DiscordID: "d-player"}
	repo.On("FindByUniqueID", mock.Anything, "u-player").Return(caller, nil)
	repo.On("FindByIdentifier", mock.Anything, domain.SearchUsername, "racer").Return(nil, domain.ErrUserNotFound)
	syncer.On("SyncField", mock.Anything, "d-player", domain.FieldUsername, "racer").Return(nil).Once()
	repo.On("UpdateField", mock.Anything, "u-player", domain.FieldUsername, "racer").
		Return(domain.ErrUserAlreadyExists).Once()

	ok, err := uc.EditUser(context.Background(), "u-player", "u-player", "username", "racer")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
	syncer.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUserUseCase_EditUser_SyncTimeoutSkipsCommit(t *testing.T) {
	repo := &mocks.UserRepository{}
	syncer := &mocks.IdentitySynchronizer{}
	opts := testOptions()
	opts.SyncTimeout = 20 * time.Millisecond
	uc := usecase.NewUserUseCase(repo, authz.NewEvaluator(repo), syncer, opts, quietLogger())

	owner := &domain.User{UniqueID: "u-owner", Rank: domain.RankOwner, DiscordID: "d-owner"}
	target := &domain.User{UniqueID: "u-player", Rank: domain.RankRegular, DiscordID: "d-player"}
	repo.On("FindByUniqueID", mock.Anything, "u-owner").Return(owner, nil)
	repo.On("FindByUniqueID", mock.Anything, "u-player").Return(target, nil)
	syncer.On("SyncField", mock.Anything, "d-player", domain.FieldRank, "3").
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(context.DeadlineExceeded).Once()

	ok, err := uc.EditUser(context.Background(), "u-owner", "u-player", "rank", "3")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrExternalSync)
	syncer.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserUseCase_EditUser_ConcurrentRankEdits(t *testing.T) {
	repo := seededRepo()
	syncer := &mocks.IdentitySynchronizer{}
	syncer.On("SyncField", mock.Anything, "d-player", domain.FieldRank, mock.Anything).Return(nil)
	uc := newUseCase(repo, syncer)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := uc.EditUser(context.Background(), "u-owner", "u-player", "rank", "2")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := uc.EditUser(context.Background(), "u-admin", "u-player", "rank", "3")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	user, err := repo.FindByUniqueID(context.Background(), "u-player")
	require.NoError(t, err)
	assert.Contains(t, []domain.Rank{domain.RankVeteran, domain.RankTrusted}, user.Rank)
	assert.Equal(t, "player", user.Username)
	assert.Equal(t, []string{"10.0.0.1"}, user.IPList)
}

func TestUserUseCase_GetUser(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})
	ctx := context.Background()

	user, err := uc.GetUser(ctx, "u-player", domain.SearchUsername, "player")
	require.NoError(t, err)
	assert.Equal(t, "u-player", user.UniqueID)

	user, err = uc.GetUser(ctx, "u-mod", domain.SearchDiscordID, "d-admin")
	require.NoError(t, err)
	assert.Equal(t, "u-admin", user.UniqueID)

	_, err = uc.GetUser(ctx, "u-player", domain.SearchUsername, "admin")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.GetUser(ctx, "u-mod", domain.SearchEmail, "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.GetUser(ctx, "u-mod", domain.SearchUniqueID, "0")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.GetUser(ctx, "", domain.SearchUsername, "player")
	assert.ErrorIs(t, err, domain.ErrUnknownCaller)
}

func TestUserUseCase_GetUser_StoreFailureIsClassified(t *testing.T) {
	repo := &mocks.UserRepository{}
	uc := newUseCase(repo, &mocks.IdentitySynchronizer{})

	repo.On("FindByUniqueID", mock.Anything, "u-mod").Return(&domain.User{UniqueID: "u-mod", Rank: domain.RankModerator}, nil)
	repo.On("FindByIdentifier", mock.Anything, domain.SearchUsername, "player").Return(nil, assert.AnError)

	_, err := uc.GetUser(context.Background(), "u-mod", domain.SearchUsername, "player")

	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestUserUseCase_GetMe(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})

	me, err := uc.GetMe(context.Background(), "u-player")
	require.NoError(t, err)
	assert.Equal(t, "player", me.Username)

	_, err = uc.GetMe(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnknownCaller)

	_, err = uc.GetMe(context.Background(), "u-ghost")
	assert.ErrorIs(t, err, domain.ErrUnknownCaller)
}

func TestUserUseCase_GetAllUsers(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})
	ctx := context.Background()

	users, err := uc.GetAllUsers(ctx, "", serviceToken)
	require.NoError(t, err)
	assert.Len(t, users, 6)
	for _, u := range users {
		assert.NotEqual(t, "system", u.Username)
	}

	users, err = uc.GetAllUsers(ctx, "u-admin", "")
	require.NoError(t, err)
	assert.Len(t, users, 6)

	_, err = uc.GetAllUsers(ctx, "u-mod", "wrong-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.GetAllUsers(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrUnknownCaller)
}

func TestUserUseCase_CreateUser_Defaults(t *testing.T) {
	repo := seededRepo()
	uc := newUseCase(repo, &mocks.IdentitySynchronizer{})
	ctx := context.Background()

	before, err := repo.ListAll(ctx, nil)
	require.NoError(t, err)

	ok, err := uc.CreateUser(ctx, "u-admin", "", domain.NewUser{
		Username:    "newbie",
		Email:       "newbie@example.com",
		DiscordID:   "d-newbie",
		DiscordName: "Newbie",
		IP:          "192.0.2.10",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	created, err := repo.FindByIdentifier(ctx, domain.SearchUsername, "newbie")
	require.NoError(t, err)
	assert.NotEmpty(t, created.UniqueID)
	for _, u := range before {
		assert.NotEqual(t, u.UniqueID, created.UniqueID)
	}
	assert.Equal(t, domain.RankGuest, created.Rank)
	assert.Equal(t, domain.AccountUnverified, created.AccountStatus)
	assert.Equal(t, []string{"192.0.2.10"}, created.IPList)
	assert.Equal(t, "newbie@example.com", created.Email)
	assert.Equal(t, "d-newbie", created.DiscordID)
}

func TestUserUseCase_CreateUser_Authorization(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})
	ctx := context.Background()
	newUser := domain.NewUser{Username: "fresh", IP: "192.0.2.11"}

	_, err := uc.CreateUser(ctx, "u-mod", "", newUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	ok, err := uc.CreateUser(ctx, "", serviceToken, newUser)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = uc.CreateUser(ctx, "", serviceToken, newUser)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserUseCase_CreateUser_InvalidInput(t *testing.T) {
	uc := newUseCase(seededRepo(), &mocks.IdentitySynchronizer{})

	tests := []domain.NewUser{
		{Username: "", IP: "192.0.2.1"},
		{Username: "x", IP: "not-an-ip"},
		{Username: "x", IP: "192.0.2.1", Email: "broken"},
	}

	for i, tt := range tests {
		_, err := uc.CreateUser(context.Background(), "u-owner", "", tt)
		assert.ErrorIs(t, err, domain.ErrInvalidValue, "case "+strconv.Itoa(i))
	}
}
