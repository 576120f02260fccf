package mocks

import (
	"context"

	"user-directory-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository — testify-мок domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

var _ domain.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) FindByIdentifier(ctx context.Context, kind domain.SearchKind, value string) (*domain.User, error) {
	args := m.Called(ctx, kind, value)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*domain.User, error) {
	args := m.Called(ctx, uniqueID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdateField(ctx context.Context, uniqueID string, field domain.FieldKind, value any) error {
	args := m.Called(ctx, uniqueID, field, value)
	return args.Error(0)
}

func (m *UserRepository) Insert(ctx context.Context, user domain.NewUser) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) ListAll(ctx context.Context, excludeUsernames []string) ([]*domain.User, error) {
	args := m.Called(ctx, excludeUsernames)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}
