package mocks

import (
	"context"

	"user-directory-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// IdentitySynchronizer — testify-мок domain.IdentitySynchronizer.
type IdentitySynchronizer struct {
	mock.Mock
}

var _ domain.IdentitySynchronizer = (*IdentitySynchronizer)(nil)

func (m *IdentitySynchronizer) SyncField(ctx context.Context, discordID string, field domain.FieldKind, value string) error {
	args := m.Called(ctx, discordID, field, value)
	return args.Error(0)
}
