package repository

import (
	"context"
	"testing"

	"orderdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testUser(handle string) *domain.User {
	return &domain.User{
		FullName:     "Aru Bekova",
		Handle:       handle,
		PasswordHash: "hash",
		PhoneNumber:  handle,
		Role:         domain.RoleClient,
		Active:       true,
	}
}

func TestUserCreate_DuplicateHandle(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("+77011112233")))

	err := repo.Create(ctx, testUser("+77011112233"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserUpdateFields_MissingUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.UpdateFields(context.Background(), 99, map[string]any{"active": false})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
