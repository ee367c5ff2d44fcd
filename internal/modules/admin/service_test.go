package admin

import (
	"context"
	"errors"
	"testing"

	"orderdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	args := m.Called(ctx, handle)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type mockExtAuth struct {
	mock.Mock
}

func (m *mockExtAuth) CreateUser(ctx context.Context, phoneNumber, fullName string) (string, error) {
	args := m.Called(ctx, phoneNumber, fullName)
	return args.String(0), args.Error(1)
}

func (m *mockExtAuth) DeleteUser(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func TestCreateUser_Success(t *testing.T) {
	users := new(mockUserRepo)
	external := new(mockExtAuth)
	svc := NewService(users, external)

	users.On("ExistsByHandle", mock.Anything, "+77051234455").Return(false, nil)
	external.On("CreateUser", mock.Anything, "+77051234455", "Marat Saduov").Return("ext-ref-1", nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 12
	}).Return(nil)

	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		FullName:    "Marat Saduov",
		PhoneNumber: "+77051234455",
		Password:    "temp-pass1",
		ClientID:    "grp-44",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), user.ID)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.True(t, user.MustChangePassword)
	assert.Equal(t, "ext-ref-1", user.ExternalAuthRef)
	assert.Empty(t, user.PasswordHash)
	external.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestCreateUser_HandleTaken(t *testing.T) {
	users := new(mockUserRepo)
	external := new(mockExtAuth)
	svc := NewService(users, external)

	users.On("ExistsByHandle", mock.Anything, "+77051234455").Return(true, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		FullName:    "Marat Saduov",
		PhoneNumber: "+77051234455",
		Password:    "temp-pass1",
	})
	assert.ErrorIs(t, err, ErrHandleAlreadyExists)
	external.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateUser_ExternalFailure(t *testing.T) {
	users := new(mockUserRepo)
	external := new(mockExtAuth)
	svc := NewService(users, external)

	users.On("ExistsByHandle", mock.Anything, "+77051234455").Return(false, nil)
	external.On("CreateUser", mock.Anything, "+77051234455", "Marat Saduov").Return("", errors.New("provider unavailable"))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		FullName:    "Marat Saduov",
		PhoneNumber: "+77051234455",
		Password:    "temp-pass1",
	})
	assert.ErrorIs(t, err, ErrExternalCreate)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_LocalFailureRollsBackExternal(t *testing.T) {
	users := new(mockUserRepo)
	external := new(mockExtAuth)
	svc := NewService(users, external)

	dbErr := errors.New("unique constraint")
	users.On("ExistsByHandle", mock.Anything, "+77051234455").Return(false, nil)
	external.On("CreateUser", mock.Anything, "+77051234455", "Marat Saduov").Return("ext-ref-1", nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(dbErr)
	external.On("DeleteUser", mock.Anything, "ext-ref-1").Return(nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		FullName:    "Marat Saduov",
		PhoneNumber: "+77051234455",
		Password:    "temp-pass1",
	})
	assert.ErrorIs(t, err, dbErr)
	external.AssertCalled(t, "DeleteUser", mock.Anything, "ext-ref-1")
}

func TestCreateUser_RollbackFailureDoesNotMaskOriginal(t *testing.T) {
	users := new(mockUserRepo)
	external := new(mockExtAuth)
	svc := NewService(users, external)

	dbErr := errors.New("disk full")
	users.On("ExistsByHandle", mock.Anything, "+77051234455").Return(false, nil)
	external.On("CreateUser", mock.Anything, "+77051234455", "Marat Saduov").Return("ext-ref-1", nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(dbErr)
	external.On("DeleteUser", mock.Anything, "ext-ref-1").Return(errors.New("also down"))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		FullName:    "Marat Saduov",
		PhoneNumber: "+77051234455",
		Password:    "temp-pass1",
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestSetUserActive_SelfBlockForbidden(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockExtAuth))

	_, err := svc.SetUserActive(context.Background(), 5, 5, false)
	assert.ErrorIs(t, err, ErrSelfBlock)
	users.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetUserActive_Deactivate(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockExtAuth))

	users.On("UpdateFields", mock.Anything, int64(9), map[string]any{"active": false}).Return(nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9, Active: false, PasswordHash: "h"}, nil)

	user, err := svc.SetUserActive(context.Background(), 5, 9, false)
	require.NoError(t, err)
	assert.False(t, user.Active)
	assert.Empty(t, user.PasswordHash)
}

func TestSetUserActive_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockExtAuth))

	users.On("UpdateFields", mock.Anything, int64(99), map[string]any{"active": true}).Return(gorm.ErrRecordNotFound)

	_, err := svc.SetUserActive(context.Background(), 5, 99, true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_PublicProjection(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockExtAuth))

	users.On("List", mock.Anything).Return([]*domain.User{
		{ID: 1, FullName: "Marat Saduov", PasswordHash: "h1", ExternalAuthRef: "ext-1", Role: domain.RoleClient},
		{ID: 2, FullName: "Aru Bekova", PasswordHash: "h2", Role: domain.RoleAdmin},
	}, nil)

	public, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "Marat Saduov", public[0].FullName)
	assert.Equal(t, domain.RoleAdmin, public[1].Role)
}
