package users_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms/internal/domain/users"
	"pms/internal/domain/users/mock_users"
	"pms/internal/platform/querier"
)

func setupService(t *testing.T) (*users.Service, *mock_users.MockStoreAPI) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	store := mock_users.NewMockStoreAPI(ctrl)
	return users.NewService(store), store
}

func TestListByRole_Success(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().ListByRole(gomock.Any(), users.RoleEmployee).Return([]users.User{{ID: 2, Name: "Ben", Role: users.RoleEmployee}}, nil)

	list, err := svc.ListByRole(context.Background(), users.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ben", list[0].Name)
}

func TestListByRole_EmptyIsNotError(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().ListByRole(gomock.Any(), users.RoleManager).Return(nil, nil)

	list, err := svc.ListByRole(context.Background(), users.RoleManager)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListByRole_InvalidRole(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.ListByRole(context.Background(), "Admin")
	assert.ErrorIs(t, err, users.ErrInvalidRole)
}

func TestListByRole_Unavailable(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().ListByRole(gomock.Any(), users.RoleManager).Return(nil, context.DeadlineExceeded)

	_, err := svc.ListByRole(context.Background(), users.RoleManager)
	assert.ErrorIs(t, err, querier.ErrUnavailable)
}

func TestGet_NotFound(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().Get(gomock.Any(), int64(9)).Return(users.User{}, pgx.ErrNoRows)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestGetWithRole_Mismatch(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().Get(gomock.Any(), int64(2)).Return(users.User{ID: 2, Role: users.RoleEmployee}, nil)

	_, err := svc.GetWithRole(context.Background(), 2, users.RoleManager)
	assert.ErrorIs(t, err, users.ErrInvalidRole)
}

func TestCreate(t *testing.T) {
	svc, store := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "  ", users.RoleManager, nil)
	assert.ErrorIs(t, err, users.ErrEmptyName)

	_, err = svc.Create(ctx, "Ada", "Boss", nil)
	assert.ErrorIs(t, err, users.ErrInvalidRole)

	managerID := int64(77)
	store.EXPECT().Create(ctx, "Ben", users.RoleEmployee, &managerID).Return(int64(0), &pgconn.PgError{Code: "23503"})
	_, err = svc.Create(ctx, " Ben ", users.RoleEmployee, &managerID)
	assert.ErrorIs(t, err, users.ErrManagerMissing)

	store.EXPECT().Create(ctx, "Ada", users.RoleManager, (*int64)(nil)).Return(int64(1), nil)
	id, err := svc.Create(ctx, "Ada", users.RoleManager, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestDelete(t *testing.T) {
	svc, store := setupService(t)

	store.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
	require.NoError(t, svc.Delete(context.Background(), 1))

	store.EXPECT().Delete(gomock.Any(), int64(2)).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), users.ErrNotFound)

	store.EXPECT().Delete(gomock.Any(), int64(3)).Return(false, errors.New("boom"))
	assert.Error(t, svc.Delete(context.Background(), 3))
}

func TestParseRole(t *testing.T) {
	role, err := users.ParseRole("Manager")
	require.NoError(t, err)
	assert.Equal(t, users.RoleManager, role)

	_, err = users.ParseRole("manager")
	assert.ErrorIs(t, err, users.ErrInvalidRole)
}
