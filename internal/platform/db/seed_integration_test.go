package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms/internal/domain/users"
	"pms/internal/platform/db"
	"pms/internal/platform/testutil"
)

func TestIntegration_SeedIsIdempotent(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()

	inserted, err := db.Seed(ctx, pool)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = db.Seed(ctx, pool)
	require.NoError(t, err)
	assert.False(t, inserted)

	svc := users.NewService(users.NewStore(pool))
	managers, err := svc.ListByRole(ctx, users.RoleManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)

	employees, err := svc.ListByRole(ctx, users.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	for _, employee := range employees {
		require.NotNil(t, employee.ManagerID)
		assert.Equal(t, managers[0].ID, *employee.ManagerID)
	}
}

func TestIntegration_MigrateTwice(t *testing.T) {
	pool := testutil.NewPool(t)
	require.NoError(t, db.Migrate(context.Background(), pool))
}
