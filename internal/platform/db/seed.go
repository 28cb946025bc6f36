package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"pms/internal/domain/users"
)

const seedLockKey = 7301

type seedUser struct {
	name string
	role users.Role
}

var (
	seedManager   = seedUser{name: "Alice Manager", role: users.RoleManager}
	seedEmployees = []seedUser{
		{name: "Bob Employee", role: users.RoleEmployee},
		{name: "Carol Employee", role: users.RoleEmployee},
	}
)

// Seed inserts a demo manager and two reports when the users table is empty.
// It reports whether anything was inserted.
func Seed(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", seedLockKey); err != nil {
		return false, err
	}

	store := users.NewStore(tx)
	count, err := store.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	managerID, err := store.Create(ctx, seedManager.name, seedManager.role, nil)
	if err != nil {
		return false, fmt.Errorf("seed %s: %w", seedManager.name, err)
	}
	for _, employee := range seedEmployees {
		if _, err := store.Create(ctx, employee.name, employee.role, &managerID); err != nil {
			return false, fmt.Errorf("seed %s: %w", employee.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	slog.Info("seeded demo users", "manager", seedManager.name, "employees", len(seedEmployees))
	return true, nil
}
