package users

import "context"

//go:generate mockgen -destination=mock_users/mock_store.go -package=mock_users pms/internal/domain/users StoreAPI

type StoreAPI interface {
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Get(ctx context.Context, userID int64) (User, error)
	Create(ctx context.Context, name string, role Role, managerID *int64) (int64, error)
	Delete(ctx context.Context, userID int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
