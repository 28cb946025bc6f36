package users

import (
	"context"
	"fmt"
	"strings"

	"pms/internal/platform/querier"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// ListByRole returns the users holding role ordered by name. No matches is an
// empty slice, never an error.
func (s *Service) ListByRole(ctx context.Context, role Role) ([]User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	list, err := s.store.ListByRole(ctx, role)
	if err != nil {
		return nil, translate("list users", err)
	}
	if list == nil {
		list = []User{}
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (User, error) {
	user, err := s.store.Get(ctx, userID)
	if err != nil {
		return User{}, translate("get user", err)
	}
	return user, nil
}

// GetWithRole loads the user and checks it holds role.
func (s *Service) GetWithRole(ctx context.Context, userID int64, role Role) (User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if user.Role != role {
		return User{}, fmt.Errorf("user %d is %s: %w", userID, user.Role, ErrInvalidRole)
	}
	return user, nil
}

func (s *Service) Create(ctx context.Context, name string, role Role, managerID *int64) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if !role.Valid() {
		return 0, ErrInvalidRole
	}
	id, err := s.store.Create(ctx, name, role, managerID)
	if err != nil {
		if querier.IsForeignKeyViolation(err) {
			return 0, ErrManagerMissing
		}
		return 0, translate("create user", err)
	}
	return id, nil
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	deleted, err := s.store.Delete(ctx, userID)
	if err != nil {
		return translate("delete user", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, translate("count users", err)
	}
	return count, nil
}

func translate(op string, err error) error {
	switch {
	case querier.IsNoRows(err):
		return ErrNotFound
	case querier.IsCheckViolation(err):
		return ErrInvalidRole
	case querier.IsUnavailable(err):
		return fmt.Errorf("%s: %w: %w", op, querier.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
