package users

import (
	"context"

	"pms/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListByRole(ctx context.Context, role Role) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT user_id, name, role, manager_id
    FROM users
    WHERE role = $1
    ORDER BY name
  `, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.ManagerID); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) Get(ctx context.Context, userID int64) (User, error) {
	var user User
	if err := s.DB.QueryRow(ctx, `
    SELECT user_id, name, role, manager_id
    FROM users
    WHERE user_id = $1
  `, userID).Scan(&user.ID, &user.Name, &user.Role, &user.ManagerID); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Store) Create(ctx context.Context, name string, role Role, managerID *int64) (int64, error) {
	var id int64
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO users (name, role, manager_id)
    VALUES ($1,$2,$3)
    RETURNING user_id
  `, name, string(role), managerID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes the user; goals, tasks and feedback go with it through ON DELETE CASCADE.
func (s *Store) Delete(ctx context.Context, userID int64) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE user_id = $1", userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
