package session

import (
	"context"
	"time"

	"pms/internal/domain/users"
)

type UserLookup interface {
	GetWithRole(ctx context.Context, userID int64, role users.Role) (users.User, error)
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Session   Session   `json:"session"`
}

type Service struct {
	users  UserLookup
	secret string
	ttl    time.Duration
}

func NewService(lookup UserLookup, secret string, ttl time.Duration) *Service {
	return &Service{users: lookup, secret: secret, ttl: ttl}
}

// Start opens a session for the selected user. The role is taken on trust;
// the user only has to exist and hold it.
func (s *Service) Start(ctx context.Context, role users.Role, userID int64) (Token, error) {
	if !role.Valid() {
		return Token{}, users.ErrInvalidRole
	}
	user, err := s.users.GetWithRole(ctx, userID, role)
	if err != nil {
		return Token{}, err
	}
	current := Session{Role: user.Role, UserID: user.ID, UserName: user.Name}
	token, expires, err := GenerateToken(s.secret, current, s.ttl)
	if err != nil {
		return Token{}, err
	}
	return Token{Token: token, ExpiresAt: expires, Session: current}, nil
}

func (s *Service) Parse(token string) (Session, error) {
	return ParseToken(s.secret, token)
}
