package auth

import (
	"context"

	"github.com/google/uuid"
)

var _ Checker = (*LoginTestChecker)(nil)

// LoginTestChecker is a Checker for tests: a plain map from session
// token to user id.
type LoginTestChecker struct {
	LoggedSessions map[string]uuid.UUID
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]uuid.UUID{},
	}
}

func (c *LoginTestChecker) LoggedUserID(_ context.Context, token string) (uuid.UUID, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return uuid.Nil, ErrNotLoggedIn
	}
	return userID, nil
}
