package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var _ Checker = (*LoginChecker)(nil)

// Checker resolves a session token to the logged in user.
type Checker interface {
	LoggedUserID(ctx context.Context, token string) (uuid.UUID, error)
}

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// LoggedUserID returns the user id bound to the given session token, or
// ErrNotLoggedIn for unknown and expired tokens.
func (lc *LoginChecker) LoggedUserID(ctx context.Context, token string) (uuid.UUID, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return uuid.Nil, ErrNotLoggedIn
		}
		return uuid.Nil, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return uuid.Nil, err
	}

	if time.Since(createdAt) > lc.ttl {
		return uuid.Nil, ErrNotLoggedIn
	}

	return userID, nil
}
