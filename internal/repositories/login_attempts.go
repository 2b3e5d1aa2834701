package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/goodservices/internal/logger"
)

// LoginAttemptRepository counts failed logins per username in Redis.
type LoginAttemptRepository struct {
	client *redis.Client
	window time.Duration // how long a failure counter lives after its first failure
}

// NewLoginAttemptRepository creates a new repository instance
func NewLoginAttemptRepository(client *redis.Client, window time.Duration) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		client: client,
		window: window,
	}
}

func loginAttemptKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// Failures returns the current failure count of username.
func (r *LoginAttemptRepository) Failures(ctx context.Context, username string) (int64, error) {
	key := loginAttemptKey(username)

	count, err := r.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		err = nil
	}

	logger.FromContext(ctx).Infow(
		"redis",
		"key", key,
		"result", count,
		"error", err,
	)

	return count, err
}

// RegisterFailure increments the failure counter and starts its expiry window on the first failure.
func (r *LoginAttemptRepository) RegisterFailure(ctx context.Context, username string) (int64, error) {
	key := loginAttemptKey(username)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, r.window)
	_, err := pipe.Exec(ctx)

	count := incr.Val()
	logger.FromContext(ctx).Infow(
		"redis",
		"key", key,
		"result", count,
		"error", err,
	)

	return count, err
}

// Reset clears the failure counter after a successful login.
func (r *LoginAttemptRepository) Reset(ctx context.Context, username string) error {
	key := loginAttemptKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow(
		"redis",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
