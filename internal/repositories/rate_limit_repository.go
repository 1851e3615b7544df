package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter int
}

type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, email string) (RateLimitResult, error)
	ResetLoginAttempts(ctx context.Context, email string) error
}

type redisRateLimiter struct {
	client redis.Cmdable
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

func NewRateLimitRepo(client redis.Cmdable, cfg config.RateConfig) RateLimitRepository {
	return &redisRateLimiter{client: client, cfg: cfg, now: time.Now}
}

// NewRateLimitRepoWithClock pins the clock so the sorted-set members are predictable.
func NewRateLimitRepoWithClock(client redis.Cmdable, cfg config.RateConfig, now func() time.Time) RateLimitRepository {
	return &redisRateLimiter{client: client, cfg: cfg, now: now}
}

func loginAttemptsKey(email string) string {
	return "storefront:login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

// CheckLoginRateLimit records one attempt in a sliding window (sorted set scored by unix seconds)
// and reports whether it is within the allowance.
func (r *redisRateLimiter) CheckLoginRateLimit(ctx context.Context, email string) (RateLimitResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(email)
	now := r.now()
	window := int64(r.cfg.WindowSize.Seconds())
	windowStart := now.Unix() - window

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.Unix()), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return RateLimitResult{}, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return RateLimitResult{RetryAfter: int(window)}, fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		retryAfter := max(int64(scores[0].Score)+window-now.Unix(), 0)

		logger.Warn("Login rate limit exceeded", slog.Int64("attempts", attempts))

		return RateLimitResult{Allowed: false, RetryAfter: int(retryAfter)}, nil
	}

	return RateLimitResult{Allowed: true, Remaining: int(r.cfg.MaxAttempts - attempts)}, nil
}

func (r *redisRateLimiter) ResetLoginAttempts(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, loginAttemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("resetting login attempts: %w", err)
	}

	return nil
}
