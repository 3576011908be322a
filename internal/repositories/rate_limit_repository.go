package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

const sessionStartKeyPrefix = "session_starts"

type RateLimitRepository interface {
	// AllowSessionStart reports whether client may start another session,
	// and if not, how long until the oldest start leaves the window.
	AllowSessionStart(ctx context.Context, client string) (bool, time.Duration, error)
}

type rateLimitRepository struct {
	client *redis.Client
	cfg    config.RateLimit
	now    func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateLimit) RateLimitRepository {
	return &rateLimitRepository{client: client, cfg: cfg, now: time.Now}
}

// Session starts are kept in a sorted set per client, scored by start time in
// milliseconds:
//
//	session_starts:10.0.0.7
//	| score (ms)    | member (ns)         |
//	| 1700000000000 | 1700000000000000000 |
//	| 1700000020000 | 1700000020000000000 |
func (r *rateLimitRepository) AllowSessionStart(ctx context.Context, client string) (bool, time.Duration, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := fmt.Sprintf("%s:%s", sessionStartKeyPrefix, client)

	now := r.now()
	nowMs := now.UnixMilli()

	// only starts after this point are counted
	windowStart := nowMs - r.cfg.WindowSize.Milliseconds()

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	starts := count.Val()

	if starts <= int64(r.cfg.MaxNewSessions) {
		logger.Debug("Rate limit check passed", slog.String("client", client), slog.Int64("starts", starts))
		return true, 0, nil
	}

	scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
	if err != nil || len(scores) == 0 {
		logger.Error("Failed to get oldest session start for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, r.cfg.WindowSize, fmt.Errorf("failed to get oldest session start: %w", err)
	}

	oldest := int64(scores[0].Score)
	retryAfter := time.Duration(max(oldest+r.cfg.WindowSize.Milliseconds()-nowMs, 0)) * time.Millisecond

	logger.Warn("Session start rate limit exceeded", slog.String("client", client), slog.Int64("starts", starts))

	return false, retryAfter, nil
}
