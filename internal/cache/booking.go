package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/EricoBruner/drivent-back-fourth-sprint/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "booking:user:"

var errStale = errors.New("booking cache entry is stale")

// BookingCache keeps the booking-by-user view in redis. A nil client
// turns every call into a miss or a no-op.
type BookingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewBookingCache(client *redis.Client, ttl time.Duration, logger logger.Logger) *BookingCache {
	return &BookingCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *BookingCache) Get(ctx context.Context, userID int) (*domain.BookingWithRoom, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("booking cache get failed",
				logger.Int("user_id", userID),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var b domain.BookingWithRoom
	if err = json.Unmarshal(raw, &b); err != nil {
		c.logger.Warn("booking cache entry is corrupted",
			logger.Int("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return &b, true
}

// Generation reads the invalidation counter of userID; 0 when unset.
func (c *BookingCache) Generation(ctx context.Context, userID int) int64 {
	if c.client == nil {
		return 0
	}

	gen, err := c.client.Get(ctx, genKey(userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Warn("booking cache generation read failed",
			logger.Int("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
	return gen
}

// Set writes b unless userID was invalidated after gen was read.
func (c *BookingCache) Set(ctx context.Context, userID int, gen int64, b *domain.BookingWithRoom) {
	if c.client == nil || b == nil {
		return
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey(userID)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(userID), raw, c.ttl)
			return nil
		})
		return err
	}, genKey(userID))

	if err == nil || errors.Is(err, errStale) || errors.Is(err, redis.TxFailedErr) {
		return
	}
	c.logger.Warn("booking cache set failed",
		logger.Int("user_id", userID),
		logger.String("error", err.Error()),
	)
}

func (c *BookingCache) Invalidate(ctx context.Context, userID int) {
	if c.client == nil {
		return
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(userID))
		pipe.Del(ctx, key(userID))
		return nil
	})
	if err != nil {
		c.logger.Warn("booking cache invalidate failed",
			logger.Int("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
}

func key(userID int) string {
	return keyPrefix + strconv.Itoa(userID)
}

func genKey(userID int) string {
	return key(userID) + ":gen"
}
