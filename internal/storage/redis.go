package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTimeout = 2 * time.Second

// raiseScript sets KEYS[1] to ARGV[1] only when it is larger than the current value.
var raiseScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local score = tonumber(ARGV[1])
if score > cur then
  redis.call('SET', KEYS[1], ARGV[1])
  return 1
end
return 0
`)

// RedisBest keeps a best score shared by every player of a server in Redis.
type RedisBest struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// OpenRedis connects to addr and verifies the connection with PING.
func OpenRedis(ctx context.Context, addr, key string) (*RedisBest, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, defaultRedisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot reach redis at %s: %w", addr, err)
	}

	return NewRedisBest(client, key), nil
}

// NewRedisBest wraps an existing client.
func NewRedisBest(client *redis.Client, key string) *RedisBest {
	return &RedisBest{client: client, key: key, timeout: defaultRedisTimeout}
}

// BestScore returns the shared best score, or 0 if the key is unset.
func (r *RedisBest) BestScore() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	v, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read redis best score: %w", err)
	}

	best, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("storage: bad redis best score %q: %w", v, err)
	}
	return best, nil
}

// SaveBestScore raises the shared best score to score if it is higher.
func (r *RedisBest) SaveBestScore(score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := raiseScript.Run(ctx, r.client, []string{r.key}, score).Err(); err != nil {
		return fmt.Errorf("storage: cannot save redis best score: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (r *RedisBest) Close() error {
	return r.client.Close()
}

// BestScorer is implemented by every best score backend.
type BestScorer interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
}

// Tiered combines several best score backends. Reads return the highest value
// any backend reports; writes go to all of them.
type Tiered []BestScorer

// BestScore returns the maximum over all backends. Backends that fail are
// skipped unless every backend fails.
func (t Tiered) BestScore() (int, error) {
	best := 0
	var errs []error
	for _, b := range t {
		v, err := b.BestScore()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		best = max(best, v)
	}
	if len(t) > 0 && len(errs) == len(t) {
		return 0, errors.Join(errs...)
	}
	return best, nil
}

// SaveBestScore writes score to every backend and joins their errors.
func (t Tiered) SaveBestScore(score int) error {
	var errs []error
	for _, b := range t {
		if err := b.SaveBestScore(score); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
