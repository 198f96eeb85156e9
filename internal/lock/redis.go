package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Снимаем только свою блокировку: значение ключа — токен владельца.
var redisUnlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis — распределённая блокировка через SET NX PX.
// TTL страхует от зависших блокировок упавшего процесса и не продлевается:
// работу под блокировкой ограничивает lock.Hold.
type Redis struct {
	rdb        redis.UniversalClient
	prefix     string
	ttl        time.Duration
	retryEvery time.Duration
	log        *zap.Logger
}

func NewRedis(rdb redis.UniversalClient, prefix string, ttl time.Duration, log *zap.Logger) *Redis {
	if prefix == "" {
		prefix = "lock"
	}
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl, retryEvery: 25 * time.Millisecond, log: log.Named("lock")}
}

func (r *Redis) TTL() time.Duration { return r.ttl }

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	full := r.prefix + ":" + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryEvery)
	defer ticker.Stop()

	for {
		ok, err := r.rdb.SetNX(ctx, full, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock %s: %w", full, err)
		}
		if ok {
			return func() {
				// Контекст запроса к этому моменту может быть уже отменён.
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				released, err := redisUnlockScript.Run(ctx, r.rdb, []string{full}, token).Int()
				switch {
				case err != nil:
					r.log.Warn("redis unlock failed", zap.String("key", full), zap.Error(err))
				case released == 0:
					// Ключ истёк или уже принадлежит другому владельцу.
					r.log.Warn("redis lock expired before unlock",
						zap.String("key", full),
						zap.Duration("ttl", r.ttl),
					)
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotAcquired, ctx.Err())
		case <-ticker.C:
		}
	}
}

// ReadyCheck пингует Redis; используется в /readyz.
func ReadyCheck(rdb redis.UniversalClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
