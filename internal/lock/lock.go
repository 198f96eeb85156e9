// Package lock сериализует операции над одним ключом (у нас — клиентом),
// чтобы снимок встреч, проверка и запись шли без вклинивания параллельных запросов.
package lock

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"
)

var ErrNotAcquired = errors.New("lock not acquired")

// Locker берёт эксклюзивную блокировку по ключу. unlock обязательно вызвать.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Expiring реализуют блокировки, которые снимаются сами по истечении TTL.
type Expiring interface {
	TTL() time.Duration
}

// Hold берёт блокировку и возвращает контекст для работы под ней.
// Для Expiring-блокировок контекст истекает раньше TTL: транзакция под блокировкой
// отменится до того, как блокировку сможет взять кто-то другой.
func Hold(ctx context.Context, l Locker, key string) (context.Context, func(), error) {
	unlock, err := l.Lock(ctx, key)
	if err != nil {
		return ctx, nil, err
	}
	e, ok := l.(Expiring)
	if !ok || e.TTL() <= 0 {
		return ctx, unlock, nil
	}
	ttl := e.TTL()
	held, cancel := context.WithTimeout(ctx, ttl-ttl/10)
	return held, func() {
		cancel()
		unlock()
	}, nil
}

// CustomerKey — ключ блокировки для клиента.
func CustomerKey(customerID int64) string {
	return "customer:" + strconv.FormatInt(customerID, 10)
}

// Local — блокировки внутри одного процесса.
type Local struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func NewLocal() *Local {
	return &Local{locks: make(map[string]*entry)}
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, e)
		return nil, errors.Join(ErrNotAcquired, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.release(key, e)
		})
	}, nil
}

func (l *Local) release(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// size — число ключей, по которым кто-то держит или ждёт блокировку.
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
