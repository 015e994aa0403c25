package memory

import (
	"context"
	"socialelections/internal/database/store"
	"sync"
)

type scopeSlot struct {
	ch      chan struct{}
	waiters int
}

// Locker 是單一 process 內的 (unit, category) 互斥鎖，支援 ctx 取消等待
type Locker struct {
	mu    sync.Mutex
	slots map[store.Scope]*scopeSlot
}

func NewLocker() *Locker {
	return &Locker{slots: make(map[store.Scope]*scopeSlot)}
}

func (l *Locker) Lock(ctx context.Context, scope store.Scope) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[scope]
	if !ok {
		slot = &scopeSlot{ch: make(chan struct{}, 1)}
		l.slots[scope] = slot
	}
	slot.waiters++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(scope, slot, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(scope, slot, true) })
	}, nil
}

func (l *Locker) release(scope store.Scope, slot *scopeSlot, held bool) {
	if held {
		<-slot.ch
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.waiters--
	if slot.waiters == 0 {
		delete(l.slots, scope)
	}
}
