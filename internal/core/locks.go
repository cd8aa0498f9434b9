package core

import "sync"

// Locks holds one exclusive lock per action target.
type Locks struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocks() *Locks {
	return &Locks{held: make(map[string]struct{})}
}

func (l *Locks) TryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return false
	}
	l.held[key] = struct{}{}
	return true
}

func (l *Locks) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
}

func (l *Locks) Held(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[key]
	return ok
}
