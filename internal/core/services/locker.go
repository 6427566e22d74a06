package services

import (
	"sync"

	"github.com/google/uuid"
)

// aggregateLocker serializes read-modify-write cycles per aggregate id, so two
// near-simultaneous votes on the same squad or poll cannot lose an update.
type aggregateLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newAggregateLocker() *aggregateLocker {
	return &aggregateLocker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// lock acquires the mutex for id and returns the matching unlock.
func (l *aggregateLocker) lock(id uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
