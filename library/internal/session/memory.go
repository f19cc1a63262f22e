package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Loads are lock-free, so it only suits a
// single replica; use RedisStore when handlers are replicated.
type MemoryStore struct {
	entries   sync.Map // token -> memoryEntry
	now       func() time.Time
	lastSweep atomic.Int64 // unix nanos
}

// sweepEvery bounds how often Set scans for sessions that expired without being read.
const sweepEvery = 5 * time.Minute

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Set(_ context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	now := s.now()
	s.entries.Store(token, memoryEntry{userID: userID, expiresAt: now.Add(ttl)})

	last := s.lastSweep.Load()
	if now.UnixNano()-last >= int64(sweepEvery) && s.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		s.Sweep()
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (uuid.UUID, error) {
	v, ok := s.entries.Load(token)
	if !ok {
		return uuid.Nil, ErrNoSession
	}
	e := v.(memoryEntry)
	if !s.now().Before(e.expiresAt) {
		s.entries.CompareAndDelete(token, e)
		return uuid.Nil, ErrNoSession
	}
	return e.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.entries.Delete(token)
	return nil
}

// Sweep drops expired sessions that were never read again and reports how many.
func (s *MemoryStore) Sweep() int {
	now := s.now()
	var n int
	s.entries.Range(func(k, v any) bool {
		if e := v.(memoryEntry); !now.Before(e.expiresAt) && s.entries.CompareAndDelete(k, e) {
			n++
		}
		return true
	})
	return n
}
