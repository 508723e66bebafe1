package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultMaxItems bounds a MemoryStore created with a non-positive size.
const DefaultMaxItems = 10000

type memEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local Store with per-entry expiry and a hard size bound.
// When a write exceeds the bound, the least recently used entry is dropped.
// Expired entries are dropped when read.
type MemoryStore struct {
	maxItems int
	now      func() time.Time

	mu    sync.Mutex
	order *list.List // front = most recently used
	items map[string]*list.Element
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore holding at most maxItems entries.
func NewMemoryStore(maxItems int) *MemoryStore {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &MemoryStore{
		maxItems: maxItems,
		now:      time.Now,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Get returns the value stored under key or ErrMiss.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		return nil, ErrMiss
	}
	e := el.Value.(*memEntry)
	if !s.now().Before(e.expiresAt) {
		s.remove(el)
		return nil, ErrMiss
	}
	s.order.MoveToFront(el)
	return e.value, nil
}

// Set stores value under key for ttl. A non-positive ttl is a no-op.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.now().Add(ttl)
	if el, ok := s.items[key]; ok {
		e := el.Value.(*memEntry)
		e.value, e.expiresAt = value, expiresAt
		s.order.MoveToFront(el)
		return nil
	}

	s.items[key] = s.order.PushFront(&memEntry{key: key, value: value, expiresAt: expiresAt})
	for len(s.items) > s.maxItems {
		// 書き込んだばかりの要素は先頭にあるので、末尾から削除すれば消えない
		s.remove(s.order.Back())
	}
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	if el, ok := s.items[key]; ok {
		s.remove(el)
	}
	s.mu.Unlock()
	return nil
}

// DeleteByPrefix removes every key starting with prefix.
func (s *MemoryStore) DeleteByPrefix(_ context.Context, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k, el := range s.items {
		if strings.HasPrefix(k, prefix) {
			s.remove(el)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// remove must be called with mu held.
func (s *MemoryStore) remove(el *list.Element) {
	s.order.Remove(el)
	delete(s.items, el.Value.(*memEntry).key)
}
