package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	principalID uint
	expiresAt   time.Time
}

// MemoryStore 进程内会话存储，用于单机部署和测试。
// 过期条目在读取时按需剔除，Sweep负责批量清理。
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore 创建内存会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Put 写入会话
func (s *MemoryStore) Put(_ context.Context, key string, principalID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		principalID: principalID,
		expiresAt:   time.Now().Add(ttl),
	}
	return nil
}

// Get 查询会话，过期条目视为不存在
func (s *MemoryStore) Get(_ context.Context, key string) (uint, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return 0, false, nil
	}
	return entry.principalID, true, nil
}

// Del 删除会话，幂等
func (s *MemoryStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Sweep 清理已过期的会话，返回清理数量
func (s *MemoryStore) Sweep() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len 当前会话数量
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
