package utils

import (
	"sync"
	"time"
)

// TokenBlacklist menyimpan token yang sudah logout sampai waktu kedaluwarsanya
type TokenBlacklist struct {
	tokens map[string]time.Time
	mu     sync.RWMutex
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{tokens: make(map[string]time.Time)}
}

func (b *TokenBlacklist) Add(token string, expiry time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token] = expiry
}

func (b *TokenBlacklist) Contains(token string) bool {
	b.mu.RLock()
	expiry, exists := b.tokens[token]
	b.mu.RUnlock()
	if !exists {
		return false
	}
	if time.Now().Before(expiry) {
		return true
	}

	// token kadaluarsa tidak perlu disimpan lagi
	b.mu.Lock()
	delete(b.tokens, token)
	b.mu.Unlock()
	return false
}

// Cleanup removes expired entries and returns how many were dropped.
func (b *TokenBlacklist) Cleanup() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	now := time.Now()
	for token, expiry := range b.tokens {
		if now.After(expiry) {
			delete(b.tokens, token)
			removed++
		}
	}
	return removed
}
