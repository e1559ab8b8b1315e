package repository

import "sync"

// TokenRepository holds the OAuth2 session token obtained from the
// provider. The token lives in memory only; restarting the process
// forces re-authorization.
type TokenRepository interface {
	Get() string
	Set(token string)
}

type inMemoryTokenRepository struct {
	mu    sync.RWMutex
	token string
}

func NewTokenRepository() TokenRepository {
	return &inMemoryTokenRepository{}
}

func (r *inMemoryTokenRepository) Get() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

// Set overwrites any previously stored token. Last write wins.
func (r *inMemoryTokenRepository) Set(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
}
