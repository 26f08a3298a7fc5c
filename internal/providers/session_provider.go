package providers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"newsd/internal/structures"
)

type SessionProviderInterface interface {
	Create() string
	Valid(token string) bool
	Destroy(token string)
	Prune()
}

// SessionProvider keeps opaque session tokens in memory with a TTL. Tokens
// do not survive a restart, which forces a re-login and is acceptable for a
// single-admin tool.
type SessionProvider struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]time.Time
}

func NewSessionProvider(conf *structures.Config) SessionProviderInterface {
	return &SessionProvider{
		ttl:      conf.Auth.SessionTTL,
		sessions: make(map[string]time.Time),
	}
}

func (sp *SessionProvider) Create() string {
	token := uuid.NewString()
	sp.mu.Lock()
	sp.sessions[token] = time.Now().Add(sp.ttl)
	sp.mu.Unlock()
	return token
}

func (sp *SessionProvider) Valid(token string) bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	expiry, ok := sp.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(sp.sessions, token)
		return false
	}
	return true
}

func (sp *SessionProvider) Destroy(token string) {
	sp.mu.Lock()
	delete(sp.sessions, token)
	sp.mu.Unlock()
}

func (sp *SessionProvider) Prune() {
	now := time.Now()
	sp.mu.Lock()
	for token, expiry := range sp.sessions {
		if now.After(expiry) {
			delete(sp.sessions, token)
		}
	}
	sp.mu.Unlock()
}
