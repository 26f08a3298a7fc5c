package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsd/internal/structures"
)

func sessionConf(ttl time.Duration) *structures.Config {
	return &structures.Config{
		Auth: structures.AuthConfig{SessionTTL: ttl},
	}
}

func TestSessionProvider_CreateAndValidate(t *testing.T) {
	sp := NewSessionProvider(sessionConf(time.Hour))

	token := sp.Create()
	require.NotEmpty(t, token)
	assert.True(t, sp.Valid(token))
}

func TestSessionProvider_UnknownTokenInvalid(t *testing.T) {
	sp := NewSessionProvider(sessionConf(time.Hour))
	assert.False(t, sp.Valid("made-up"))
	assert.False(t, sp.Valid(""))
}

func TestSessionProvider_TokensAreUnique(t *testing.T) {
	sp := NewSessionProvider(sessionConf(time.Hour))
	assert.NotEqual(t, sp.Create(), sp.Create())
}

func TestSessionProvider_DestroyInvalidates(t *testing.T) {
	sp := NewSessionProvider(sessionConf(time.Hour))

	token := sp.Create()
	sp.Destroy(token)
	assert.False(t, sp.Valid(token))
}

func TestSessionProvider_ExpiryInvalidates(t *testing.T) {
	sp := NewSessionProvider(sessionConf(time.Millisecond))

	token := sp.Create()
	time.Sleep(5 * time.Millisecond)
	assert.False(t, sp.Valid(token))
}

func TestSessionProvider_PruneDropsExpiredOnly(t *testing.T) {
	provider := NewSessionProvider(sessionConf(time.Millisecond)).(*SessionProvider)

	expired := provider.Create()
	time.Sleep(5 * time.Millisecond)

	provider.ttl = time.Hour
	live := provider.Create()

	provider.Prune()

	provider.mu.Lock()
	_, expiredKept := provider.sessions[expired]
	_, liveKept := provider.sessions[live]
	provider.mu.Unlock()

	assert.False(t, expiredKept)
	assert.True(t, liveKept)
}

func TestSessionProvider_ConcurrentAccess(t *testing.T) {
	sp := NewSessionProvider(sessionConf(time.Hour))

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			token := sp.Create()
			assert.True(t, sp.Valid(token))
			sp.Destroy(token)
			sp.Prune()
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
