package identity

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentReturnsStableID(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	manager := NewManagerWithClock(NewMemoryStore(), func() time.Time { return now })

	first := manager.Current()
	require.NotEmpty(t, first)

	second := manager.Current()
	assert.Equal(t, first, second)
}

func TestCurrentMintsNewIDAfterExpiration(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	manager := NewManagerWithClock(NewMemoryStore(), func() time.Time { return now })

	first := manager.Current()
	require.NotEmpty(t, first)

	// 31 minutos de inatividade: sessão nova
	now = now.Add(31 * time.Minute)
	second := manager.Current()
	assert.NotEqual(t, first, second)
}

func TestSlidingWindowExtendsOnEveryRead(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	manager := NewManagerWithClock(NewMemoryStore(), func() time.Time { return now })

	first := manager.Current()
	require.NotEmpty(t, first)

	// Leituras espaçadas de 29 minutos, indefinidamente: o identificador
	// nunca expira porque cada leitura reinicia o relógio.
	for i := 0; i < 5; i++ {
		now = now.Add(29 * time.Minute)
		assert.Equal(t, first, manager.Current(), "leitura %d", i+1)
	}
}

func TestCurrentSlidesExpirationInStore(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	manager := NewManagerWithClock(store, func() time.Time { return now })

	manager.Current()
	firstExp, ok := store.Get(ExpirationKey)
	require.True(t, ok)

	now = now.Add(10 * time.Minute)
	manager.Current()
	secondExp, _ := store.Get(ExpirationKey)

	firstMillis, err := strconv.ParseInt(firstExp, 10, 64)
	require.NoError(t, err)
	secondMillis, err := strconv.ParseInt(secondExp, 10, 64)
	require.NoError(t, err)

	assert.Equal(t, int64(10*time.Minute/time.Millisecond), secondMillis-firstMillis)
}

func TestCurrentMintsWhenExpirationUnreadable(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.Set(SessionKey, "sessao-antiga")
	store.Set(ExpirationKey, "nao-e-numero")

	manager := NewManagerWithClock(store, func() time.Time { return now })
	assert.NotEqual(t, "sessao-antiga", manager.Current())
}

func TestCurrentWithoutStoreReturnsEmpty(t *testing.T) {
	manager := NewManager(nil)
	assert.Empty(t, manager.Current())
}

func TestResetClearsIdentity(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	manager := NewManagerWithClock(store, func() time.Time { return now })

	first := manager.Current()
	manager.Reset()

	_, ok := store.Get(SessionKey)
	assert.False(t, ok)
	_, ok = store.Get(ExpirationKey)
	assert.False(t, ok)

	assert.NotEqual(t, first, manager.Current())
}
