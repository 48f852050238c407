package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreBeginAndFrequency(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	_, ok := store.Frequency(1)
	assert.False(t, ok)

	store.Begin(1, "daily")
	frequency, ok := store.Frequency(1)
	assert.True(t, ok)
	assert.Equal(t, "daily", frequency)
}

func TestStoreBeginReplacesPendingPick(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	store.Begin(1, "daily")
	store.Begin(1, "weekly")

	frequency, ok := store.Frequency(1)
	assert.True(t, ok)
	assert.Equal(t, "weekly", frequency)
}

func TestStoreIsolatesUsers(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	store.Begin(1, "daily")
	store.Begin(2, "weekly")

	frequency, ok := store.Frequency(1)
	assert.True(t, ok)
	assert.Equal(t, "daily", frequency)

	store.Clear(1)
	_, ok = store.Frequency(1)
	assert.False(t, ok)

	// User 2's setup is untouched.
	frequency, ok = store.Frequency(2)
	assert.True(t, ok)
	assert.Equal(t, "weekly", frequency)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := NewStore(time.Minute)
	defer store.Close()

	store.Clear(42)
	store.Begin(42, "daily")
	store.Clear(42)
	store.Clear(42)

	_, ok := store.Frequency(42)
	assert.False(t, ok)
}

func TestStoreEntriesExpire(t *testing.T) {
	store := NewStore(30 * time.Millisecond)
	defer store.Close()

	store.Begin(1, "daily")
	time.Sleep(60 * time.Millisecond)

	_, ok := store.Frequency(1)
	assert.False(t, ok)
}

func TestStoreJanitorSweepsExpired(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	defer store.Close()

	store.Begin(1, "daily")
	store.Begin(2, "weekly")

	// Give the janitor a few ticks; expired entries go away without any
	// reads touching them.
	time.Sleep(120 * time.Millisecond)

	store.mu.Lock()
	remaining := len(store.entries)
	store.mu.Unlock()
	assert.Zero(t, remaining)
}
