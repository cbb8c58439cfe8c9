package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Get("whatsapp:+919876543210")
	assert.False(t, ok)

	store.Set("whatsapp:+919876543210", LocaleHinglish)
	locale, ok := store.Get("whatsapp:+919876543210")
	require.True(t, ok)
	assert.Equal(t, LocaleHinglish, locale)

	// Set overwrites.
	store.Set("whatsapp:+919876543210", LocaleEnglish)
	locale, _ = store.Get("whatsapp:+919876543210")
	assert.Equal(t, LocaleEnglish, locale)

	store.Delete("whatsapp:+919876543210")
	_, ok = store.Get("whatsapp:+919876543210")
	assert.False(t, ok)
}

func TestSessionStoreDeleteAbsentIsNoOp(t *testing.T) {
	store := NewSessionStore()

	// Twice, both must be silent no-ops.
	store.Delete("whatsapp:+910000000000")
	store.Delete("whatsapp:+910000000000")

	assert.Equal(t, 0, store.Count())
}

func TestSessionStoreCount(t *testing.T) {
	store := NewSessionStore()
	store.Set("a", LocaleEnglish)
	store.Set("b", LocaleHinglish)
	store.Set("a", LocaleHinglish)
	assert.Equal(t, 2, store.Count())
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sender := fmt.Sprintf("whatsapp:+91%010d", n)
			store.Set(sender, LocaleEnglish)
			store.Get(sender)
			store.Delete(sender)
			store.Delete(sender)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, store.Count())
}
