package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
	assert.NoError(t, store.Save())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("storage.backend", "memory"))
	require.NoError(t, store.Set("storage.backend", "sqlite"))

	val, ok := store.Get("storage.backend")
	assert.True(t, ok)
	assert.Equal(t, "sqlite", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("lookup.max_length", 12)
	_ = store.Set("lookup.cache_size", int64(64))
	_ = store.Set("deinflect.strict_chaining", true)
	_ = store.Set("import.processors", []any{"drop_forms", 3, "drop_empty"})

	assert.Equal(t, 12, store.GetInt("lookup.max_length"))
	assert.Equal(t, 64, store.GetInt("lookup.cache_size"))
	assert.True(t, store.GetBool("deinflect.strict_chaining"))
	assert.Equal(t, []string{"drop_forms", "drop_empty"}, store.GetStringSlice("import.processors"))
	assert.Equal(t, "", store.GetString("lookup.max_length"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("lookup.max_length", i)
		}()
		go func() {
			defer wg.Done()
			_ = store.GetInt("lookup.max_length")
		}()
	}
	wg.Wait()

	_, ok := store.Get("lookup.max_length")
	assert.True(t, ok)
}
