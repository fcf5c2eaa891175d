package kagome

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_LoadsOnFirstTokenize(t *testing.T) {
	calls := 0
	lazy := &Lazy{load: func() (*Tokenizer, error) {
		calls++
		return New()
	}}
	assert.Equal(t, 0, calls)

	tokens, err := lazy.Tokenize("猫")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "ねこ", tokens[0].Reading)

	_, err = lazy.Tokenize("犬")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLazy_LoadFailureDisablesHints(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	lazy := &Lazy{load: func() (*Tokenizer, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return nil, errors.New("dictionary missing")
	}}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens, err := lazy.Tokenize("猫")
			assert.NoError(t, err)
			assert.Empty(t, tokens)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestNewLazy_UsesIPADictionary(t *testing.T) {
	tokens, err := NewLazy().Tokenize("食べた")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, "食べる", tokens[0].BaseForm)
}
