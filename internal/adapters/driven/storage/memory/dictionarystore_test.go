package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

func seededStore(t *testing.T, entries ...domain.DictionaryEntry) *DictionaryStore {
	t.Helper()
	ctx := context.Background()
	store := NewDictionaryStore()
	require.NoError(t, store.SaveDictionary(ctx, domain.Dictionary{ID: "jmdict", Title: "JMdict"}))
	require.NoError(t, store.SaveEntries(ctx, "jmdict", entries))
	return store
}

func TestDictionaryStore_LookupByTerm(t *testing.T) {
	store := seededStore(t,
		domain.DictionaryEntry{Term: "食べる", Reading: "たべる", Rules: "v1", Score: 100, Sequence: 1001},
		domain.DictionaryEntry{Term: "見る", Reading: "みる", Rules: "v1", Score: 90, Sequence: 1002},
	)

	result, err := store.LookupByTermOrReading(context.Background(), "食べる")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(1001), result[0].Sequence)
	assert.Equal(t, "jmdict", result[0].DictionaryID)
}

func TestDictionaryStore_LookupByReading(t *testing.T) {
	store := seededStore(t,
		domain.DictionaryEntry{Term: "橋", Reading: "はし", Score: 10, Sequence: 1},
		domain.DictionaryEntry{Term: "箸", Reading: "はし", Score: 30, Sequence: 2},
		domain.DictionaryEntry{Term: "はし", Reading: "はし", Score: 20, Sequence: 3},
	)

	result, err := store.LookupByTermOrReading(context.Background(), "はし")

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{result[0].Sequence, result[1].Sequence, result[2].Sequence})
}

func TestDictionaryStore_LookupDeduplicatesSequence(t *testing.T) {
	store := seededStore(t,
		domain.DictionaryEntry{Term: "日本", Reading: "にほん", Score: 50, Sequence: 7},
		domain.DictionaryEntry{Term: "日本", Reading: "にっぽん", Score: 40, Sequence: 7},
	)

	result, err := store.LookupByTermOrReading(context.Background(), "日本")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "にほん", result[0].Reading)
}

func TestDictionaryStore_LookupNoMatch(t *testing.T) {
	store := seededStore(t, domain.DictionaryEntry{Term: "食べる", Reading: "たべる", Sequence: 1})

	for _, text := range []string{"", "食べ", "食べるな"} {
		result, err := store.LookupByTermOrReading(context.Background(), text)
		require.NoError(t, err)
		assert.Empty(t, result, text)
		assert.NotNil(t, result)
	}
}

func TestDictionaryStore_SaveEntries_UnknownDictionary(t *testing.T) {
	store := NewDictionaryStore()

	err := store.SaveEntries(context.Background(), "missing", []domain.DictionaryEntry{{Term: "x"}})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDictionaryStore_SaveDictionary_EmptyID(t *testing.T) {
	store := NewDictionaryStore()

	err := store.SaveDictionary(context.Background(), domain.Dictionary{Title: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDictionaryStore_GetAndList(t *testing.T) {
	ctx := context.Background()
	store := NewDictionaryStore()
	require.NoError(t, store.SaveDictionary(ctx, domain.Dictionary{ID: "b", Title: "B"}))
	require.NoError(t, store.SaveDictionary(ctx, domain.Dictionary{ID: "a", Title: "A"}))

	dict, err := store.GetDictionary(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", dict.Title)

	_, err = store.GetDictionary(ctx, "c")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := store.ListDictionaries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
}

func TestDictionaryStore_DeleteDictionary(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, domain.DictionaryEntry{Term: "橋", Reading: "はし", Sequence: 1})
	require.NoError(t, store.SaveDictionary(ctx, domain.Dictionary{ID: "names", Title: "Names"}))
	require.NoError(t, store.SaveEntries(ctx, "names", []domain.DictionaryEntry{
		{Term: "端", Reading: "はし", Sequence: 9},
	}))

	require.NoError(t, store.DeleteDictionary(ctx, "jmdict"))

	result, err := store.LookupByTermOrReading(ctx, "はし")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "端", result[0].Term)

	result, err = store.LookupByTermOrReading(ctx, "橋")
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 1, store.EntryCount())

	assert.ErrorIs(t, store.DeleteDictionary(ctx, "jmdict"), domain.ErrNotFound)
}
