package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// mockStore is a testify mock of driven.DictionaryStore.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) LookupByTermOrReading(ctx context.Context, text string) ([]domain.DictionaryEntry, error) {
	args := m.Called(ctx, text)
	entries, _ := args.Get(0).([]domain.DictionaryEntry)
	return entries, args.Error(1)
}

func (m *mockStore) SaveDictionary(ctx context.Context, dict domain.Dictionary) error {
	return m.Called(ctx, dict).Error(0)
}

func (m *mockStore) SaveEntries(ctx context.Context, id string, entries []domain.DictionaryEntry) error {
	return m.Called(ctx, id, entries).Error(0)
}

func (m *mockStore) GetDictionary(ctx context.Context, id string) (*domain.Dictionary, error) {
	args := m.Called(ctx, id)
	dict, _ := args.Get(0).(*domain.Dictionary)
	return dict, args.Error(1)
}

func (m *mockStore) ListDictionaries(ctx context.Context) ([]domain.Dictionary, error) {
	args := m.Called(ctx)
	dicts, _ := args.Get(0).([]domain.Dictionary)
	return dicts, args.Error(1)
}

func (m *mockStore) DeleteDictionary(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(memory.NewDictionaryStore(), 0)
	assert.Error(t, err)
}

func TestDictionaryStore_CachesLookups(t *testing.T) {
	ctx := context.Background()
	next := &mockStore{}
	next.On("LookupByTermOrReading", ctx, "食べる").
		Return([]domain.DictionaryEntry{{Term: "食べる", Sequence: 1}}, nil).Once()

	store, err := New(next, 8)
	require.NoError(t, err)

	first, err := store.LookupByTermOrReading(ctx, "食べる")
	require.NoError(t, err)
	second, err := store.LookupByTermOrReading(ctx, "食べる")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Len())
	next.AssertExpectations(t)
}

func TestDictionaryStore_DoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk I/O error")
	next := &mockStore{}
	next.On("LookupByTermOrReading", ctx, "食べる").Return(nil, boom).Twice()

	store, err := New(next, 8)
	require.NoError(t, err)

	_, err = store.LookupByTermOrReading(ctx, "食べる")
	assert.ErrorIs(t, err, boom)
	_, err = store.LookupByTermOrReading(ctx, "食べる")
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 0, store.Len())
	next.AssertExpectations(t)
}

func TestDictionaryStore_WritesPurge(t *testing.T) {
	ctx := context.Background()
	store, err := New(memory.NewDictionaryStore(), 8)
	require.NoError(t, err)

	require.NoError(t, store.SaveDictionary(ctx, domain.Dictionary{ID: "d1", Title: "JMdict"}))

	entries, err := store.LookupByTermOrReading(ctx, "橋")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.SaveEntries(ctx, "d1", []domain.DictionaryEntry{{Term: "橋", Reading: "はし", Sequence: 1}}))
	assert.Equal(t, 0, store.Len())

	entries, err = store.LookupByTermOrReading(ctx, "橋")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, store.DeleteDictionary(ctx, "d1"))
	entries, err = store.LookupByTermOrReading(ctx, "橋")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDictionaryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	next := &mockStore{}
	next.On("LookupByTermOrReading", ctx, "はし").Return([]domain.DictionaryEntry{
		{Term: "箸", Sequence: 2}, {Term: "橋", Sequence: 1},
	}, nil).Once()

	store, err := New(next, 8)
	require.NoError(t, err)

	first, err := store.LookupByTermOrReading(ctx, "はし")
	require.NoError(t, err)
	first[0], first[1] = first[1], first[0]

	second, err := store.LookupByTermOrReading(ctx, "はし")
	require.NoError(t, err)
	assert.Equal(t, "箸", second[0].Term)
}

func TestDictionaryStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	next := &mockStore{}
	next.On("GetDictionary", ctx, "d1").Return(&domain.Dictionary{ID: "d1"}, nil)
	next.On("ListDictionaries", ctx).Return([]domain.Dictionary{{ID: "d1"}}, nil)

	store, err := New(next, 8)
	require.NoError(t, err)

	dict, err := store.GetDictionary(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", dict.ID)

	list, err := store.ListDictionaries(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDictionaryStore_WriteDuringLookupIsNotCached(t *testing.T) {
	ctx := context.Background()
	stale := []domain.DictionaryEntry{{Term: "食べる", Sequence: 1}}
	fresh := []domain.DictionaryEntry{{Term: "食べる", Sequence: 1}, {Term: "食べる", Sequence: 2}}

	var store *DictionaryStore
	next := &mockStore{}
	next.On("SaveEntries", ctx, "jmdict", mock.Anything).Return(nil)
	next.On("LookupByTermOrReading", ctx, "食べる").
		Run(func(mock.Arguments) {
			// An import lands while the first read is in flight.
			require.NoError(t, store.SaveEntries(ctx, "jmdict", fresh[1:]))
		}).
		Return(stale, nil).Once()
	next.On("LookupByTermOrReading", ctx, "食べる").Return(fresh, nil).Once()

	store, err := New(next, 8)
	require.NoError(t, err)

	first, err := store.LookupByTermOrReading(ctx, "食べる")
	require.NoError(t, err)
	assert.Equal(t, stale, first)
	assert.Equal(t, 0, store.Len())

	second, err := store.LookupByTermOrReading(ctx, "食べる")
	require.NoError(t, err)
	assert.Equal(t, fresh, second)
	assert.Equal(t, 1, store.Len())
	next.AssertExpectations(t)
}
