package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

func resetScanFlags() {
	scanStart = 0
	scanMaxLength = 0
	scanReading = ""
	scanAutoHint = false
	scanJSON = false
}

// captureOutput runs fn with lookupCmd writing into a buffer.
func captureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	buf := new(bytes.Buffer)
	lookupCmd.SetOut(buf)
	defer lookupCmd.SetOut(nil)

	require.NoError(t, fn())
	return buf.String()
}

// hintLookupService records the options of substring lookups.
type hintLookupService struct {
	hint     string
	hintErr  error
	lastOpts domain.LookupOptions
	start    int
}

func (h *hintLookupService) Deinflect(word string) []domain.DeinflectionCandidate {
	return []domain.DeinflectionCandidate{{Term: word}}
}

func (h *hintLookupService) LookupWord(context.Context, string, domain.LookupOptions) ([]domain.LookupResult, error) {
	return []domain.LookupResult{}, nil
}

func (h *hintLookupService) LookupWordBest(context.Context, string, domain.LookupOptions) (*domain.LookupResult, error) {
	return nil, nil
}

func (h *hintLookupService) LookupWordWithSubstrings(
	_ context.Context, _ string, start int, opts domain.LookupOptions,
) ([]domain.LookupResult, error) {
	h.start = start
	h.lastOpts = opts
	return []domain.LookupResult{}, nil
}

func (h *hintLookupService) ReadingHintAt(context.Context, string, int) (string, error) {
	return h.hint, h.hintErr
}

func TestScanCmd_Use(t *testing.T) {
	assert.Equal(t, "scan [text]", scanCmd.Use)
}

func TestScanCmd_HasFlags(t *testing.T) {
	start := scanCmd.Flags().Lookup("start")
	require.NotNil(t, start)
	assert.Equal(t, "s", start.Shorthand)
	assert.Equal(t, "0", start.DefValue)

	maxLength := scanCmd.Flags().Lookup("max-length")
	require.NotNil(t, maxLength)
	assert.Equal(t, "m", maxLength.Shorthand)

	assert.NotNil(t, scanCmd.Flags().Lookup("reading"))
	assert.NotNil(t, scanCmd.Flags().Lookup("auto-hint"))
	assert.NotNil(t, scanCmd.Flags().Lookup("json"))
}

func TestScanCmd_LongestMatchFirst(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetScanFlags()

	out, err := execute(t, "scan", "--json", "食べないで。")
	require.NoError(t, err)

	var results []domain.LookupResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "食べる", results[0].DictionaryForm)
	assert.Equal(t, "食べないで", results[0].SelectedWord)
	assert.Equal(t, 5, results[0].MatchLength)
	assert.Equal(t, "食", results[1].DictionaryForm)
	assert.Equal(t, 1, results[1].MatchLength)
}

func TestScanCmd_StartOffset(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetScanFlags()

	out, err := execute(t, "scan", "--start", "2", "猫が食べた")

	require.NoError(t, err)
	assert.Contains(t, out, "食べる")
	assert.Contains(t, out, "[食べた]")
}

func TestScanCmd_StartOutOfRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetScanFlags()

	out, err := execute(t, "scan", "-s", "10", "食べた")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestScanCmd_PassesOptions(t *testing.T) {
	svc := &hintLookupService{}
	prev := lookupService
	lookupService = svc
	defer func() { lookupService = prev }()
	defer resetScanFlags()

	_, err := execute(t, "scan", "-s", "1", "-m", "4", "-r", "たべる", "猫食べた")

	require.NoError(t, err)
	assert.Equal(t, 1, svc.start)
	assert.Equal(t, 4, svc.lastOpts.MaxLength)
	assert.Equal(t, "たべる", svc.lastOpts.ReadingHint)
}

func TestScanCmd_AutoHint(t *testing.T) {
	svc := &hintLookupService{hint: "くう"}
	prev := lookupService
	lookupService = svc
	defer func() { lookupService = prev }()
	defer resetScanFlags()

	_, err := execute(t, "scan", "--auto-hint", "食う")

	require.NoError(t, err)
	assert.Equal(t, "くう", svc.lastOpts.ReadingHint)
}

func TestScanCmd_ExplicitReadingBeatsAutoHint(t *testing.T) {
	svc := &hintLookupService{hint: "くう"}
	prev := lookupService
	lookupService = svc
	defer func() { lookupService = prev }()
	defer resetScanFlags()

	_, err := execute(t, "scan", "--auto-hint", "--reading", "たべる", "食う")

	require.NoError(t, err)
	assert.Equal(t, "たべる", svc.lastOpts.ReadingHint)
}

func TestScanCmd_AutoHintError(t *testing.T) {
	svc := &hintLookupService{hintErr: errors.New("tokenizer down")}
	prev := lookupService
	lookupService = svc
	defer func() { lookupService = prev }()
	defer resetScanFlags()

	_, err := execute(t, "scan", "--auto-hint", "食う")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading hint failed")
	assert.Contains(t, err.Error(), "tokenizer down")
}
