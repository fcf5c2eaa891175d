package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/yomu-cli/internal/kana"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// defaultMaxParallel bounds concurrent index queries when not configured.
const defaultMaxParallel = 8

// match is an accepted candidate/entry pair before ranking.
type match struct {
	result  domain.LookupResult
	reading string
}

// LookupService resolves words and text spans against the dictionary index.
type LookupService struct {
	index       driven.DictionaryIndex
	deinflector *Deinflector
	tokenizer   driven.Tokenizer
	maxLength   int
	maxParallel int
}

// NewLookupService creates a new lookup service.
// If deinflector is nil, one is built over the default rule table.
func NewLookupService(index driven.DictionaryIndex, deinflector *Deinflector) *LookupService {
	if deinflector == nil {
		deinflector = NewDeinflector(DefaultRules(), false)
	}
	return &LookupService{
		index:       index,
		deinflector: deinflector,
		maxLength:   domain.DefaultMaxLength,
		maxParallel: defaultMaxParallel,
	}
}

// SetTokenizer sets the tokenizer used for reading hints. Nil disables it.
func (s *LookupService) SetTokenizer(tokenizer driven.Tokenizer) {
	s.tokenizer = tokenizer
}

// SetMaxLength sets the default substring scan span.
func (s *LookupService) SetMaxLength(n int) {
	if n > 0 {
		s.maxLength = n
	}
}

// SetMaxParallel sets the bound on concurrent index queries.
func (s *LookupService) SetMaxParallel(n int) {
	if n > 0 {
		s.maxParallel = n
	}
}

// Deinflect returns every dictionary-form candidate reachable from word.
func (s *LookupService) Deinflect(word string) []domain.DeinflectionCandidate {
	return s.deinflector.Deinflect(word)
}

// LookupWord returns ranked dictionary results for word.
func (s *LookupService) LookupWord(
	ctx context.Context, word string, opts domain.LookupOptions,
) ([]domain.LookupResult, error) {
	logger.Section("Lookup")
	logger.Debug("Word: %q, reading hint: %q", word, opts.ReadingHint)

	if word == "" {
		return []domain.LookupResult{}, nil
	}

	matches, err := s.resolve(ctx, word)
	if err != nil {
		logger.Warn("Lookup failed: %v", err)
		return nil, err
	}

	hint := normalizeHint(opts.ReadingHint)
	sort.SliceStable(matches, func(i, j int) bool {
		return rankBefore(matches[i], matches[j], hint)
	})

	logger.Info("Results: %d", len(matches))
	return resultsOf(matches), nil
}

// LookupWordBest returns the top ranked result, or nil when nothing matches.
func (s *LookupService) LookupWordBest(
	ctx context.Context, word string, opts domain.LookupOptions,
) (*domain.LookupResult, error) {
	results, err := s.LookupWord(ctx, word, opts)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// LookupWordWithSubstrings finds the longest spans starting at the rune
// offset start that resolve to dictionary entries. Every length from the
// longest allowed down to one is tried; an entry matched at a longer length
// is not repeated at a shorter one.
func (s *LookupService) LookupWordWithSubstrings(
	ctx context.Context, text string, start int, opts domain.LookupOptions,
) ([]domain.LookupResult, error) {
	logger.Section("Substring Lookup")

	runes := []rune(text)
	if start < 0 || start >= len(runes) {
		logger.Debug("Start %d out of range for %d runes", start, len(runes))
		return []domain.LookupResult{}, nil
	}

	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = s.maxLength
	}
	end := min(start+maxLength, len(runes))
	logger.Debug("Span: [%d, %d) of %d runes", start, end, len(runes))

	// passes[i] holds the matches for length end-start-i.
	passes := make([][]match, end-start)
	errs := make([]error, end-start)

	var wg sync.WaitGroup
	for i := range passes {
		length := end - start - i
		substring := string(runes[start : start+length])
		if kana.HasSentenceTerminator(substring) {
			continue
		}

		wg.Add(1)
		go func(i, length int, substring string) {
			defer wg.Done()
			matches, err := s.resolve(ctx, substring)
			if err != nil {
				errs[i] = err
				return
			}
			for j := range matches {
				matches[j].result.MatchLength = length
			}
			passes[i] = matches
		}(i, length, substring)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logger.Warn("Substring lookup failed: %v", err)
			return nil, err
		}
	}

	seen := make(map[int64]bool)
	var matches []match
	for _, pass := range passes {
		for _, m := range pass {
			if seen[m.result.Sequence] {
				continue
			}
			seen[m.result.Sequence] = true
			matches = append(matches, m)
		}
	}

	hint := normalizeHint(opts.ReadingHint)
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.result.MatchLength != b.result.MatchLength {
			return a.result.MatchLength > b.result.MatchLength
		}
		return rankBefore(a, b, hint)
	})

	logger.Info("Results: %d", len(matches))
	return resultsOf(matches), nil
}

// ReadingHintAt returns the hiragana reading of the token covering the
// rune offset start.
func (s *LookupService) ReadingHintAt(ctx context.Context, text string, start int) (string, error) {
	if s.tokenizer == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tokens, err := s.tokenizer.Tokenize(text)
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}
	for _, token := range tokens {
		if token.Covers(start) {
			logger.Debug("Reading hint at %d: %q (%s)", start, token.Reading, token.Surface)
			return kana.ToHiragana(token.Reading), nil
		}
	}
	return "", nil
}

// resolve runs deinflection, queries the index for every candidate and
// returns the accepted pairs in discovery order.
func (s *LookupService) resolve(ctx context.Context, word string) ([]match, error) {
	candidates := s.candidates(word)
	logger.Debug("Candidates for %q: %d", word, len(candidates))

	terms := make([]string, len(candidates))
	for i, c := range candidates {
		terms[i] = c.Term
	}

	started := time.Now()
	entries, err := s.queryAll(ctx, terms)
	if err != nil {
		return nil, err
	}
	logger.Elapsed("index queries", started)

	consumed := make(map[int64]bool)
	matches := make([]match, 0)
	for i, candidate := range candidates {
		for k := range entries[i] {
			entry := &entries[i][k]
			if consumed[entry.Sequence] {
				continue
			}
			if !IsCompatible(candidate.GrammarChain, entry) {
				continue
			}
			consumed[entry.Sequence] = true
			matches = append(matches, match{
				result:  buildResult(word, candidate, entry),
				reading: kana.ToHiragana(entry.Reading),
			})
		}
	}
	return matches, nil
}

// candidates deinflects word and its hiragana form, merged by term.
func (s *LookupService) candidates(word string) []domain.DeinflectionCandidate {
	candidates := s.deinflector.Deinflect(word)

	hiragana := kana.ToHiragana(word)
	if hiragana == word {
		return candidates
	}

	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c.Term] = true
	}
	for _, c := range s.deinflector.Deinflect(hiragana) {
		if seen[c.Term] {
			continue
		}
		seen[c.Term] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// queryAll queries the index for every term concurrently. Results are
// written to the slot of their term so ordering does not depend on arrival.
func (s *LookupService) queryAll(ctx context.Context, terms []string) ([][]domain.DictionaryEntry, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}

	entries := make([][]domain.DictionaryEntry, len(terms))
	errs := make([]error, len(terms))
	sem := make(chan struct{}, s.maxParallel)

	var wg sync.WaitGroup
	for i, term := range terms {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			found, err := s.index.LookupByTermOrReading(ctx, term)
			if err != nil {
				errs[i] = fmt.Errorf("lookup %q: %w", term, err)
				return
			}
			entries[i] = found
		}(i, term)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func buildResult(word string, candidate domain.DeinflectionCandidate, entry *domain.DictionaryEntry) domain.LookupResult {
	path := make([]string, len(candidate.ReasonChain))
	copy(path, candidate.ReasonChain)

	return domain.LookupResult{
		SelectedWord:   word,
		DictionaryForm: entry.Term,
		Reading:        entry.Reading,
		PartOfSpeech:   entry.PartsOfSpeech(),
		Definitions:    entry.Glossary(),
		InflectionPath: path,
		Score:          entry.Score,
		Sequence:       entry.Sequence,
	}
}

// rankBefore orders reading-hint matches first, then by descending score.
func rankBefore(a, b match, hint string) bool {
	if hint != "" {
		aHint, bHint := a.reading == hint, b.reading == hint
		if aHint != bHint {
			return aHint
		}
	}
	return a.result.Score > b.result.Score
}

func resultsOf(matches []match) []domain.LookupResult {
	results := make([]domain.LookupResult, len(matches))
	for i, m := range matches {
		results[i] = m.result
	}
	return results
}

// normalizeHint trims and converts a reading hint to hiragana.
func normalizeHint(hint string) string {
	return kana.ToHiragana(strings.TrimSpace(hint))
}
