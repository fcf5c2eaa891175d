// Package termbank reads Yomichan-format dictionary archives.
//
// An archive is a zip file (or an unpacked directory) holding index.json
// and one or more term_bank_N.json files. Each term bank is a JSON array of
// rows:
//
//	[term, reading, definitionTags, rules, score, definitions, sequence, termTags]
//
// Format 1 archives omit sequence and termTags and spread the definitions
// over the remaining row elements.
package termbank

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.TermBankReader = (*Reader)(nil)

// Reader parses term-bank archives from disk.
type Reader struct{}

// NewReader creates a new term-bank reader.
func NewReader() *Reader {
	return &Reader{}
}

// index mirrors the fields of index.json that are used.
type index struct {
	Title    string `json:"title"`
	Revision string `json:"revision"`
	Format   int    `json:"format"`
	Version  int    `json:"version"`
}

// Read parses the archive or directory at p.
func (r *Reader) Read(ctx context.Context, p string) (*domain.TermBank, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	if info.IsDir() {
		return r.ReadFS(ctx, os.DirFS(p))
	}

	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("%w: open zip %s: %v", domain.ErrMalformedTermBank, p, err)
	}
	defer zr.Close()

	return r.ReadFS(ctx, zr)
}

// ReadFS parses an archive exposed as a file system.
func (r *Reader) ReadFS(ctx context.Context, fsys fs.FS) (*domain.TermBank, error) {
	meta, err := readIndex(fsys)
	if err != nil {
		return nil, err
	}

	format := meta.Format
	if format == 0 {
		format = meta.Version
	}

	bank := &domain.TermBank{
		Info: domain.Dictionary{
			Title:    meta.Title,
			Revision: meta.Revision,
			Format:   format,
		},
	}

	files, err := termBankFiles(fsys)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no term_bank_*.json files", domain.ErrMalformedTermBank)
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := readTermBank(fsys, name, format)
		if err != nil {
			return nil, err
		}
		logger.Debug("Read %s: %d records", name, len(records))
		bank.Records = append(bank.Records, records...)
	}

	return bank, nil
}

func readIndex(fsys fs.FS) (*index, error) {
	data, err := fs.ReadFile(fsys, "index.json")
	if err != nil {
		return nil, fmt.Errorf("%w: read index.json: %v", domain.ErrMalformedTermBank, err)
	}

	var meta index
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: decode index.json: %v", domain.ErrMalformedTermBank, err)
	}
	if meta.Title == "" {
		return nil, fmt.Errorf("%w: index.json has no title", domain.ErrMalformedTermBank)
	}
	return &meta, nil
}

// termBankFiles lists term_bank_N.json files in numeric order.
func termBankFiles(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "term_bank_*.json")
	if err != nil {
		return nil, fmt.Errorf("list term banks: %w", err)
	}

	number := func(name string) int {
		n, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(path.Base(name), "term_bank_"), ".json"))
		return n
	}
	sort.Slice(matches, func(i, j int) bool {
		return number(matches[i]) < number(matches[j])
	})
	return matches, nil
}

func readTermBank(fsys fs.FS, name string, format int) ([]domain.TermRecord, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrMalformedTermBank, name, err)
	}

	records := make([]domain.TermRecord, 0, len(rows))
	for i, row := range rows {
		record, err := parseRow(row, format)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", domain.ErrMalformedTermBank, name, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []json.RawMessage, format int) (domain.TermRecord, error) {
	var record domain.TermRecord

	minLen := 7
	if format == 1 {
		minLen = 5
	}
	if len(row) < minLen {
		return record, fmt.Errorf("expected at least %d fields, got %d", minLen, len(row))
	}

	if err := json.Unmarshal(row[0], &record.Term); err != nil {
		return record, fmt.Errorf("term: %w", err)
	}
	if err := json.Unmarshal(row[1], &record.Reading); err != nil {
		return record, fmt.Errorf("reading: %w", err)
	}
	record.Tags = optionalString(row[2])
	record.Rules = optionalString(row[3])
	if err := json.Unmarshal(row[4], &record.Score); err != nil {
		return record, fmt.Errorf("score: %w", err)
	}

	if format == 1 {
		for _, raw := range row[5:] {
			record.Glossary = append(record.Glossary, ExtractGlossary(raw)...)
		}
		return record, nil
	}

	var definitions []json.RawMessage
	if err := json.Unmarshal(row[5], &definitions); err != nil {
		return record, fmt.Errorf("definitions: %w", err)
	}
	for _, raw := range definitions {
		record.Glossary = append(record.Glossary, ExtractGlossary(raw)...)
	}

	if err := json.Unmarshal(row[6], &record.Sequence); err != nil {
		return record, fmt.Errorf("sequence: %w", err)
	}
	if len(row) > 7 {
		record.TermTags = optionalString(row[7])
	}

	return record, nil
}

// optionalString decodes a string that may be null or absent.
func optionalString(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}
