package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// mockProcessor is a test processor that returns predefined records.
type mockProcessor struct {
	name    string
	records []domain.TermRecord
	err     error
}

func (m *mockProcessor) Name() string {
	return m.name
}

func (m *mockProcessor) Process(_ context.Context, records []domain.TermRecord) ([]domain.TermRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.records != nil {
		return m.records, nil
	}
	return records, nil
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 processors, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockProcessor{name: "test"})

	if p.Len() != 1 {
		t.Errorf("expected 1 processor, got %d", p.Len())
	}
	if names := p.Names(); len(names) != 1 || names[0] != "test" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestPipeline_Process_EmptyPipeline(t *testing.T) {
	p := NewPipeline()
	in := []domain.TermRecord{{Term: "食べる"}}

	out, err := p.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("expected input passed through, got %d records", len(out))
	}
}

func TestPipeline_Process_MultipleProcessors(t *testing.T) {
	replaced := []domain.TermRecord{{Term: "見る"}, {Term: "行く"}}
	p := NewPipeline(
		&mockProcessor{name: "first", records: replaced},
		&mockProcessor{name: "second"},
	)

	out, err := p.Process(context.Background(), []domain.TermRecord{{Term: "食べる"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].Term != "見る" {
		t.Errorf("expected second processor to receive first output, got %+v", out)
	}
}

func TestPipeline_Process_ProcessorError(t *testing.T) {
	sentinel := errors.New("boom")
	p := NewPipeline(
		&mockProcessor{name: "ok"},
		&mockProcessor{name: "broken", err: sentinel},
	)

	_, err := p.Process(context.Background(), []domain.TermRecord{{Term: "x"}})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}
	if err.Error() != "processor broken: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestPipeline_DefaultChain(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	p, err := r.BuildPipeline(domain.DefaultProcessors())
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}

	records := []domain.TermRecord{
		{Term: "ひらがな", Glossary: []string{"hiragana", "hiragana"}},
		{Term: "食べる", Reading: "たべる", Tags: "forms", Glossary: []string{"see 食る"}},
		{Term: "空", Reading: "そら", Glossary: []string{"  "}},
		{Term: "見る", Reading: "みる", Glossary: []string{"to see"}},
	}

	out, err := p.Process(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(out), out)
	}
	if out[0].Reading != "ひらがな" {
		t.Errorf("expected reading fallback, got %q", out[0].Reading)
	}
	if len(out[0].Glossary) != 1 {
		t.Errorf("expected deduplicated glossary, got %v", out[0].Glossary)
	}
	if out[1].Term != "見る" {
		t.Errorf("expected 見る, got %q", out[1].Term)
	}
}
