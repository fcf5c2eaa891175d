package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, enabled bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(enabled)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("candidates: %d", 3)
	Info("results: %d", 1)
	Warn("index failed: %s", "boom")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] candidates: 3\n")
	assert.Contains(t, out, "[INFO] results: 1\n")
	assert.Contains(t, out, "[WARN] index failed: boom\n")
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("x")
	Info("x")
	Warn("x")
	Section("x")
	Elapsed("x", time.Now())

	assert.Empty(t, buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Lookup")

	assert.Equal(t, "\n=== Lookup ===\n", buf.String())
}

func TestElapsed(t *testing.T) {
	buf := capture(t, true)

	Elapsed("index queries", time.Now().Add(-time.Millisecond))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[TIME] index queries: "))
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, true)
	SetOutput(&syncBuffer{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Debug("message %d", i)
		}()
		go func() {
			defer wg.Done()
			SetVerbose(i%2 == 0)
		}()
	}
	wg.Wait()
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
