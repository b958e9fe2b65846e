package main

// Notes:
// - This file contains test helpers and mocks shared across CLI tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	mdpage "github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/assets"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and files
// ---------------------------------------------------------------------------

// fixedClock advances by step on every call.
func fixedClock(step time.Duration) func() time.Time {
	var calls atomic.Int64
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		return base.Add(time.Duration(calls.Add(1)) * step)
	}
}

// testEnv returns an Environment reading stdin from the given string and
// capturing stdout and stderr.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Environment{
		Now:         fixedClock(time.Millisecond),
		Stdin:       strings.NewReader(stdin),
		Stdout:      stdout,
		Stderr:      stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}, stdout, stderr
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockRenderer returns a fixed fragment or error and records calls.
type mockRenderer struct {
	out   template.HTML
	err   error
	calls atomic.Int32
	last  atomic.Value // mdpage.Input
}

func (m *mockRenderer) Render(_ context.Context, in mdpage.Input) (template.HTML, error) {
	m.calls.Add(1)
	m.last.Store(in)
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func (m *mockRenderer) StyleSheet() string {
	return ".chroma{}"
}

var _ PageRenderer = (*mockRenderer)(nil)
