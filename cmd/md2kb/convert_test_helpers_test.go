package main

// Notes:
// - This file contains mocks and helpers used across the CLI tests.
// - These are not functions under test themselves, but supporting infrastructure.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	md2kb "github.com/alnah/go-md2kb"
)

// ---------------------------------------------------------------------------
// Mock converter
// ---------------------------------------------------------------------------

// mockConverter returns a canned result and records the inputs it saw.
type mockConverter struct {
	mu     sync.Mutex
	result *md2kb.ConvertResult
	err    error
	inputs []md2kb.Input
}

func (m *mockConverter) Convert(_ context.Context, input md2kb.Input) (*md2kb.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &md2kb.ConvertResult{
		HTML:  []byte("<html><body>" + input.Markdown + "</body></html>"),
		Title: "Mock",
	}, nil
}

func (m *mockConverter) calls() []md2kb.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]md2kb.Input(nil), m.inputs...)
}

// ---------------------------------------------------------------------------
// Mock pool
// ---------------------------------------------------------------------------

// mockPool hands out the same converter to every worker.
type mockPool struct {
	conv       CLIConverter
	acquireErr error
	size       int

	mu       sync.Mutex
	acquired int
	released int
	closed   bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *mockPool) Size() int {
	if p.size < 1 {
		return 1
	}
	return p.size
}

func (p *mockPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// testEnv returns an environment writing to buffers with the real
// converter pool.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Stdout:  stdout,
		Stderr:  stderr,
		NewPool: newConverterPool,
	}
	return env, stdout, stderr
}

// mockEnv returns a buffered environment whose pool is p.
func mockEnv(p *mockPool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	env, stdout, stderr := testEnv()
	env.NewPool = func(int, ...md2kb.Option) Pool { return p }
	return env, stdout, stderr
}

// writeFile creates a file under dir, creating parents as needed, and
// returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}
