package console

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-memory Port for tests and scripted runs. It serves a fixed
// list of input lines and records everything written to it.
type Memory struct {
	mu     sync.Mutex
	input  []string
	output strings.Builder
}

// NewMemory returns a Memory Port that serves the given input lines in
// order. Once the lines are exhausted, ReadLine reports end-of-input.
func NewMemory(lines ...string) *Memory {
	return &Memory{input: lines}
}

// Print records s.
func (m *Memory) Print(ctx context.Context, s string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output.WriteString(s)
	return nil
}

// Println records s, followed by a newline.
func (m *Memory) Println(ctx context.Context, s string) error {
	return m.Print(ctx, s+"\n")
}

// ReadLine returns the next scripted input line, or ok == false once all
// lines have been served.
func (m *Memory) ReadLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.input) == 0 {
		return "", false, nil
	}
	line := m.input[0]
	m.input = m.input[1:]
	return line, true, nil
}

// Output returns everything that has been written to the Port so far.
func (m *Memory) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.output.String()
}
