package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// Stdio is a Port backed by a pair of standard streams, usually os.Stdin and
// os.Stdout. Reads are pumped through a background goroutine so that a
// blocked ReadLine unwinds when ctx is canceled, even though the underlying
// stream read cannot be interrupted.
type Stdio struct {
	in  io.Reader
	out io.Writer

	readOnce sync.Once
	lines    chan string
	readErr  error
}

// NewStdio returns a Port that reads lines from in and writes to out.
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// Print writes s to the output stream.
func (s *Stdio) Print(ctx context.Context, text string) error {
	return s.write(ctx, text)
}

// Println writes s to the output stream, followed by a newline.
func (s *Stdio) Println(ctx context.Context, text string) error {
	return s.write(ctx, text+"\n")
}

// ReadLine returns the next line from the input stream. It returns
// ok == false when the input stream is exhausted and ctx.Err() if ctx is
// canceled while waiting for input.
func (s *Stdio) ReadLine(ctx context.Context) (string, bool, error) {
	s.readOnce.Do(func() {
		go s.pump()
	})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", false, fmt.Errorf("read line: %w", s.readErr)
			}
			return "", false, nil
		}
		return line, true, nil
	}
}

func (s *Stdio) write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// pump reads the input stream line by line until it is exhausted. The lines
// channel is closed afterwards; readErr is set before the close, so readers
// of the closed channel observe it.
func (s *Stdio) pump() {
	defer close(s.lines)
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
	s.readErr = scanner.Err()
}
