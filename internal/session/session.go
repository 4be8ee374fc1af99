// Package session runs the line loop of one assistant conversation: it reads
// command lines, writes one reply per command and stops on termination.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/mfulz/phonebook/dispatch"
	"github.com/mfulz/phonebook/internal/logging"
	"github.com/mfulz/phonebook/protocol"
)

// LineReader yields one command line per call and io.EOF at the end of
// input. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Executor answers a single command line.
type Executor interface {
	Execute(line string) dispatch.Outcome
}

// MaxLineSize is the longest line a Scanner accepts. Longer lines fail the
// session with bufio.ErrTooLong.
const MaxLineSize = 1 << 20

// Scanner adapts an io.Reader to LineReader for scripts and pipes.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner creates a Scanner reading newline separated lines from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Scanner{s: s}
}

// Readline returns the next line without its terminator.
func (s *Scanner) Readline() (string, error) {
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Transcript replays the commands of a JSON transcript written with
// WithTranscript.
type Transcript struct {
	r *bufio.Reader
}

// NewTranscript creates a LineReader yielding the recorded command of every
// transcript record in r.
func NewTranscript(r io.Reader) *Transcript {
	return &Transcript{r: bufio.NewReader(r)}
}

// Readline returns the command of the next record.
func (t *Transcript) Readline() (string, error) {
	resp, err := protocol.ReadResponse(t.r)
	if err != nil {
		return "", err
	}
	return resp.Command, nil
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	transcript bool
}

// WithTranscript writes every outcome as a JSON transcript record instead of
// the bare reply.
func WithTranscript(enabled bool) Option {
	return func(r *runner) {
		r.transcript = enabled
	}
}

// Run feeds lines from in to exec and writes the replies to out until the
// input ends, ctx is cancelled or a command terminates the session.
// Termination and end of input both return nil.
func Run(ctx context.Context, in LineReader, out io.Writer, exec Executor, opts ...Option) error {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session aborted: %w", err)
		}

		line, err := readLine(ctx, in)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("session aborted: %w", ctxErr)
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			logging.Log.Debugw("[session] input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}

		outcome := exec.Execute(line)
		if err := r.write(out, line, outcome); err != nil {
			return err
		}
		if outcome.Terminate {
			logging.Log.Debugw("[session] terminated by command", "line", line)
			return nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to end. A read still pending on
// cancellation completes in the background; its result is dropped.
func readLine(ctx context.Context, in LineReader) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		line, err := in.Readline()
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}

func (r *runner) write(out io.Writer, line string, outcome dispatch.Outcome) error {
	if r.transcript {
		return protocol.WriteResponse(out, &protocol.Response{
			Command:   line,
			Reply:     outcome.Reply,
			Terminate: outcome.Terminate,
		})
	}
	if _, err := fmt.Fprintln(out, outcome.Reply); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// Lines is a LineReader over a fixed list of command lines.
type Lines struct {
	lines []string
}

// NewLines creates a LineReader yielding lines in order, then io.EOF.
func NewLines(lines []string) *Lines {
	return &Lines{lines: lines}
}

// Readline returns the next line.
func (l *Lines) Readline() (string, error) {
	if len(l.lines) == 0 {
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}
