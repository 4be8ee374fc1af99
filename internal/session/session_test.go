package session

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mfulz/phonebook/internal/assistant"
	"github.com/mfulz/phonebook/internal/contacts"
	"github.com/mfulz/phonebook/protocol"
)

func newAssistant() *assistant.Assistant {
	return assistant.New(contacts.NewStore(), assistant.WithLogger(zap.NewNop().Sugar()))
}

// scripted replays fixed results, one per Readline call.
type scripted struct {
	lines []string
	errs  []error
}

func (s *scripted) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", errors.New("script exhausted")
	}
	line, err := s.lines[0], s.errs[0]
	s.lines, s.errs = s.lines[1:], s.errs[1:]
	return line, err
}

func TestRun_StopsOnExit(t *testing.T) {
	in := NewScanner(strings.NewReader("hello\nadd Bob 123\nphone Bob\nexit\nall\n"))
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, newAssistant()))

	assert.Equal(t, "How can I help you?\nContact added.\n123\nGood bye!\n", out.String())
}

func TestRun_EOFWithoutFarewell(t *testing.T) {
	in := NewScanner(strings.NewReader("add Bob 123\nall"))
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, newAssistant()))

	assert.Equal(t, "Contact added.\nBob: 123\n", out.String())
}

func TestRun_InterruptIsIgnored(t *testing.T) {
	in := &scripted{
		lines: []string{"", "hello", "close"},
		errs:  []error{readline.ErrInterrupt, nil, nil},
	}
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, newAssistant()))
	assert.Equal(t, "How can I help you?\nGood bye!\n", out.String())
}

func TestRun_ReadError(t *testing.T) {
	in := &scripted{lines: []string{""}, errs: []error{errors.New("tty gone")}}

	err := Run(context.Background(), in, &bytes.Buffer{}, newAssistant())
	assert.ErrorContains(t, err, "tty gone")
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, NewScanner(strings.NewReader("hello\n")), &bytes.Buffer{}, newAssistant())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Transcript(t *testing.T) {
	in := NewScanner(strings.NewReader("add Bob 123\nfoobar\nexit\n"))
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, newAssistant(), WithTranscript(true)))

	r := bufio.NewReader(&out)
	var got []protocol.Response
	for {
		resp, err := protocol.ReadResponse(r)
		if err != nil {
			break
		}
		got = append(got, *resp)
	}
	assert.Equal(t, []protocol.Response{
		{Command: "add Bob 123", Reply: protocol.MsgAdded},
		{Command: "foobar", Reply: protocol.MsgInvalidCommand},
		{Command: "exit", Reply: protocol.MsgFarewell, Terminate: true},
	}, got)
}

func TestNewVerbCompleter(t *testing.T) {
	c := newVerbCompleter([]string{"phone", "add", "all"})

	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, strings.TrimSpace(string(child.GetName())))
	}
	assert.Equal(t, []string{"add", "all", "phone"}, names)
}

func TestRun_Lines(t *testing.T) {
	var out bytes.Buffer
	in := NewLines([]string{"add Bob Smith 1", "add Bob 1", "phone Bob"})

	require.NoError(t, Run(context.Background(), in, &out, newAssistant()))
	assert.Equal(t, "Give me name and phone please.\nContact added.\n1\n", out.String())
}

// lockedBuffer is a bytes.Buffer safe for a writer and a polling reader.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	out := &lockedBuffer{}
	errc := make(chan error, 1)
	go func() {
		errc <- Run(ctx, NewScanner(pr), out, newAssistant())
	}()

	_, err := pw.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return out.String() != "" }, 2*time.Second, 10*time.Millisecond)

	// Run is now blocked reading the next line.
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	assert.Equal(t, "How can I help you?\n", out.String())
}

func TestScanner_LongLine(t *testing.T) {
	name := strings.Repeat("n", 100*1024)
	in := NewScanner(strings.NewReader("add " + name + " 123\nphone " + name + "\n"))
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), in, &out, newAssistant()))
	assert.Equal(t, "Contact added.\n123\n", out.String())
}

func TestScanner_LineOverLimit(t *testing.T) {
	in := NewScanner(strings.NewReader("phone " + strings.Repeat("n", MaxLineSize) + "\n"))

	err := Run(context.Background(), in, &bytes.Buffer{}, newAssistant())
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestTranscript_Replay(t *testing.T) {
	var recorded bytes.Buffer
	first := NewLines([]string{"add Bob 123", "change Bob 456", "all", "exit"})
	require.NoError(t, Run(context.Background(), first, &recorded, newAssistant(), WithTranscript(true)))

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), NewTranscript(&recorded), &out, newAssistant()))
	assert.Equal(t, "Contact added.\nContact updated.\nBob: 456\nGood bye!\n", out.String())
}

func TestTranscript_InvalidRecord(t *testing.T) {
	in := NewTranscript(strings.NewReader("add Bob 123\n"))

	err := Run(context.Background(), in, &bytes.Buffer{}, newAssistant())
	assert.ErrorContains(t, err, "decode error")
}
