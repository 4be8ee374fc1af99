// Package dispatch provides the verb table and dispatcher used by the
// phonebook assistant to turn one line of text into a reply.
package dispatch

import (
	"regexp"
	"strings"
	"sync"

	"github.com/mfulz/phonebook/protocol"
)

// HandlerFunc defines the signature of a command handler. It receives the raw
// argument string following the verb and always produces a reply.
type HandlerFunc func(args string) string

// Outcome is the result of dispatching one line.
type Outcome struct {
	Reply     string
	Terminate bool // set for exit verbs; the session must end
}

// commandPattern matches a leading word (the verb) and an optional remainder
// separated from it by whitespace. The separator class covers every rune
// unicode.IsSpace reports, not just ASCII blanks.
var commandPattern = regexp.MustCompile(`^([\p{L}\p{N}_]+)(?:[\s\v\x1c-\x1f\x{85}\p{Z}]+(.*))?`)

// ParseLine splits a line into its lower-cased verb and the raw argument
// string. ok is false when the line does not start with a word.
func ParseLine(line string) (verb, args string, ok bool) {
	m := commandPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), m[2], true
}

// Dispatcher maps verbs to their handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	exits    map[string]struct{}
}

// New creates a new Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]HandlerFunc),
		exits:    make(map[string]struct{}),
	}
}

// Register binds a verb to a handler. Verbs are matched case-insensitively.
func (d *Dispatcher) Register(verb string, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[strings.ToLower(verb)] = handler
}

// RegisterExit marks verbs that end the session instead of calling a handler.
func (d *Dispatcher) RegisterExit(verbs ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, v := range verbs {
		d.exits[strings.ToLower(v)] = struct{}{}
	}
}

// Verbs returns every registered verb, exit verbs included.
func (d *Dispatcher) Verbs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.handlers)+len(d.exits))
	for v := range d.handlers {
		out = append(out, v)
	}
	for v := range d.exits {
		out = append(out, v)
	}
	return out
}

// Dispatch parses the line and executes the matching handler.
func (d *Dispatcher) Dispatch(line string) Outcome {
	verb, args, ok := ParseLine(line)
	if !ok {
		return Outcome{Reply: protocol.MsgInvalidCommand}
	}

	d.mu.RLock()
	handler, found := d.handlers[verb]
	_, exit := d.exits[verb]
	d.mu.RUnlock()

	if found {
		return Outcome{Reply: handler(args)}
	}
	if exit {
		return Outcome{Reply: protocol.MsgFarewell, Terminate: true}
	}
	return Outcome{Reply: protocol.MsgInvalidCommand}
}
