// Package assistant implements the contact assistant: the fixed verb table,
// the handlers operating on a contacts.Store and the translation of handler
// failures into user-facing replies.
//
// One Assistant serves exactly one session and owns its store.
package assistant

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfulz/phonebook/dispatch"
	"github.com/mfulz/phonebook/internal/contacts"
	"github.com/mfulz/phonebook/internal/logging"
	"github.com/mfulz/phonebook/protocol"
)

// Assistant answers command lines against its own contact store.
type Assistant struct {
	id         string
	store      *contacts.Store
	dispatcher *dispatch.Dispatcher
	log        *zap.SugaredLogger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithLogger overrides the logger; the global logging.Log is used otherwise.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Assistant) {
		a.log = l
	}
}

// New creates an Assistant bound to store with a fresh session ID.
func New(store *contacts.Store, opts ...Option) *Assistant {
	a := &Assistant{
		id:    uuid.NewString(),
		store: store,
		log:   logging.Log,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("session", a.id)

	d := dispatch.New()
	d.Register(protocol.CmdHello, a.hello)
	d.Register(protocol.CmdAdd, a.translate(protocol.CmdAdd, a.addContact, protocol.MsgNeedNameAndPhone))
	d.Register(protocol.CmdChange, a.translate(protocol.CmdChange, a.changeContact, protocol.MsgNeedNameAndPhone))
	d.Register(protocol.CmdPhone, a.translate(protocol.CmdPhone, a.showPhone, protocol.MsgNeedName))
	d.Register(protocol.CmdAll, a.translate(protocol.CmdAll, a.showAll, protocol.MsgInternal))
	d.RegisterExit(protocol.CmdClose, protocol.CmdExit)
	a.dispatcher = d

	return a
}

// ID returns the session ID tagging this assistant's log lines.
func (a *Assistant) ID() string {
	return a.id
}

// Verbs returns every verb the assistant accepts.
func (a *Assistant) Verbs() []string {
	return a.dispatcher.Verbs()
}

// Execute runs one command line and returns the reply. It never fails; a
// Terminate outcome means the caller must end the session.
func (a *Assistant) Execute(line string) dispatch.Outcome {
	out := a.dispatcher.Dispatch(line)
	a.log.Debugw("[assistant] command executed", "line", line, "terminate", out.Terminate)
	return out
}
