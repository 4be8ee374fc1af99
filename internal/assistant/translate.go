package assistant

import (
	"errors"
	"fmt"

	"github.com/mfulz/phonebook/dispatch"
	"github.com/mfulz/phonebook/internal/contacts"
	"github.com/mfulz/phonebook/protocol"
)

// fallibleFunc is a handler that may fail with a domain error.
type fallibleFunc func(args string) (string, error)

// storeFailures lists store errors with a fixed reply.
var storeFailures = []struct {
	err   error
	reply string
}{
	{contacts.ErrNotFound, protocol.MsgNotFound},
	{contacts.ErrEmpty, protocol.MsgEmpty},
	{contacts.ErrExists, protocol.MsgExists},
}

// translate wraps h so that every call yields a reply. ErrInvalidArguments
// becomes invalidMsg, known store errors their fixed reply, and anything else
// (panics included) the generic internal reply.
func (a *Assistant) translate(verb string, h fallibleFunc, invalidMsg string) dispatch.HandlerFunc {
	return func(args string) (reply string) {
		defer func() {
			if r := recover(); r != nil {
				a.log.Errorw("[assistant] handler panicked", "verb", verb, "panic", fmt.Sprint(r))
				reply = protocol.MsgInternal
			}
		}()

		out, err := h(args)
		if err == nil {
			return out
		}
		if errors.Is(err, ErrInvalidArguments) {
			return invalidMsg
		}
		for _, kind := range storeFailures {
			if errors.Is(err, kind.err) {
				return kind.reply
			}
		}
		a.log.Errorw("[assistant] handler failed", "verb", verb, "error", err)
		return protocol.MsgInternal
	}
}
