package assistant

import (
	"errors"
	"strings"

	"github.com/mfulz/phonebook/protocol"
)

// ErrInvalidArguments signals a missing or malformed argument string.
var ErrInvalidArguments = errors.New("invalid arguments")

// nameAndPhone splits args into exactly two whitespace separated tokens.
func nameAndPhone(args string) (string, string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", "", ErrInvalidArguments
	}
	return fields[0], fields[1], nil
}

func (a *Assistant) hello(string) string {
	return protocol.MsgGreeting
}

func (a *Assistant) addContact(args string) (string, error) {
	name, phone, err := nameAndPhone(args)
	if err != nil {
		return "", err
	}
	if err := a.store.Add(name, phone); err != nil {
		return "", err
	}
	a.log.Infow("[assistant] contact added", "name", name)
	return protocol.MsgAdded, nil
}

func (a *Assistant) changeContact(args string) (string, error) {
	name, phone, err := nameAndPhone(args)
	if err != nil {
		return "", err
	}
	if err := a.store.Change(name, phone); err != nil {
		return "", err
	}
	a.log.Infow("[assistant] contact updated", "name", name)
	return protocol.MsgUpdated, nil
}

// showPhone treats the whole trimmed remainder as the name.
func (a *Assistant) showPhone(args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", ErrInvalidArguments
	}
	return a.store.Phone(name)
}

func (a *Assistant) showAll(string) (string, error) {
	all, err := a.store.All()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(all))
	for _, c := range all {
		lines = append(lines, c.Name+": "+c.Phone)
	}
	return strings.Join(lines, "\n"), nil
}
