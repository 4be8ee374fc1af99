// Package contacts holds the in-memory contact book of one assistant session.
package contacts

import "errors"

var (
	// ErrNotFound is returned when no contact exists under the given name.
	ErrNotFound = errors.New("contact not found")
	// ErrEmpty is returned when listing a store without contacts.
	ErrEmpty = errors.New("no contacts saved")
	// ErrExists is returned by Add in strict mode when the name is taken.
	ErrExists = errors.New("contact already exists")
)

// Contact is a single name/phone pair.
type Contact struct {
	Name  string
	Phone string
}

// Option configures a Store.
type Option func(*Store)

// WithStrictAdd makes Add reject names that are already stored.
func WithStrictAdd(strict bool) Option {
	return func(s *Store) {
		s.strict = strict
	}
}

// Store maps contact names to phone numbers and remembers insertion order.
// A Store belongs to a single session and is not safe for concurrent use.
type Store struct {
	phones map[string]string
	order  []string
	strict bool
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{phones: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores phone under name. An existing entry is overwritten in place
// unless the store is strict.
func (s *Store) Add(name, phone string) error {
	if _, ok := s.phones[name]; ok {
		if s.strict {
			return ErrExists
		}
	} else {
		s.order = append(s.order, name)
	}
	s.phones[name] = phone
	return nil
}

// Change replaces the phone of an existing contact.
func (s *Store) Change(name, phone string) error {
	if _, ok := s.phones[name]; !ok {
		return ErrNotFound
	}
	s.phones[name] = phone
	return nil
}

// Phone returns the phone stored for name.
func (s *Store) Phone(name string) (string, error) {
	phone, ok := s.phones[name]
	if !ok {
		return "", ErrNotFound
	}
	return phone, nil
}

// All returns every contact in insertion order.
func (s *Store) All() ([]Contact, error) {
	if len(s.order) == 0 {
		return nil, ErrEmpty
	}
	out := make([]Contact, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Contact{Name: name, Phone: s.phones[name]})
	}
	return out, nil
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.order)
}
