package clientdetect

import "errors"

// ErrStorageRestricted is returned by [FailingStorage] operations when no
// specific error was configured.
var ErrStorageRestricted = errors.New("storage restricted")

// PropertyHolder supports `in`-style property presence checks.
type PropertyHolder interface {
	Has(name string) bool
}

// Storage is a key-value store whose operations may fail under quota or
// privacy restrictions.
type Storage interface {
	Set(key, value string) error
	Remove(key string) error
}

// Node is the single designated root whose class attribute a detector may
// replace during [Detector.Run].
type Node interface {
	SetClassAttribute(classes string)
}

// Environment exposes the collaborators the built-in detection set probes.
// LocalStorage and SessionStorage may return nil when the corresponding
// storage area does not exist in the client.
type Environment interface {
	PropertyHolder
	LocalStorage() Storage
	SessionStorage() Storage
	StyleSupports(property, value string) bool
}

// MapEnvironment is an in-memory [Environment]. It backs tests and
// environments reconstructed from recorded profiles.
type MapEnvironment struct {
	properties map[string]struct{}
	styles     map[string]struct{}
	local      Storage
	session    Storage
}

// NewMapEnvironment creates an empty environment with working in-memory
// storage areas.
func NewMapEnvironment() *MapEnvironment {
	return &MapEnvironment{
		properties: make(map[string]struct{}),
		styles:     make(map[string]struct{}),
		local:      NewMemStorage(),
		session:    NewMemStorage(),
	}
}

// AddProperty marks the named properties as present.
func (e *MapEnvironment) AddProperty(names ...string) {
	for _, name := range names {
		e.properties[name] = struct{}{}
	}
}

// Has reports whether the named property is present.
func (e *MapEnvironment) Has(name string) bool {
	_, ok := e.properties[name]
	return ok
}

// AddStyle marks a property/value pair as supported by the style system.
func (e *MapEnvironment) AddStyle(property, value string) {
	e.styles[styleKey(property, value)] = struct{}{}
}

// StyleSupports reports whether the style system accepts the pair.
func (e *MapEnvironment) StyleSupports(property, value string) bool {
	_, ok := e.styles[styleKey(property, value)]
	return ok
}

// SetLocalStorage replaces the persistent storage area. Pass nil to model
// a client without one.
func (e *MapEnvironment) SetLocalStorage(s Storage) { e.local = s }

// SetSessionStorage replaces the session-scoped storage area. Pass nil to
// model a client without one.
func (e *MapEnvironment) SetSessionStorage(s Storage) { e.session = s }

// LocalStorage returns the persistent storage area, or nil.
func (e *MapEnvironment) LocalStorage() Storage { return e.local }

// SessionStorage returns the session-scoped storage area, or nil.
func (e *MapEnvironment) SessionStorage() Storage { return e.session }

func styleKey(property, value string) string {
	return property + ":" + value
}

// MemStorage is a map-backed [Storage] whose operations never fail.
type MemStorage struct {
	items map[string]string
}

// NewMemStorage creates an empty in-memory storage area.
func NewMemStorage() *MemStorage {
	return &MemStorage{items: make(map[string]string)}
}

func (s *MemStorage) Set(key, value string) error {
	s.items[key] = value
	return nil
}

func (s *MemStorage) Remove(key string) error {
	delete(s.items, key)
	return nil
}

// Get returns a stored value, for inspection in tests.
func (s *MemStorage) Get(key string) (string, bool) {
	v, ok := s.items[key]
	return v, ok
}

// FailingStorage is a [Storage] whose operations always fail, modeling
// quota-exceeded or privacy-restricted clients. The zero value fails with
// [ErrStorageRestricted].
type FailingStorage struct {
	Err error
}

func (s FailingStorage) Set(string, string) error { return s.failure() }

func (s FailingStorage) Remove(string) error { return s.failure() }

func (s FailingStorage) failure() error {
	if s.Err != nil {
		return s.Err
	}
	return ErrStorageRestricted
}
