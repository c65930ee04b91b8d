package operation

import (
	"iter"
	"sync"
)

// Registry holds the authoritative set of operations, keyed by exact name
// and kept in registration order.
// It is populated at startup and only read afterwards; the lock makes an
// entry visible to readers as soon as Register returns.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Build creates a registry holding entries in the given order. It is
// all-or-nothing: if any entry is invalid or duplicated, no registry is
// returned.
func Build(entries ...Entry) (*Registry, error) {
	r := NewRegistry()
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds an entry. It fails with DuplicateOperation if the name is
// taken and with InvalidSignature if the entry is malformed. A failed call
// leaves the registry unchanged.
func (r *Registry) Register(entry Entry) error {
	if err := entry.validate(); err != nil {
		return err
	}
	entry.Signature = entry.Signature.clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[entry.Name]; exists {
		return newError(DuplicateOperation, entry.Name, "", "")
	}
	r.index[entry.Name] = len(r.entries)
	r.entries = append(r.entries, entry)
	return nil
}

// Lookup returns the entry registered under name. Names are matched exactly.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Entry{}, Unknown(name)
	}
	return r.entries[i], nil
}

// Has reports whether an operation with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]
	return ok
}

// List yields every registered signature in registration order. The
// sequence can be ranged over any number of times; each pass reads a
// snapshot taken when it starts.
func (r *Registry) List() iter.Seq[Signature] {
	return func(yield func(Signature) bool) {
		r.mu.RLock()
		snapshot := r.entries[:len(r.entries):len(r.entries)]
		r.mu.RUnlock()

		for _, e := range snapshot {
			if !yield(e.Signature.clone()) {
				return
			}
		}
	}
}

// Names returns the registered operation names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
