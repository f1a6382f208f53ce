// Package keylock serializes work per key within one process
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Map hands out one mutex per key. The zero value is ready to use.
// A key's entry lives only while someone holds or waits on it.
type Map struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// Lock blocks until key is free and returns its unlock func
func (m *Map) Lock(key string) func() {
	m.mu.Lock()
	if m.locks == nil {
		m.locks = make(map[string]*entry)
	}
	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.locks, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len reports how many keys are held or waited on
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
