// Package intern provides string interning for go-miniarg
// Used by key sets so every normalized key name has a single canonical copy
package intern

import (
	"sync"
)

// StringInterner provides thread-safe string interning
type StringInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewStringInterner creates a new string interner with optional pre-allocated capacity
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 64 // Default capacity
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern interns a string, returning the canonical version
func (si *StringInterner) Intern(s string) string {
	// Fast path: read lock for common case
	si.mutex.RLock()
	if interned, exists := si.strings[s]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring write lock
	if interned, exists := si.strings[s]; exists {
		return interned
	}

	si.strings[s] = s
	return s
}

var global = NewStringInterner(128)

// Intern interns a string using the process-wide interner shared by key sets
func Intern(s string) string {
	return global.Intern(s)
}
