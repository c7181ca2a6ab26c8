package db

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplOrdered Implementation = "ordered"
)

type DatabaseInfo struct {
	Entries  int            `json:"entries"`
	DbType   Implementation `json:"db_type"`
	Metadata interface{}    `json:"metadata"`
}

// Entry is a single key-value pair of a table, used for ordered snapshots
type Entry[V any] struct {
	Key   string `json:"key" yaml:"key"`
	Value V      `json:"value" yaml:"value"`
}

// --------------------------------------------------------------------------
// Table Interface
// --------------------------------------------------------------------------

// Table defines an interface for keyed record tables.
// Keys are unique, and iteration happens in insertion order: a key keeps its
// position when its value is replaced and moves to the end when it is deleted
// and set again.
//
// Implementations are not safe for concurrent use. Callers must not share a
// table between goroutines.
type Table[V any] interface {

	// --------------------------------------------------------------------------
	// Write Operations
	// --------------------------------------------------------------------------

	// Set inserts or replaces the value for key.
	Set(key string, value V)

	// Delete removes the entry with the specified key. Deleting a missing key is a no-op.
	Delete(key string)

	// --------------------------------------------------------------------------
	// Query Operations
	// --------------------------------------------------------------------------

	// Get retrieves the value for an exact key.
	// The boolean return value indicates whether a value for the key was found.
	Get(key string) (value V, loaded bool)

	// Has checks whether a key exists in the table.
	Has(key string) (loaded bool)

	// Keys returns all keys in insertion order. The returned slice is a copy.
	Keys() []string

	// Range calls fn for every entry in insertion order until fn returns false.
	// fn must not modify the table.
	Range(fn func(key string, value V) bool)

	// Len returns the number of entries.
	Len() int

	// GetInfo returns information about the table.
	GetInfo() (info DatabaseInfo)
}

// Entries returns the content of a table as an ordered slice of entries
func Entries[V any](t Table[V]) []Entry[V] {
	entries := make([]Entry[V], 0, t.Len())
	t.Range(func(key string, value V) bool {
		entries = append(entries, Entry[V]{Key: key, Value: value})
		return true
	})
	return entries
}

// Fill sets all entries into the table in slice order.
// A key that appears more than once keeps the position of its first occurrence and the last value.
func Fill[V any](t Table[V], entries []Entry[V]) {
	for _, e := range entries {
		t.Set(e.Key, e.Value)
	}
}
