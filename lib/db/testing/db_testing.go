package testing

import (
	"fmt"
	"github.com/ValentinKolb/dRec/lib/db"
	"slices"
	"testing"
)

// TableFactory is a function that creates a new, empty instance of a Table implementation
type TableFactory func() db.Table[string]

// RunTableTests runs a comprehensive test suite for a Table implementation.
func RunTableTests(t *testing.T, name string, factory TableFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory())
		})

		t.Run("Has", func(t *testing.T) {
			testHas(t, factory())
		})

		t.Run("InsertionOrder", func(t *testing.T) {
			testInsertionOrder(t, factory())
		})

		t.Run("Range", func(t *testing.T) {
			testRange(t, factory())
		})

		t.Run("EntriesFill", func(t *testing.T) {
			testEntriesFill(t, factory)
		})

		t.Run("EdgeCases", func(t *testing.T) {
			testEdgeCases(t, factory())
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testRealisticUsage(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, table db.Table[string]) {
	testKey := "test-key"

	table.Set(testKey, "test-value1")

	result, exists := table.Get(testKey)
	if !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if result != "test-value1" {
		t.Errorf("Expected value %s, got %s", "test-value1", result)
	}

	table.Set(testKey, "test-value2")

	result, exists = table.Get(testKey)
	if !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if result != "test-value2" {
		t.Errorf("Expected value %s, got %s", "test-value2", result)
	}

	if table.Len() != 1 {
		t.Errorf("Expected Len 1 after overwriting a key, got %d", table.Len())
	}

	if _, exists = table.Get("nonexistent-key"); exists {
		t.Errorf("Expected nonexistent key to return exists=false")
	}
}

func testDelete(t *testing.T, table db.Table[string]) {
	table.Set("delete-key", "value")
	table.Set("other-key", "value")

	table.Delete("delete-key")

	if _, exists := table.Get("delete-key"); exists {
		t.Errorf("Expected key to be deleted")
	}
	if table.Len() != 1 {
		t.Errorf("Expected Len 1 after Delete, got %d", table.Len())
	}
	if keys := table.Keys(); !slices.Equal(keys, []string{"other-key"}) {
		t.Errorf("Expected keys [other-key] after Delete, got %v", keys)
	}

	// deleting a missing key must not panic or change anything
	table.Delete("nonexistent-key")
	if table.Len() != 1 {
		t.Errorf("Expected Len 1 after deleting a missing key, got %d", table.Len())
	}
}

func testHas(t *testing.T, table db.Table[string]) {
	if table.Has("has-key") {
		t.Errorf("Expected Has to return false before Set")
	}

	table.Set("has-key", "")
	if !table.Has("has-key") {
		t.Errorf("Expected Has to return true for a key with an empty value")
	}

	table.Delete("has-key")
	if table.Has("has-key") {
		t.Errorf("Expected Has to return false after Delete")
	}
}

func testInsertionOrder(t *testing.T, table db.Table[string]) {
	for _, key := range []string{"c", "a", "b"} {
		table.Set(key, "v-"+key)
	}

	// replacing keeps the position
	table.Set("a", "v-a2")
	if keys := table.Keys(); !slices.Equal(keys, []string{"c", "a", "b"}) {
		t.Errorf("Expected order [c a b] after replace, got %v", keys)
	}

	// delete + set moves the key to the end
	table.Delete("c")
	table.Set("c", "v-c2")
	if keys := table.Keys(); !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("Expected order [a b c] after re-insert, got %v", keys)
	}

	// the returned key slice is a copy
	keys := table.Keys()
	keys[0] = "mutated"
	if table.Keys()[0] != "a" {
		t.Errorf("Expected Keys to return a copy")
	}
}

func testRange(t *testing.T, table db.Table[string]) {
	for i := 0; i < 5; i++ {
		table.Set(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
	}

	var visited []string
	table.Range(func(key string, value string) bool {
		if value != "v"+key[1:] {
			t.Errorf("Range passed value %s for key %s", value, key)
		}
		visited = append(visited, key)
		return true
	})
	if !slices.Equal(visited, []string{"k0", "k1", "k2", "k3", "k4"}) {
		t.Errorf("Range visited %v", visited)
	}

	// stop early
	count := 0
	table.Range(func(string, string) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("Expected Range to stop after 2 entries, visited %d", count)
	}
}

func testEntriesFill(t *testing.T, factory TableFactory) {
	table := factory()
	table2 := factory()

	numEntries := 1000
	for i := 0; i < numEntries; i++ {
		table.Set(fmt.Sprintf("entries-key-%d", numEntries-i), fmt.Sprintf("entries-value-%d", i))
	}

	entries := db.Entries(table)
	if len(entries) != numEntries {
		t.Fatalf("Expected %d entries, got %d", numEntries, len(entries))
	}

	db.Fill(table2, entries)

	if !slices.Equal(table.Keys(), table2.Keys()) {
		t.Errorf("Key order differs after Entries/Fill")
	}
	table.Range(func(key string, value string) bool {
		if got, ok := table2.Get(key); !ok || got != value {
			t.Errorf("Value mismatch for key %s: expected %s, got %s", key, value, got)
		}
		return true
	})

	// duplicate keys keep the first position and the last value
	table3 := factory()
	db.Fill(table3, []db.Entry[string]{{Key: "x", Value: "1"}, {Key: "y", Value: "2"}, {Key: "x", Value: "3"}})
	if keys := table3.Keys(); !slices.Equal(keys, []string{"x", "y"}) {
		t.Errorf("Expected keys [x y], got %v", keys)
	}
	if v, _ := table3.Get("x"); v != "3" {
		t.Errorf("Expected last value 3 for duplicate key, got %s", v)
	}
}

func testEdgeCases(t *testing.T, table db.Table[string]) {
	// empty key
	table.Set("", "empty-key-value")
	if v, ok := table.Get(""); !ok || v != "empty-key-value" {
		t.Errorf("Expected the empty key to be stored")
	}

	// keys with separators and unicode
	for _, key := range []string{"a,b", "ü-ß", " space ", "line\nbreak"} {
		table.Set(key, key)
		if v, ok := table.Get(key); !ok || v != key {
			t.Errorf("Expected key %q to round trip", key)
		}
	}

	// delete everything while iterating over the copied key slice
	for _, key := range table.Keys() {
		table.Delete(key)
	}
	if table.Len() != 0 || len(table.Keys()) != 0 {
		t.Errorf("Expected an empty table after deleting all keys")
	}
	if info := table.GetInfo(); info.Entries != 0 {
		t.Errorf("Expected GetInfo().Entries == 0, got %d", info.Entries)
	}
}

func testRealisticUsage(t *testing.T, table db.Table[string]) {
	// a small roster with updates and removals, as the tools use it
	students := []string{"S1", "S2", "S3", "S4"}
	for _, s := range students {
		table.Set(s, "courses-"+s)
	}

	table.Set("S2", "courses-S2-updated")
	table.Delete("S3")
	table.Set("S5", "courses-S5")

	expected := []string{"S1", "S2", "S4", "S5"}
	if keys := table.Keys(); !slices.Equal(keys, expected) {
		t.Errorf("Expected keys %v, got %v", expected, keys)
	}
	if v, _ := table.Get("S2"); v != "courses-S2-updated" {
		t.Errorf("Expected updated value for S2, got %s", v)
	}
	if info := table.GetInfo(); info.Entries != len(expected) {
		t.Errorf("Expected GetInfo().Entries == %d, got %d", len(expected), info.Entries)
	}
}
