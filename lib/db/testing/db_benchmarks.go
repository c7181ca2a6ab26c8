package testing

import (
	"fmt"
	"github.com/ValentinKolb/dRec/lib/db"
	"testing"
)

// RunTableBenchmarks runs all benchmarks for a Table implementation
func RunTableBenchmarks(b *testing.B, name string, factory TableFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Set", func(b *testing.B) {
			benchmarkSet(b, factory())
		})

		b.Run("Get", func(b *testing.B) {
			benchmarkGet(b, factory())
		})

		b.Run("Delete", func(b *testing.B) {
			benchmarkDelete(b, factory())
		})

		b.Run("EntriesFill", func(b *testing.B) {
			benchmarkEntriesFill(b, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

// benchmarkKeys pre-computes keys so fmt does not dominate the measurement
func benchmarkKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("student-%d", i)
	}
	return keys
}

func benchmarkSet(b *testing.B, table db.Table[string]) {
	keys := benchmarkKeys(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Set(keys[i%len(keys)], "value")
	}
}

func benchmarkGet(b *testing.B, table db.Table[string]) {
	keys := benchmarkKeys(1024)
	for _, key := range keys {
		table.Set(key, "value")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Get(keys[i%len(keys)])
	}
}

func benchmarkDelete(b *testing.B, table db.Table[string]) {
	keys := benchmarkKeys(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		table.Set(key, "value")
		table.Delete(key)
	}
}

func benchmarkEntriesFill(b *testing.B, factory TableFactory) {
	table := factory()
	for _, key := range benchmarkKeys(1024) {
		table.Set(key, "value")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		db.Fill(factory(), db.Entries(table))
	}
}
