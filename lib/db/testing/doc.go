// Package testing provides standardised tests and benchmarks for
// table implementations that satisfy the db.Table interface.
//
// The package contains:
//   - testing: A test suite for validating conformance to the Table interface contract,
//     including the insertion order guarantees the reports depend on
//   - benchmark: Performance tests for the common table operations
//
// Example usage:
//
//	// Creating a factory function for your implementation
//	factory := func() db.Table[string] {
//		return NewMyTable[string]()
//	}
//
//	// Running the standard test suite
//	dbtesting.RunTableTests(t, "MyTable", factory)
//
//	// Running performance benchmarks
//	dbtesting.RunTableBenchmarks(b, "MyTable", factory)
package testing
