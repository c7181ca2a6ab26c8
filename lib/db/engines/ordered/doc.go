// Package ordered implements db.Table with a plain map for lookups and a key
// slice for insertion order. Lookups are O(1), deletes are O(n) in the number
// of keys, which is irrelevant at the size of a class roster or exam catalog.
//
// The table is intentionally not synchronized: the tools are single-process,
// single-user programs and own their tables exclusively.
package ordered
