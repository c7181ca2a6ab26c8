// Package db provides the table abstraction underneath the record stores.
// A Table is a keyed collection that remembers insertion order, which is the
// order every listing and report of the tools follows.
//
// The package focuses on:
//   - A small generic interface (Table) for keyed records
//   - Ordered snapshots (Entries / Fill) so the codecs can persist tables
//     without losing the display order that a plain map would drop
//
// Implementations:
//
//   - ordered: map plus key slice, available in the
//     "github.com/ValentinKolb/dRec/lib/db/engines/ordered" package.
//
// Testing:
//
//	The "github.com/ValentinKolb/dRec/lib/db/testing" package contains a
//	conformance suite that every Table implementation must pass.
package db
