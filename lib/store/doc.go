// Package store defines the outcome vocabulary shared by all record stores and
// their mutation operations.
//
// Every mutation returns exactly one of three outcomes: applied (nil error),
// not-found or validation-failed. Loading and saving may additionally fail
// with store-unavailable. Outcomes travel as *Error values carrying a RetCode,
// so callers can branch on the code instead of parsing messages:
//
//	if err := book.EditCourse("S1", "Math", "3.7"); errors.Is(err, store.ErrNotFound) {
//		// ...
//	}
//
// Implementations:
//
//	- filestore: reads and writes store files in the data directory. A missing
//	  file is reported as "not found" to the caller, which treats it as an
//	  empty store. Available in the
//	  "github.com/ValentinKolb/dRec/lib/store/filestore" package.
package store
