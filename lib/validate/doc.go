// Package validate checks the input of mutation operations.
//
// It wraps a single go-playground validator instance with English error
// messages. Input structs are annotated with `validate` tags; besides the
// built-in tags three custom field tags are available:
//
//   - notblank: the string must contain something other than whitespace
//   - grade: the string must parse as a finite float (see ParseGrade)
//   - linesafe: the string contains no comma and no line break
//
// Rules spanning several fields are added with RegisterRule. Struct returns a
// *store.Error with code RetCValidationFailed, so callers can hand the result
// straight back to the CLI.
//
// Field names in messages come from the `name` struct tag and default to the
// lower-cased Go field name.
package validate
