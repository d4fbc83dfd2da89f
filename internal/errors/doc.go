// Package errors provides error handling conventions for the matter CLI.
//
// It re-exports the cockroachdb/errors constructors and predicates so the
// rest of the codebase imports a single errors package, and adds sentinel
// errors for common failure conditions plus an ExitError type carrying an
// exit code and an optional suggestion.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, matterrors.ErrNoDocument) {
//	    // nothing to do; the operation is a no-op
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [Unwrap] and [As]:
//
//	var exitErr *matterrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
