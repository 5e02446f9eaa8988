// Package errors provides error handling conventions for the dotconf CLI.
//
// The package re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so the rest of the module imports a single
// errors package, defines sentinel errors for common failure conditions,
// and an ExitError type carrying an exit code and optional suggestion.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check your config file")
//	os.Exit(errors.ExitCode(err))
package errors
