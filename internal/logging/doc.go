// Package logging provides structured logging for the dotconf CLI using slog.
//
// Logs always go to stderr (or a --log-file); stdout is reserved for the
// suggestion payload a launcher reads. The text handler is colorized on a
// TTY and masks secret-looking attribute values.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("store written", "path", path)
//
// For tests, use [ForTest] to capture log output via the testing framework.
package logging
