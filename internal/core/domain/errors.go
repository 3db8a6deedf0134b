package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedCommand is returned when a compilation database command string violates the escaping grammar.
	ErrMalformedCommand = zerr.New("improperly escaped command")

	// ErrMissingCommand is returned when a record has neither "arguments" nor a usable "command".
	ErrMissingCommand = zerr.New("compilation database entry has no command")

	// ErrUnsupportedTranslationUnit is returned when a unit's arguments cannot be normalized.
	ErrUnsupportedTranslationUnit = zerr.New("unsupported translation unit")

	// ErrDuplicateOutput is returned when two translation units produce the same output file.
	ErrDuplicateOutput = zerr.New("multiple compilation database entries with the same output file")

	// ErrInvalidRecord is returned when a record lacks a required field such as "file" or "directory".
	ErrInvalidRecord = zerr.New("invalid compilation database entry")

	// ErrDatabaseReadFailed is returned when the compilation database file cannot be read.
	ErrDatabaseReadFailed = zerr.New("failed to read compilation database")

	// ErrDatabaseParseFailed is returned when the compilation database is not a JSON array of records.
	ErrDatabaseParseFailed = zerr.New("failed to parse compilation database")

	// ErrPathResolutionFailed is returned when a canonical path cannot be determined.
	ErrPathResolutionFailed = zerr.New("failed to resolve canonical path")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSkipPattern is returned when a skip pattern is not a valid regular expression.
	ErrInvalidSkipPattern = zerr.New("invalid skip pattern")

	// ErrComputationPanicked is returned by a memoized value whose computation panicked.
	ErrComputationPanicked = zerr.New("derived value computation panicked")

	// ErrUnknownFormat is returned when an unsupported output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'json', 'yaml', 'shell' or 'command'")
)
