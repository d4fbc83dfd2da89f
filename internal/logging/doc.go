// Package logging provides slog-based logging for the matter CLI.
//
// The default handler produces compact, colorized text for terminals and
// plain text otherwise. A JSON handler is available for machine consumption,
// and MultiHandler fans records out to several handlers at once (used by the
// --log-file flag).
//
// Verbosity maps to levels through [LevelFromVerbosity]: -v enables Debug,
// -vv enables Trace.
package logging
