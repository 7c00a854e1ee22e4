// Package diag defines the diagnostic model shared by the scanner, the driver
// and the CLI.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form such as
//     LEX1004 (codes.go).
//   - Message – short, human oriented text.
//   - Primary – the source.Span of the offending lexeme; it carries the line.
//   - Notes – optional secondary spans/messages.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. The lexer builds diagnostics through
// ReportError/ReportWarning and Emit; BagReporter aggregates them into a
// bounded Bag, DedupReporter filters repeats produced while a keep-going scan
// resynchronises.
//
// Package diag performs no IO. Rendering lives in internal/diagfmt; FormatShort
// is the only formatter kept here because tests and golden files compare
// against it.
package diag
