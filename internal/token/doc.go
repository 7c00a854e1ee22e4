// Package token defines lexical token kinds, keyword tables and operator
// precedence classes for the cscan scanner.
// Invariants:
//   - Token.Text holds the raw lexeme (after truncation for long identifiers).
//   - Token.Span covers the bytes consumed from the stream, Line is the line
//     of the first byte.
//   - Keywords are recognised by comparing the packed little-endian word of a
//     candidate of at most 8 bytes; matching is case-sensitive.
//   - `;` `(` `)` are punctuation and carry no precedence.
package token
