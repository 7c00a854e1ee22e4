// Package dialect names the two variants of the source language the scanner
// understands. The variants share the token grammar and differ only in their
// reserved words and in whether `<>` spells not-equal.
//
//   - Classic: the original interpreter dialect. Reserves `end` (end of
//     program marker) and `include`.
//   - Extended: the expression-oriented dialect. Reserves `global`, `inline`,
//     `object`, `of`, `packet`, `where`, `xor` and accepts `<>`.
package dialect
