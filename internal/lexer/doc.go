// Package lexer implements the streaming scanner: a Cursor over an
// io.Reader, one scan function per lexical class and a Lexer that yields one
// token per Next call.
//
// Errors are reported through diag.Reporter. By default the first error
// ends the scan (Next returns EOF, Err returns *Error); Options.KeepGoing
// resumes after the next whitespace instead. Malformed lexemes never reach
// the caller as tokens.
package lexer
