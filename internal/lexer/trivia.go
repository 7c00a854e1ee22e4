package lexer

// skipWhitespace пропускает ' ', '\t', '\r', '\n'. Перевод строки
// увеличивает счётчик строк внутри Cursor.Bump.
func (lx *Lexer) skipWhitespace() {
	lx.cursor.StopCapture()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// skipToWhitespace drops the rest of a broken lexeme in keep-going mode.
func (lx *Lexer) skipToWhitespace() {
	lx.cursor.StopCapture()
	for !lx.cursor.EOF() && !isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
