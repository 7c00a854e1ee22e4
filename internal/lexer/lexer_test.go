package lexer_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"cscan/internal/diag"
	"cscan/internal/dialect"
	"cscan/internal/lexer"
	"cscan/internal/source"
	"cscan/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// ErrorCount возвращает количество ошибок
func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

// ErrorMessages возвращает список сообщений (для вывода в t.Fatalf)
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string, opts lexer.Options) (*lexer.Lexer, *testReporter) {
	reporter := &testReporter{}
	opts.Reporter = reporter
	return lexer.New(strings.NewReader(input), opts), reporter
}

// collectAllTokens собирает все токены до EOF (EOF не включается)
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for tok := range lx.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// expectTokens проверяет последовательность видов токенов без ошибок
func expectTokens(t *testing.T, input string, d dialect.Kind, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input, lexer.Options{Dialect: d})
	tokens := collectAllTokens(lx)

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input, lexer.Options{})
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Fatalf("%q: expected kind %v, got %v (errors: %v)", input, expectedKind, tok.Kind, reporter.ErrorMessages())
	}
	if tok.Text != expectedText {
		t.Errorf("%q: expected text %q, got %q", input, expectedText, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("%q: expected EOF after single token, got %v(%q)", input, next.Kind, next.Text)
	}
	return tok
}

// expectFatal проверяет, что вход даёт ошибку с кодом и ни одного токена
func expectFatal(t *testing.T, input string, code diag.Code) *lexer.Error {
	t.Helper()
	lx, reporter := makeTestLexer(input, lexer.Options{})
	tokens := collectAllTokens(lx)
	if len(tokens) != 0 {
		t.Fatalf("%q: expected no tokens, got %v", input, tokensToString(tokens))
	}
	var lexErr *lexer.Error
	if !errors.As(lx.Err(), &lexErr) {
		t.Fatalf("%q: expected *lexer.Error, got %v", input, lx.Err())
	}
	if lexErr.Code != code {
		t.Fatalf("%q: expected %s, got %s (%v)", input, code.ID(), lexErr.Code.ID(), reporter.ErrorMessages())
	}
	if reporter.ErrorCount() != 1 {
		t.Fatalf("%q: expected exactly one error, got %v", input, reporter.ErrorMessages())
	}
	return lexErr
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func floatClose(got, want float64) bool {
	if want == 0 {
		return got == 0
	}
	return math.Abs(got-want) <= 1e-9*math.Abs(want)
}

// ====== Пустой вход и пробелы ======

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\r\n "} {
		lx, reporter := makeTestLexer(input, lexer.Options{})
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("%q: expected EOF, got %v", input, tok.Kind)
		}
		if lx.Err() != nil || len(reporter.diagnostics) != 0 {
			t.Fatalf("%q: unexpected diagnostics %v", input, reporter.ErrorMessages())
		}
		// EOF повторяется
		if lx.Next().Kind != token.EOF {
			t.Fatalf("%q: EOF must repeat", input)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	lx, _ := makeTestLexer("a\n\nb c\n  42", lexer.Options{})
	tokens := collectAllTokens(lx)
	want := []uint32{1, 3, 3, 4}
	if len(tokens) != len(want) {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Span.Line != want[i] {
			t.Errorf("token %d (%q): line %d, want %d", i, tok.Text, tok.Span.Line, want[i])
		}
	}
	if tokens[3].Span.Start != 9 || tokens[3].Span.End != 11 {
		t.Errorf("span of 42 = %+v", tokens[3].Span)
	}
}

// ====== Идентификаторы и ключевые слова ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Ident},
		{"_bar", token.Ident},
		{"_", token.Ident},
		{"x123", token.Ident},
		{"Func", token.Ident},
		{"func2", token.Ident},
		{"func", token.KwFunc},
		{"volatile", token.KwVolatile},
		{"volatiles", token.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := expectSingleToken(t, tt.input, tt.kind, tt.input)
			if tt.kind == token.Ident && tok.Sym == source.NoSymbol {
				t.Fatalf("identifier %q has no symbol", tt.input)
			}
			if tt.kind != token.Ident && tok.Sym != source.NoSymbol {
				t.Fatalf("keyword %q must not be interned", tt.input)
			}
		})
	}
}

func TestIdentifiersShareSymbols(t *testing.T) {
	lx, _ := makeTestLexer("alpha beta alpha", lexer.Options{})
	tokens := collectAllTokens(lx)
	if tokens[0].Sym != tokens[2].Sym || tokens[0].Sym == tokens[1].Sym {
		t.Fatalf("symbols: %d %d %d", tokens[0].Sym, tokens[1].Sym, tokens[2].Sym)
	}
	if lx.Symbols().Len() != 2 {
		t.Fatalf("interned %d symbols, want 2", lx.Symbols().Len())
	}
	if got := lx.Symbols().MustLookup(tokens[1].Sym); got != "beta" {
		t.Fatalf("lookup = %q", got)
	}
}

func TestKeywordsPerDialect(t *testing.T) {
	expectTokens(t, "end include global", dialect.Classic,
		[]token.Kind{token.KwEnd})
	expectTokens(t, "include global xor of", dialect.Classic,
		[]token.Kind{token.KwInclude, token.Ident, token.Ident, token.Ident})
	expectTokens(t, "end include global xor of packet where inline object", dialect.Extended,
		[]token.Kind{token.Ident, token.Ident, token.KwGlobal, token.KwXor, token.KwOf,
			token.KwPacket, token.KwWhere, token.KwInline, token.KwObject})
}

func TestEndMarkerStopsScan(t *testing.T) {
	lx, reporter := makeTestLexer("x = 1 end @@@ garbage", lexer.Options{})
	tokens := collectAllTokens(lx)
	last := tokens[len(tokens)-1]
	if last.Kind != token.KwEnd {
		t.Fatalf("expected KwEnd last, got %v", tokensToString(tokens))
	}
	if lx.Err() != nil || len(reporter.diagnostics) != 0 {
		t.Fatalf("nothing after end may be scanned: %v", reporter.ErrorMessages())
	}
}

func TestSymbolTruncation(t *testing.T) {
	exact := strings.Repeat("a", 32)
	tok := expectSingleToken(t, exact, token.Ident, exact)
	if tok.Span.Len() != 32 {
		t.Fatalf("span len %d", tok.Span.Len())
	}

	long := strings.Repeat("b", 32) + "c"
	lx, reporter := makeTestLexer(long+" "+strings.Repeat("b", 32), lexer.Options{})
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	if tokens[0].Text != strings.Repeat("b", 32) || tokens[0].Span.Len() != 33 {
		t.Fatalf("truncated token = %q span %+v", tokens[0].Text, tokens[0].Span)
	}
	if tokens[0].Sym != tokens[1].Sym {
		t.Fatal("truncated identifier must collide with its 32-byte prefix")
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexSymbolTruncated ||
		reporter.diagnostics[0].Severity != diag.SevWarning {
		t.Fatalf("expected one truncation warning, got %v", reporter.ErrorMessages())
	}
	if lx.Err() != nil {
		t.Fatalf("warning must not fail the scan: %v", lx.Err())
	}
}

func TestSymbolTruncationStrictAndCustomLimit(t *testing.T) {
	lx, _ := makeTestLexer("abcdef", lexer.Options{MaxSymbolLen: 4, StrictSymbols: true})
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("strict mode must reject, got %v", tok.Kind)
	}
	var lexErr *lexer.Error
	if !errors.As(lx.Err(), &lexErr) || lexErr.Code != diag.LexSymbolTruncated {
		t.Fatalf("Err = %v", lx.Err())
	}

	// ключевое слово распознаётся до усечения
	lx, _ = makeTestLexer("return", lexer.Options{MaxSymbolLen: 4})
	if tok := lx.Next(); tok.Kind != token.KwReturn {
		t.Fatalf("got %v", tok.Kind)
	}
}

func TestSymbolArenaFull(t *testing.T) {
	syms := source.NewInternerSize(3 * source.SymbolStride) // handle 0 + два символа
	lx, _ := makeTestLexer("a b c", lexer.Options{Interner: syms})
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("got %v", tokensToString(tokens))
	}
	var lexErr *lexer.Error
	if !errors.As(lx.Err(), &lexErr) || lexErr.Code != diag.LexSymbolArenaFull {
		t.Fatalf("Err = %v", lx.Err())
	}
}

// ====== Числа ======

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0", 0},
		{"42", 42},
		{"007", 7},
		{"1_000", 1000},
		{"0_5", 5},
		{"0x1A", 26},
		{"0X1a", 26},
		{"0h1A", 26},
		{"0o17", 15},
		{"0q17", 15},
		{"0b101", 5},
		{"0b1010_0101", 0xA5},
		{"0d42", 42},
		{"0b_1", 1},
		{"0xFFFFFFFFFFFFFFFF", math.MaxUint64},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := expectSingleToken(t, tt.input, token.IntLit, tt.input)
			if tok.Int != tt.want {
				t.Fatalf("value = %d, want %d", tok.Int, tt.want)
			}
		})
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3.14", 3.14},
		{"1.5e2", 150},
		{"1.5E+2", 150},
		{"25e-1", 2.5},
		{"1e5", 1e5},
		{"0.000_001", 1e-6},
		{"0x1.8p1", 3.0},
		{"0x1p4", 16},
		{"0b1.1p3", 12},
		{"0o7.4", 7.5},
		{"0b0.01", 0.25},
		{"0xA.8P-1", 5.25},
		{"1e-400", 0},
		{"123456789012345678901234567890.5", 1.2345678901234568e29},
		{"1.7976931348623157e308", math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := expectSingleToken(t, tt.input, token.FloatLit, tt.input)
			if !floatClose(tok.Float, tt.want) {
				t.Fatalf("value = %v, want %v", tok.Float, tt.want)
			}
		})
	}
}

func TestNumberBoundaries(t *testing.T) {
	// точка после числа: диапазон, оператор или поле
	expectTokens(t, "1..5", dialect.Classic, []token.Kind{token.IntLit, token.DotDot, token.IntLit})
	expectTokens(t, "1...5", dialect.Classic, []token.Kind{token.IntLit, token.DotDotDot, token.IntLit})
	expectTokens(t, "1.", dialect.Classic, []token.Kind{token.IntLit, token.Dot})
	expectTokens(t, "1.5..2", dialect.Classic, []token.Kind{token.FloatLit, token.DotDot, token.IntLit})
	expectTokens(t, "x=0x1F;", dialect.Classic,
		[]token.Kind{token.Ident, token.Assign, token.IntLit, token.Semicolon})
	expectTokens(t, "(2)", dialect.Classic, []token.Kind{token.LParen, token.IntLit, token.RParen})
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"0x1g", diag.LexInvalidDigit},
		{"0o8", diag.LexInvalidDigit},
		{"0b102", diag.LexInvalidDigit},
		{"12abc", diag.LexInvalidDigit},
		{"0b1.2", diag.LexInvalidDigit},
		{"0z1", diag.LexBadPrefix},
		{"0e5", diag.LexBadPrefix},
		{"0x", diag.LexBadNumber},
		{"0b_", diag.LexBadNumber},
		{"1.2.3", diag.LexBadNumber},
		{"1.x", diag.LexBadNumber},
		{"1._", diag.LexBadNumber},
		{"1e", diag.LexBadExponent},
		{"1e+", diag.LexBadExponent},
		{"1ex", diag.LexBadExponent},
		{"1e5x", diag.LexBadExponent},
		{"0x1p", diag.LexBadExponent},
		{"0x.8", diag.LexBadNumber},
		{"18446744073709551616", diag.LexNumberOverflow},
		{"0x1_0000_0000_0000_0000", diag.LexNumberOverflow},
		{"1e400", diag.LexNumberOverflow},
		{"0x1p2000", diag.LexNumberOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectFatal(t, tt.input, tt.code)
		})
	}
}

// ====== Операторы ======

func TestOperatorsMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<<=", token.ShlAssign}, {"<<", token.Shl}, {"<=", token.LtEq}, {"<", token.Lt},
		{">>=", token.ShrAssign}, {">>", token.Shr}, {">=", token.GtEq}, {">", token.Gt},
		{"...", token.DotDotDot}, {"..", token.DotDot}, {".", token.Dot},
		{":=", token.ColonAssign}, {":", token.Colon},
		{"++", token.PlusPlus}, {"+=", token.PlusAssign}, {"+", token.Plus},
		{"--", token.MinusMinus}, {"->", token.Arrow}, {"-=", token.MinusAssign}, {"-", token.Minus},
		{"==", token.EqEq}, {"=", token.Assign},
		{"!=", token.BangEq}, {"!", token.Bang},
		{"&=", token.AmpAssign}, {"&", token.Amp},
		{"~=", token.TildeAssign}, {"~", token.Tilde},
		{"|=", token.PipeAssign}, {"|", token.Pipe},
		{"*=", token.StarAssign}, {"*", token.Star},
		{"/=", token.SlashAssign}, {"/", token.Slash},
		{"%=", token.PercentAssign}, {"%", token.Percent},
		{"?=", token.QuestionAssign}, {"?", token.Question},
		{"^", token.Caret},
		{";", token.Semicolon}, {"(", token.LParen}, {")", token.RParen},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperatorSequences(t *testing.T) {
	expectTokens(t, "a<<=b", dialect.Classic, []token.Kind{token.Ident, token.ShlAssign, token.Ident})
	expectTokens(t, "++x--", dialect.Classic, []token.Kind{token.PlusPlus, token.Ident, token.MinusMinus})
	expectTokens(t, "a->b", dialect.Classic, []token.Kind{token.Ident, token.Arrow, token.Ident})
	expectTokens(t, "+++", dialect.Classic, []token.Kind{token.PlusPlus, token.Plus})
	expectTokens(t, "====", dialect.Classic, []token.Kind{token.EqEq, token.EqEq})
	expectTokens(t, "^p", dialect.Classic, []token.Kind{token.Caret, token.Ident})
}

func TestDiamondNotEqual(t *testing.T) {
	expectTokens(t, "a<>b", dialect.Extended, []token.Kind{token.Ident, token.BangEq, token.Ident})
	expectTokens(t, "a<>b", dialect.Classic, []token.Kind{token.Ident, token.Lt, token.Gt, token.Ident})
	// `<<` сильнее `<>`
	expectTokens(t, "<<>", dialect.Extended, []token.Kind{token.Shl, token.Gt})
}

func TestOperatorPrecedence(t *testing.T) {
	lx, _ := makeTestLexer("a = b + c * d << e", lexer.Options{})
	var precs []token.Prec
	for tok := range lx.All() {
		if tok.IsOperator() {
			precs = append(precs, tok.Prec())
		}
	}
	want := []token.Prec{token.PrecAssign, token.PrecAdditive, token.PrecMultiplicative, token.PrecShift}
	for i := range want {
		if precs[i] != want[i] {
			t.Fatalf("precs = %v, want %v", precs, want)
		}
	}
}

// ====== Строки и символы ======

func TestStringAndCharLiterals(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `""`, token.StringLit, `""`)
	expectSingleToken(t, `"a\"b"`, token.StringLit, `"a\"b"`)
	expectSingleToken(t, `'x'`, token.CharLit, `'x'`)
	expectSingleToken(t, `'\''`, token.CharLit, `'\''`)
	expectTokens(t, `s = "a b" ;`, dialect.Classic,
		[]token.Kind{token.Ident, token.Assign, token.StringLit, token.Semicolon})
}

func TestUnterminatedLiterals(t *testing.T) {
	expectFatal(t, `"abc`, diag.LexUnterminatedString)
	expectFatal(t, "\"abc\ndef\"", diag.LexUnterminatedString)
	expectFatal(t, `"abc\`, diag.LexUnterminatedString)
	expectFatal(t, `'a`, diag.LexUnterminatedChar)
}

// ====== Ошибки и режимы ======

func TestUnknownCharacter(t *testing.T) {
	lexErr := expectFatal(t, "@", diag.LexUnknownChar)
	if lexErr.Line() != 1 {
		t.Fatalf("line = %d", lexErr.Line())
	}
	expectFatal(t, "\x01", diag.LexUnknownChar)
	expectFatal(t, "é", diag.LexUnknownChar)
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	lx, reporter := makeTestLexer("a b\n0x1g c d", lexer.Options{})
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("expected tokens before the error only, got %v", tokensToString(tokens))
	}
	var lexErr *lexer.Error
	if !errors.As(lx.Err(), &lexErr) || lexErr.Line() != 2 {
		t.Fatalf("Err = %v", lx.Err())
	}
	if reporter.ErrorCount() != 1 {
		t.Fatalf("errors: %v", reporter.ErrorMessages())
	}
	if !strings.Contains(lexErr.Error(), "LEX1006") {
		t.Fatalf("Error() = %q", lexErr.Error())
	}
	if n, errs := lx.Stats(); n != 2 || errs != 1 {
		t.Fatalf("Stats = %d,%d", n, errs)
	}
}

func TestKeepGoing(t *testing.T) {
	lx, reporter := makeTestLexer("a 0x1g b @x c 1.2.3 d", lexer.Options{KeepGoing: true})
	tokens := collectAllTokens(lx)
	var texts []string
	for _, tok := range tokens {
		if tok.Kind == token.Invalid {
			t.Fatal("Invalid token leaked")
		}
		texts = append(texts, tok.Text)
	}
	if strings.Join(texts, " ") != "a b c d" {
		t.Fatalf("tokens = %v", tokensToString(tokens))
	}
	if reporter.ErrorCount() != 3 {
		t.Fatalf("errors: %v", reporter.ErrorMessages())
	}
	var lexErr *lexer.Error
	if !errors.As(lx.Err(), &lexErr) || lexErr.Code != diag.LexInvalidDigit {
		t.Fatalf("Err must be the first error, got %v", lx.Err())
	}
}

func TestTokenTooLong(t *testing.T) {
	lx, reporter := makeTestLexer(strings.Repeat("a", 65)+" b", lexer.Options{MaxTokenLen: 64, MaxSymbolLen: 100})
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	if reporter.diagnostics[0].Code != diag.LexTokenTooLong {
		t.Fatalf("got %v", reporter.ErrorMessages())
	}

	lx, reporter = makeTestLexer(strings.Repeat("a", 64), lexer.Options{MaxTokenLen: 64, MaxSymbolLen: 100})
	if tok := lx.Next(); tok.Kind != token.Ident || len(tok.Text) != 64 {
		t.Fatalf("token at the limit must pass, got %v (%v)", tok.Kind, reporter.ErrorMessages())
	}
}

func TestBOMIsSkipped(t *testing.T) {
	lx, _ := makeTestLexer("\xEF\xBB\xBFfunc", lexer.Options{})
	tok := lx.Next()
	if tok.Kind != token.KwFunc || tok.Span.Start != 3 {
		t.Fatalf("got %v at %+v", tok.Kind, tok.Span)
	}
	if !lx.HadBOM() {
		t.Fatal("HadBOM must be set")
	}
}

func TestAllStopsEarly(t *testing.T) {
	lx, _ := makeTestLexer("a b c d", lexer.Options{})
	n := 0
	for range lx.All() {
		n++
		if n == 2 {
			break
		}
	}
	if tok := lx.Next(); tok.Text != "c" {
		t.Fatalf("sequence must share lexer state, next = %q", tok.Text)
	}
}

func TestClassicProgram(t *testing.T) {
	src := "func main ( ) ;\n" +
		"  let x := 0x10 ;\n" +
		"  while x >= 1 do x -= 1 ;\n" +
		"  return x <<= 2 ;\n" +
		"end\n"
	expectTokens(t, src, dialect.Classic, []token.Kind{
		token.KwFunc, token.Ident, token.LParen, token.RParen, token.Semicolon,
		token.KwLet, token.Ident, token.ColonAssign, token.IntLit, token.Semicolon,
		token.KwWhile, token.Ident, token.GtEq, token.IntLit, token.KwDo, token.Ident, token.MinusAssign, token.IntLit, token.Semicolon,
		token.KwReturn, token.Ident, token.ShlAssign, token.IntLit, token.Semicolon,
		token.KwEnd,
	})
}

func BenchmarkLexer(b *testing.B) {
	src := strings.Repeat("func f ( x ) ; let y := x * 0x1F + 3.25e1 ; return y <<= 2 ;\n", 200)
	b.SetBytes(int64(len(src)))
	for b.Loop() {
		lx := lexer.New(strings.NewReader(src), lexer.Options{})
		for range lx.All() {
		}
	}
}
