package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"cscan/internal/source"
	"cscan/internal/token"
)

// TokenOutput is the serialized form of one token, shared by the JSON and
// msgpack encodings.
type TokenOutput struct {
	Kind  string   `json:"kind" msgpack:"kind"`
	Text  string   `json:"text,omitempty" msgpack:"text,omitempty"`
	Line  uint32   `json:"line" msgpack:"line"`
	Start uint32   `json:"start" msgpack:"start"`
	End   uint32   `json:"end" msgpack:"end"`
	Sym   uint32   `json:"sym,omitempty" msgpack:"sym,omitempty"`
	Int   *uint64  `json:"int,omitempty" msgpack:"int,omitempty"`
	Float *float64 `json:"float,omitempty" msgpack:"float,omitempty"`
	Prec  string   `json:"prec,omitempty" msgpack:"prec,omitempty"`
}

// TokenStream is the document written by `cscan tokenize --format json|msgpack`.
type TokenStream struct {
	File    string        `json:"file" msgpack:"file"`
	Dialect string        `json:"dialect" msgpack:"dialect"`
	Tokens  []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// NewTokenOutput converts a token; EOF is kept so a stream always ends
// explicitly.
func NewTokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind:  tok.Kind.String(),
		Text:  tok.Text,
		Line:  tok.Span.Line,
		Start: tok.Span.Start,
		End:   tok.Span.End,
		Sym:   uint32(tok.Sym),
	}
	switch tok.Kind {
	case token.IntLit:
		v := tok.Int
		out.Int = &v
	case token.FloatLit:
		v := tok.Float
		out.Float = &v
	}
	if p := tok.Prec(); p != token.PrecNone {
		out.Prec = p.String()
	}
	return out
}

// BuildTokenStream collects tokens up to and including the first EOF.
func BuildTokenStream(file, dialect string, tokens []token.Token) TokenStream {
	stream := TokenStream{File: file, Dialect: dialect, Tokens: make([]TokenOutput, 0, len(tokens))}
	for _, tok := range tokens {
		stream.Tokens = append(stream.Tokens, NewTokenOutput(tok))
		if tok.Kind == token.EOF {
			break
		}
	}
	return stream
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, syms *source.Interner) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%4d: %-14s line %-4d", i+1, tok.Kind.String(), tok.Span.Line); err != nil {
			return err
		}
		var err error
		switch tok.Kind {
		case token.IntLit:
			_, err = fmt.Fprintf(w, " %q = %d", tok.Text, tok.Int)
		case token.FloatLit:
			_, err = fmt.Fprintf(w, " %q = %g", tok.Text, tok.Float)
		case token.Ident:
			name := tok.Text
			if syms != nil {
				if s, ok := syms.Lookup(tok.Sym); ok {
					name = s
				}
			}
			_, err = fmt.Fprintf(w, " %s #%d", name, tok.Sym)
		default:
			if tok.Text != "" {
				_, err = fmt.Fprintf(w, " %q", tok.Text)
			}
		}
		if err != nil {
			return err
		}
		if p := tok.Prec(); p != token.PrecNone {
			if _, err := fmt.Fprintf(w, " (%s)", p); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, stream TokenStream) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stream)
}

// FormatTokensMsgpack пишет поток токенов в msgpack.
func FormatTokensMsgpack(w io.Writer, stream TokenStream) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(&stream)
}

// DecodeTokensMsgpack reads a stream written by FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) (TokenStream, error) {
	var stream TokenStream
	if err := msgpack.NewDecoder(r).Decode(&stream); err != nil {
		return TokenStream{}, err
	}
	return stream, nil
}

// WriteLegacy prints the inspection trace of `cscan scan`: integer literals
// as "value: <decimal>", float literals as "float: <%f>". Other tokens
// print nothing.
func WriteLegacy(w io.Writer, tok token.Token) error {
	var err error
	switch tok.Kind {
	case token.IntLit:
		_, err = fmt.Fprintf(w, "value: %d\n", tok.Int)
	case token.FloatLit:
		_, err = fmt.Fprintf(w, "float: %f\n", tok.Float)
	}
	return err
}
