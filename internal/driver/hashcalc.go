package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// fingerprint folds every option that changes scan output into a string.
func (o Options) fingerprint() string {
	l := o.Lexer
	return fmt.Sprintf("v%d|%s|sym=%d|tok=%d|strict=%t|keep=%t|arena=%d|diag=%d",
		diskCacheSchemaVersion, l.Dialect.Normalize(), l.MaxSymbolLen, l.MaxTokenLen,
		l.StrictSymbols, l.KeepGoing, o.arenaSize(), o.bagSize())
}

// contentDigest: H(fingerprint || 0 || content).
func contentDigest(r io.Reader, fingerprint string) (Digest, error) {
	h := sha256.New()
	_, _ = io.WriteString(h, fingerprint)
	_, _ = h.Write([]byte{0})
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, err
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out, nil
}
