package dialect

import (
	"fmt"
	"strings"
)

// Kind selects a language dialect.
type Kind uint8

const (
	// Unknown is the zero value; scanners treat it as Classic.
	Unknown Kind = iota
	// Classic is the dialect of the plain interpreter front end.
	Classic
	// Extended is the dialect of the expression-tree front end.
	Extended
)

// Default is used when neither flags nor configuration choose a dialect.
const Default = Classic

func (k Kind) String() string {
	switch k {
	case Classic:
		return "classic"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// Normalize maps Unknown to Default.
func (k Kind) Normalize() Kind {
	if k == Unknown {
		return Default
	}
	return k
}

// HasDiamondNotEqual reports whether `<>` is a single not-equal operator.
func (k Kind) HasDiamondNotEqual() bool {
	return k == Extended
}

// Parse converts a flag or config value to a Kind. The empty string yields
// Default.
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Default, nil
	case "classic", "c":
		return Classic, nil
	case "extended", "ext", "cc":
		return Extended, nil
	default:
		return Unknown, fmt.Errorf("invalid dialect %q (expected classic|extended)", s)
	}
}
