package dialect

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]Kind{
		"":          Classic,
		"classic":   Classic,
		"C":         Classic,
		" extended": Extended,
		"cc":        Extended,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := Parse("rust"); err == nil {
		t.Error("expected error for unknown dialect")
	}
}

func TestNormalizeAndDiamond(t *testing.T) {
	if Unknown.Normalize() != Classic {
		t.Error("Unknown must normalize to Classic")
	}
	if Classic.HasDiamondNotEqual() {
		t.Error("classic dialect has no <> operator")
	}
	if !Extended.HasDiamondNotEqual() {
		t.Error("extended dialect spells not-equal as <>")
	}
}
