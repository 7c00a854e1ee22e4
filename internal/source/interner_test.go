package source

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	id1, err := interner.InternString("hello")
	if err != nil {
		t.Fatalf("intern: %v", err)
	}
	if id1 == NoSymbol {
		t.Fatal("Intern must not return NoSymbol")
	}
	if id1 != SymbolStride {
		t.Errorf("first handle = %d, want %d", id1, SymbolStride)
	}

	id2, _ := interner.InternString("hello")
	if id1 != id2 {
		t.Errorf("same text must map to one handle: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "hello" {
		t.Errorf("Lookup = %q, %v", s, ok)
	}

	id3, _ := interner.InternString("world")
	if id3 == id1 {
		t.Error("distinct texts must get distinct handles")
	}
	if interner.Len() != 2 {
		t.Errorf("Len = %d, want 2", interner.Len())
	}
}

func TestInternerStride(t *testing.T) {
	interner := NewInterner()
	cases := []struct {
		text string
		want SymbolID
	}{
		{"a", 16},
		{"exactly_sixteen_", 32},
		{"seventeen_bytes__", 48},
		{"b", 80},
	}
	for _, tc := range cases {
		id, err := interner.InternString(tc.text)
		if err != nil {
			t.Fatalf("intern %q: %v", tc.text, err)
		}
		if id != tc.want {
			t.Errorf("handle(%q) = %d, want %d", tc.text, id, tc.want)
		}
		if id%SymbolStride != 0 {
			t.Errorf("handle %d is not stride aligned", id)
		}
	}
	if got := interner.HighWater(); got != 96 {
		t.Errorf("HighWater = %d, want 96", got)
	}
}

func TestInternerHighWaterMonotonic(t *testing.T) {
	interner := NewInterner()
	prev := interner.HighWater()
	for _, s := range []string{"x", "y", "x", "longer_identifier", "y"} {
		if _, err := interner.InternString(s); err != nil {
			t.Fatal(err)
		}
		if hw := interner.HighWater(); hw < prev {
			t.Fatalf("high-water mark went down: %d -> %d", prev, hw)
		} else {
			prev = hw
		}
	}
}

func TestInternerWordIsPackedSpelling(t *testing.T) {
	interner := NewInterner()
	id, _ := interner.InternString("func")
	var buf [8]byte
	copy(buf[:], "func")
	want := binary.LittleEndian.Uint64(buf[:])
	if got := interner.Word(id); got != want {
		t.Errorf("Word = %#x, want %#x", got, want)
	}
	if want != 0x00000000636e7566 {
		t.Errorf("packed 'func' = %#x", want)
	}
}

func TestInternerArenaFull(t *testing.T) {
	// одна зарезервированная страйда + две свободные
	interner := NewInternerSize(3 * SymbolStride)
	if _, err := interner.InternString("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := interner.InternString("b"); err != nil {
		t.Fatal(err)
	}
	_, err := interner.InternString("c")
	if !errors.Is(err, ErrArenaFull) {
		t.Fatalf("expected ErrArenaFull, got %v", err)
	}
	// existing symbols still resolve without space
	if _, err := interner.InternString("a"); err != nil {
		t.Fatalf("re-intern of existing symbol failed: %v", err)
	}
}

func TestInternerOversizedSymbol(t *testing.T) {
	interner := NewInternerSize(4 * SymbolStride)
	_, err := interner.InternString(strings.Repeat("z", 100))
	if !errors.Is(err, ErrArenaFull) {
		t.Fatalf("expected ErrArenaFull, got %v", err)
	}
}

func TestInternerTypes(t *testing.T) {
	interner := NewInterner()
	id, _ := interner.InternString("point")
	if interner.TypeOf(id) != NoType {
		t.Fatal("fresh symbol must have no type")
	}
	if !interner.SetType(id, 13) {
		t.Fatal("SetType failed on a valid handle")
	}
	if got := interner.TypeOf(id); got != 13 {
		t.Errorf("TypeOf = %d, want 13", got)
	}
	if interner.SetType(SymbolID(9999), 1) {
		t.Error("SetType must fail for unknown handles")
	}
}

func TestInternerStringCopy(t *testing.T) {
	interner := NewInterner()
	buf := []byte("original")
	id, _ := interner.Intern(buf)
	buf[0] = 'X'
	if s, ok := interner.Lookup(id); !ok || s != "original" {
		t.Errorf("interner must keep its own copy, got %q", s)
	}
}

func TestInternerSnapshotOrder(t *testing.T) {
	interner := NewInterner()
	for _, s := range []string{"c", "a", "b", "a"} {
		_, _ = interner.InternString(s)
	}
	got := strings.Join(interner.Snapshot(), ",")
	if got != "c,a,b" {
		t.Errorf("Snapshot = %s, want c,a,b", got)
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	interner := NewInterner()
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup must panic for invalid handles")
		}
	}()
	interner.MustLookup(SymbolID(9999))
}

func BenchmarkInternerInternDuplicate(b *testing.B) {
	interner := NewInterner()
	sym := []byte("duplicate_symbol")
	_, _ = interner.Intern(sym)

	b.ResetTimer()
	for b.Loop() {
		_, _ = interner.Intern(sym)
	}
}
