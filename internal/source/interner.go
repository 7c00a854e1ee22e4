package source

import (
	"encoding/binary"
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// SymbolID is the stable handle of an interned symbol: its byte offset in
// the arena. Offsets are multiples of SymbolStride.
type SymbolID uint32

// TypeID is an opaque type handle attached to a symbol by later phases.
type TypeID uint32

const (
	// NoSymbol is never returned by Intern; the first stride of the arena
	// is reserved for it.
	NoSymbol SymbolID = 0
	// NoType marks a symbol without an attached type.
	NoType TypeID = 0

	// SymbolStride is the alignment of every stored symbol. Text is
	// zero-padded up to the next stride so that the first 8 bytes of a
	// symbol read as a packed little-endian word.
	SymbolStride = 16

	// DefaultArenaSize matches the fixed symbol buffer of the reference scanner.
	DefaultArenaSize = 64 * 1024
)

// ErrArenaFull is returned when a new symbol does not fit into the arena.
var ErrArenaFull = errors.New("symbol arena is full")

type symbolEntry struct {
	length uint32
	typ    TypeID
}

// Interner is an append-only, fixed-capacity symbol arena. Each distinct
// byte string maps to exactly one SymbolID; entries are never removed.
// An Interner belongs to one scanning session and is not safe for
// concurrent use.
type Interner struct {
	arena   []byte                  // len == capacity, zero-filled
	high    uint32                  // high-water mark (next free offset)
	index   map[string]SymbolID     // текст -> handle
	entries map[SymbolID]*symbolEntry
	order   []SymbolID
}

// NewInterner creates an arena with DefaultArenaSize bytes.
func NewInterner() *Interner {
	return NewInternerSize(DefaultArenaSize)
}

// NewInternerSize creates an arena of the given capacity in bytes, rounded
// up to a whole number of strides. The reserved first stride is included.
func NewInternerSize(capacity int) *Interner {
	if capacity < 2*SymbolStride {
		capacity = 2 * SymbolStride
	}
	capacity = (capacity + SymbolStride - 1) &^ (SymbolStride - 1)
	return &Interner{
		arena:   make([]byte, capacity),
		high:    SymbolStride,
		index:   make(map[string]SymbolID),
		entries: make(map[SymbolID]*symbolEntry),
	}
}

// Intern stores b (if new) and returns its handle. The bytes are copied.
func (i *Interner) Intern(b []byte) (SymbolID, error) {
	if id, ok := i.index[string(b)]; ok {
		return id, nil
	}
	if len(b) == 0 {
		return NoSymbol, fmt.Errorf("intern: empty symbol")
	}

	n, err := safecast.Conv[uint32](len(b))
	if err != nil {
		return NoSymbol, fmt.Errorf("intern: symbol length overflow: %w", err)
	}
	padded := (n + SymbolStride - 1) &^ (SymbolStride - 1)
	capacity, err := safecast.Conv[uint32](len(i.arena))
	if err != nil {
		return NoSymbol, fmt.Errorf("intern: arena size overflow: %w", err)
	}
	if padded > capacity-i.high {
		return NoSymbol, ErrArenaFull
	}

	id := SymbolID(i.high)
	copy(i.arena[i.high:], b)
	i.high += padded
	i.index[string(b)] = id
	i.entries[id] = &symbolEntry{length: n}
	i.order = append(i.order, id)
	return id, nil
}

// InternString is Intern for strings.
func (i *Interner) InternString(s string) (SymbolID, error) {
	return i.Intern([]byte(s))
}

// Lookup возвращает текст символа по handle.
func (i *Interner) Lookup(id SymbolID) (string, bool) {
	e, ok := i.entries[id]
	if !ok {
		return "", false
	}
	return string(i.arena[id : uint32(id)+e.length]), true
}

// MustLookup паникует, если handle не валиден.
func (i *Interner) MustLookup(id SymbolID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("invalid symbol handle %d", id))
	}
	return s
}

// Has проверяет, валиден ли handle.
func (i *Interner) Has(id SymbolID) bool {
	_, ok := i.entries[id]
	return ok
}

// Word returns the first 8 bytes of the symbol as a little-endian word.
// Bytes past the symbol's length are zero, so for symbols of up to 8 bytes
// the word is the symbol's packed spelling.
func (i *Interner) Word(id SymbolID) uint64 {
	if !i.Has(id) {
		return 0
	}
	return binary.LittleEndian.Uint64(i.arena[id : id+8])
}

// SetType attaches a type handle to a symbol.
func (i *Interner) SetType(id SymbolID, typ TypeID) bool {
	e, ok := i.entries[id]
	if !ok {
		return false
	}
	e.typ = typ
	return true
}

// TypeOf returns the attached type handle, or NoType.
func (i *Interner) TypeOf(id SymbolID) TypeID {
	if e, ok := i.entries[id]; ok {
		return e.typ
	}
	return NoType
}

// Len returns the number of distinct symbols.
func (i *Interner) Len() int {
	return len(i.order)
}

// HighWater returns the first free arena offset. It never decreases.
func (i *Interner) HighWater() uint32 {
	return i.high
}

// Cap returns the arena capacity in bytes.
func (i *Interner) Cap() int {
	return len(i.arena)
}

// Snapshot returns the symbols in insertion order.
func (i *Interner) Snapshot() []string {
	out := make([]string, 0, len(i.order))
	for _, id := range i.order {
		out = append(out, i.MustLookup(id))
	}
	return out
}
