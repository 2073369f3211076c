package host

import (
	"fmt"
	"sort"
	"strings"
)

// Key identifies one named key event in the host's closed vocabulary.
//
// Printable characters are part of the vocabulary too: the host assigns each
// byte value its own key event, reachable through KeyForChar.
type Key int

// Named key events.
const (
	KeyNone Key = iota

	// KeySelect is the host's "confirm" key (Enter on most terminals).
	KeySelect

	// KeyLeave backs out of the current layer (Escape).
	KeyLeave

	// KeyBackspace deletes backward in text entry.
	KeyBackspace

	// Cursor movement events. The host emits these both for arrow keys and,
	// redundantly, for the numeric-pad digit keys.
	KeyCursorLeft
	KeyCursorRight
	KeyCursorUp
	KeyCursorDown

	// keyCharBase is the first character key; byte value c maps to
	// keyCharBase + c.
	keyCharBase
)

// keyMax is one past the largest key value, usable as a dense array bound.
const keyMax = int(keyCharBase) + 256

// KeyCount returns the size of the key vocabulary.
func KeyCount() int {
	return keyMax
}

// KeyForChar returns the key event the host emits for a printable character.
func KeyForChar(c byte) Key {
	return keyCharBase + Key(c)
}

// Char returns the character for a character key. ok is false for named keys.
func (k Key) Char() (byte, bool) {
	if k < keyCharBase || k >= Key(keyMax) {
		return 0, false
	}
	return byte(k - keyCharBase), true
}

// IsPrintable reports whether the key carries a printable ASCII character.
func (k Key) IsPrintable() bool {
	c, ok := k.Char()
	return ok && c >= 0x20 && c < 0x7f
}

var keyNames = map[Key]string{
	KeyNone:        "NONE",
	KeySelect:      "SELECT",
	KeyLeave:       "LEAVESCREEN",
	KeyBackspace:   "BACKSPACE",
	KeyCursorLeft:  "CURSOR_LEFT",
	KeyCursorRight: "CURSOR_RIGHT",
	KeyCursorUp:    "CURSOR_UP",
	KeyCursorDown:  "CURSOR_DOWN",
}

// String returns the host's name for the key event.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if c, ok := k.Char(); ok {
		return fmt.Sprintf("CHAR_%d", c)
	}
	return fmt.Sprintf("KEY_%d", int(k))
}

// ParseKey resolves a key event name as produced by String. Single-character
// names resolve to the corresponding character key.
func ParseKey(name string) (Key, error) {
	if len(name) == 1 {
		return KeyForChar(name[0]), nil
	}
	upper := strings.ToUpper(name)
	for k, n := range keyNames {
		if n == upper {
			return k, nil
		}
	}
	if c, ok := strings.CutPrefix(upper, "CHAR_"); ok {
		var v int
		if _, err := fmt.Sscanf(c, "%d", &v); err == nil && v >= 0 && v < 256 {
			return KeyForChar(byte(v)), nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key event %q", name)
}

// KeySet is a set of simultaneously pressed key events.
type KeySet map[Key]struct{}

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add inserts k.
func (s KeySet) Add(k Key) {
	s[k] = struct{}{}
}

// Delete removes k if present.
func (s KeySet) Delete(k Key) {
	delete(s, k)
}

// Merge inserts every key from other.
func (s KeySet) Merge(other KeySet) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Clone returns an independent copy of the set.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Sorted returns the keys in ascending order. Iteration over the map itself
// is randomized; use this where processing order must be stable.
func (s KeySet) Sorted() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
