// Package input translates the host's per-frame pressed-key set into the
// GUI library's input snapshot.
//
// The host encodes numeric-pad movement twice: pressing '4' delivers both
// the digit key and a CURSOR_LEFT event, and under key repeat the cursor
// event can even arrive one frame before its digit. Widget code wants to
// see exactly one of the two. The translator drops the cursor event
// whenever its digit is present and keeps dropping it for a fixed window of
// frames afterwards, tracked by a per-direction age counter (the "danger
// timer").
package input

import (
	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
)

// DefaultSuppressFrames is the default directional-suppression window.
// Empirical, tuned against observed key-repeat timing; override through
// configuration if cursor keys feel sticky or jumpy.
const DefaultSuppressFrames = 10

// pairs maps each numeric-pad digit key to the cursor event the host emits
// alongside it.
var pairs = map[host.Key]host.Key{
	host.KeyForChar('4'): host.KeyCursorLeft,
	host.KeyForChar('6'): host.KeyCursorRight,
	host.KeyForChar('8'): host.KeyCursorUp,
	host.KeyForChar('2'): host.KeyCursorDown,
}

// Translator builds per-frame input snapshots. It keeps the danger-timer
// table across frames; everything else is stateless.
//
// Not safe for concurrent use; the bridge is single-threaded by contract.
type Translator struct {
	suppressFrames int

	// timers holds frames-since-seen per digit key. An entry at or under
	// the suppression window means the paired cursor event is still being
	// dropped.
	timers map[host.Key]int
}

// NewTranslator creates a translator with the given suppression window.
func NewTranslator(suppressFrames int) *Translator {
	if suppressFrames < 0 {
		suppressFrames = DefaultSuppressFrames
	}
	return &Translator{
		suppressFrames: suppressFrames,
		timers:         make(map[host.Key]int),
	}
}

// SetSuppressFrames updates the suppression window (live config reload).
func (t *Translator) SetSuppressFrames(n int) {
	if n >= 0 {
		t.suppressFrames = n
	}
}

// Filter resolves the digit/cursor ambiguity for one frame. The input set
// is not modified. Timers age by one frame on every call, whether or not
// they fired.
func (t *Translator) Filter(keys host.KeySet) host.KeySet {
	out := keys.Clone()

	for digit, cursor := range pairs {
		if !out.Has(digit) {
			continue
		}
		t.timers[digit] = 0
		out.Delete(cursor)
	}

	// A live timer keeps suppressing even on frames where the digit itself
	// is absent; that covers the cursor event arriving a frame early under
	// key repeat.
	for digit, age := range t.timers {
		if age <= t.suppressFrames {
			out.Delete(pairs[digit])
		}
	}

	for digit, age := range t.timers {
		if age > t.suppressFrames {
			delete(t.timers, digit)
			continue
		}
		t.timers[digit] = age + 1
	}

	return out
}

// Snapshot builds the GUI library's input snapshot for one frame: the
// filtered key set, entered text in key order, display size, mouse cursor
// position, the session's held-button snapshot, and the nominal frame
// delta. Malformed key sets need no special handling; unknown keys simply
// pass through as non-printable events.
func (t *Translator) Snapshot(keys host.KeySet, scr host.Screen, mouseLeft, mouseRight bool, delta float32) gui.Input {
	filtered := t.Filter(keys)

	w, h := scr.Size()
	mx, my := scr.MousePos()

	in := gui.Input{
		Keys:          filtered,
		DisplayWidth:  w,
		DisplayHeight: h,
		MouseX:        mx,
		MouseY:        my,
		MouseLeft:     mouseLeft,
		MouseRight:    mouseRight,
		DeltaTime:     delta,
	}

	for _, k := range filtered.Sorted() {
		if k.IsPrintable() {
			c, _ := k.Char()
			in.Text = append(in.Text, rune(c))
		}
	}

	return in
}
