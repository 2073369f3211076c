// Package session owns the bridge's per-context state: the GUI library
// context handle, pending input, and the per-pass window bookkeeping the
// ordering reconciler works from.
//
// A Session is constructed explicitly and passed into every entry point;
// there is no process-wide instance. Construction applies the one-time
// style and key-map configuration; Close destroys the context.
//
// All methods are single-threaded by contract: the host runs input and
// rendering on one thread and the session is only ever touched from it.
package session

import (
	"fmt"

	"github.com/Crystalwarrior/imtui/internal/config"
	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
	"github.com/Crystalwarrior/imtui/internal/input"
	"github.com/Crystalwarrior/imtui/internal/render"
)

// Session holds one GUI context and its input/render state.
type Session struct {
	ctx gui.Context
	scr host.Screen

	// prev is whatever context was active before Activate; a one-level
	// save/restore. Nested activation is a caller contract violation.
	prev gui.Context

	translator *input.Translator
	interp     *render.Interpreter
	delta      float32

	// pending accumulates host key events not yet drained into a frame.
	pending host.KeySet

	// Held-button snapshot taken at feed time, consumed by the next frame.
	mouseLeft, mouseRight bool

	// Per-pass bookkeeping, reset only when a new top-level pass begins.
	claimed    map[int][]string
	rendered   map[string]struct{}
	depth      int
	suppressed map[int]host.KeySet

	// Passthrough control for the host's own input handling.
	passKeyboardUp       bool
	suppressNextKeyboard bool
	suppressNextMouse    bool
}

// New creates a session over a fresh context and applies the one-time
// style and key-map configuration. The context is exclusively owned by the
// session from here on. A nil cfg uses the defaults.
//
// This is the bridge's only fatal path: an unknown color name in the style
// table aborts construction.
func New(ctx gui.Context, scr host.Screen, cs host.Charset, cfg *config.Config) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	sheet, err := defaultStyleSheet()
	if err != nil {
		return nil, fmt.Errorf("building style sheet: %w", err)
	}

	s := &Session{
		ctx:        ctx,
		scr:        scr,
		translator: input.NewTranslator(cfg.Input.SuppressFrames),
		interp:     render.NewInterpreter(scr, cs),
		delta:      cfg.DeltaSeconds(),
		pending:    make(host.KeySet),
		claimed:    make(map[int][]string),
		rendered:   make(map[string]struct{}),
		suppressed: make(map[int]host.KeySet),
	}
	if cfg.Render.FallbackGlyph != "" {
		s.interp.SetFallbackGlyph(cfg.Render.FallbackGlyph[0])
	}

	s.Activate()
	s.ctx.ApplyStyle(sheet)
	s.Deactivate()

	return s, nil
}

// Context returns the session's GUI context.
func (s *Session) Context() gui.Context {
	return s.ctx
}

// ApplyConfig adopts freshly loaded configuration (live reload).
func (s *Session) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	s.translator.SetSuppressFrames(cfg.Input.SuppressFrames)
	s.delta = cfg.DeltaSeconds()
	if cfg.Render.FallbackGlyph != "" {
		s.interp.SetFallbackGlyph(cfg.Render.FallbackGlyph[0])
	}
}

// Activate makes the session's context the library's active one,
// remembering the previous context for Deactivate.
func (s *Session) Activate() {
	s.prev = gui.Current()
	gui.SetCurrent(s.ctx)
}

// Deactivate restores the context that was active before Activate.
func (s *Session) Deactivate() {
	gui.SetCurrent(s.prev)
}

// Feed merges host key events into pending input and snapshots the
// currently held mouse buttons.
func (s *Session) Feed(keys host.KeySet) {
	s.pending.Merge(keys)
	s.mouseLeft, s.mouseRight = s.scr.MouseButtons()
}

// NewFrame drains pending input through the translator and begins a GUI
// frame.
func (s *Session) NewFrame() {
	in := s.translator.Snapshot(s.pending, s.scr, s.mouseLeft, s.mouseRight, s.delta)
	s.pending = make(host.KeySet)
	s.mouseLeft, s.mouseRight = false, false
	s.ctx.BeginFrame(in)
}

// DrawFrame rasterizes draw data onto the host display.
func (s *Session) DrawFrame(data *gui.DrawData) {
	s.interp.Frame(data)
}

// ResetInput forces every tracked key and mouse button to released. The
// host calls this when its layer stack fully unwinds below the bridge, so
// stale held-key state cannot leak into an unrelated future layer.
func (s *Session) ResetInput() {
	s.pending = make(host.KeySet)
	s.mouseLeft, s.mouseRight = false, false
	s.ctx.ResetInput()
}

// Close destroys the GUI context. The session must not be used afterwards.
func (s *Session) Close() {
	s.ctx.Close()
}

// BeginPass resets the per-pass bookkeeping at the start of a top-level
// render pass.
func (s *Session) BeginPass() {
	s.claimed = make(map[int][]string)
	s.rendered = make(map[string]struct{})
	s.depth = 0
	s.suppressed = make(map[int]host.KeySet)
}

// PushLayer enters one host layer and returns its identity token.
func (s *Session) PushLayer() int {
	s.depth++
	return s.depth
}

// PopLayer leaves the innermost host layer. Depth never goes below zero,
// even if exits arrive out of protocol.
func (s *Session) PopLayer() {
	if s.depth > 0 {
		s.depth--
	}
}

// Depth returns the current layer depth.
func (s *Session) Depth() int {
	return s.depth
}

// Claim records a window name as belonging to the current layer.
func (s *Session) Claim(name string) {
	s.claimed[s.depth] = append(s.claimed[s.depth], name)
}

// ClaimedAt returns the window names claimed at the given layer token.
func (s *Session) ClaimedAt(token int) []string {
	return s.claimed[token]
}

// MarkRendered records that a window has been painted this pass.
func (s *Session) MarkRendered(name string) {
	s.rendered[name] = struct{}{}
}

// Rendered reports whether a window has already been painted this pass.
func (s *Session) Rendered(name string) bool {
	_, ok := s.rendered[name]
	return ok
}

// SuppressKey registers a key that must never propagate to the host while
// this pass's layers are up.
func (s *Session) SuppressKey(k host.Key) {
	set, ok := s.suppressed[s.depth]
	if !ok {
		set = make(host.KeySet)
		s.suppressed[s.depth] = set
	}
	set.Add(k)
}

// ClearSuppressed drops every suppressed-key registration.
func (s *Session) ClearSuppressed() {
	s.suppressed = make(map[int]host.KeySet)
}

// suppressedAny reports whether any layer suppressed a key present in keys.
func (s *Session) suppressedAny(keys host.KeySet) bool {
	for _, set := range s.suppressed {
		for k := range set {
			if keys.Has(k) {
				return true
			}
		}
	}
	return false
}

// RequestPassthrough asks for the current keyboard input to propagate to
// the host's own handling once the layer stack unwinds.
func (s *Session) RequestPassthrough() {
	s.passKeyboardUp = true
}

// SuppressNextKeyboard vetoes the next keyboard passthrough decision.
func (s *Session) SuppressNextKeyboard() {
	s.suppressNextKeyboard = true
}

// SuppressNextMouse vetoes the next mouse passthrough decision.
func (s *Session) SuppressNextMouse() {
	s.suppressNextMouse = true
}

// ConsumePassthrough decides whether the outgoing key set should reach the
// host's own input handling, then clears the one-shot flags. Keys a layer
// registered as suppressed veto the whole set.
func (s *Session) ConsumePassthrough(keys host.KeySet) bool {
	should := s.passKeyboardUp && !s.suppressNextKeyboard && keys != nil
	if should && s.suppressedAny(keys) {
		should = false
	}

	s.passKeyboardUp = false
	s.suppressNextKeyboard = false
	s.suppressNextMouse = false

	return should
}
