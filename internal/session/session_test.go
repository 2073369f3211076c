package session

import (
	"testing"

	"github.com/Crystalwarrior/imtui/internal/config"
	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/gui/guitest"
	"github.com/Crystalwarrior/imtui/internal/host"
)

type asciiCharset struct{}

func (asciiCharset) Encode(s string) []byte {
	if len(s) == 1 && s[0] < 0x80 {
		return []byte{s[0]}
	}
	return nil
}

func newTestSession(t *testing.T) (*Session, *guitest.Context, *host.MemoryScreen) {
	t.Helper()
	t.Cleanup(func() { gui.SetCurrent(nil) })

	ctx := guitest.New()
	scr := host.NewMemoryScreen(20, 10)
	s, err := New(ctx, scr, asciiCharset{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, ctx, scr
}

func TestNewAppliesStyle(t *testing.T) {
	s, ctx, _ := newTestSession(t)

	if !ctx.Styled {
		t.Fatal("style sheet not applied")
	}
	if gui.Current() != nil {
		t.Fatal("context left active after construction")
	}

	// Text is white on white so the fill behind glyphs matches the glyphs'
	// own foreground.
	want := gui.Vec4{X: 15, Y: 15, Z: 0, W: 1}
	if got := ctx.Sheet.Roles[gui.RoleText]; got != want {
		t.Errorf("RoleText = %+v, want %+v", got, want)
	}
	if got := ctx.Sheet.Roles[gui.RoleCheckMark]; got != (gui.Vec4{X: 15, Y: 0, Z: 0, W: 1}) {
		t.Errorf("RoleCheckMark = %+v, want white on black", got)
	}
	// Navigation roles never paint.
	if got := ctx.Sheet.Roles[gui.RoleNavHighlight]; got != (gui.Vec4{}) {
		t.Errorf("RoleNavHighlight = %+v, want zero", got)
	}

	if got := ctx.Sheet.Keys[gui.FnActivate]; got != host.KeySelect {
		t.Errorf("FnActivate bound to %v, want SELECT", got)
	}
	if got := ctx.Sheet.Keys[gui.FnEscape]; got != host.KeyLeave {
		t.Errorf("FnEscape bound to %v, want LEAVESCREEN", got)
	}

	if s.Context() != ctx {
		t.Error("Context() does not return the constructed context")
	}
}

func TestActivateRestoresPrevious(t *testing.T) {
	s, ctx, _ := newTestSession(t)

	other := guitest.New()
	gui.SetCurrent(other)

	s.Activate()
	if gui.Current() != ctx {
		t.Fatal("session context not active after Activate")
	}
	s.Deactivate()
	if gui.Current() != other {
		t.Fatal("previous context not restored after Deactivate")
	}
}

func TestFeedAndNewFrame(t *testing.T) {
	s, ctx, scr := newTestSession(t)

	scr.SetMouse(3, 4, true, false)
	s.Feed(host.NewKeySet(host.KeyForChar('a')))
	s.NewFrame()

	if len(ctx.BeginInputs) != 1 {
		t.Fatalf("BeginFrame called %d times, want 1", len(ctx.BeginInputs))
	}
	in := ctx.BeginInputs[0]
	if !in.Keys.Has(host.KeyForChar('a')) {
		t.Error("fed key missing from the frame input")
	}
	if string(in.Text) != "a" {
		t.Errorf("text = %q, want %q", string(in.Text), "a")
	}
	if in.MouseX != 3 || in.MouseY != 4 {
		t.Errorf("mouse = (%d,%d), want (3,4)", in.MouseX, in.MouseY)
	}
	if !in.MouseLeft || in.MouseRight {
		t.Errorf("buttons = (%v,%v), want (true,false)", in.MouseLeft, in.MouseRight)
	}
	if in.DisplayWidth != 20 || in.DisplayHeight != 10 {
		t.Errorf("display = %dx%d, want 20x10", in.DisplayWidth, in.DisplayHeight)
	}
	if want := config.Default().DeltaSeconds(); in.DeltaTime != want {
		t.Errorf("delta = %v, want %v", in.DeltaTime, want)
	}

	// Pending input and the button snapshot are drained by the frame.
	scr.SetMouse(3, 4, false, false)
	s.NewFrame()
	in = ctx.BeginInputs[1]
	if len(in.Keys) != 0 || in.MouseLeft {
		t.Errorf("second frame input not drained: %+v", in)
	}
}

func TestResetInput(t *testing.T) {
	s, ctx, _ := newTestSession(t)

	s.Feed(host.NewKeySet(host.KeySelect))
	s.ResetInput()

	if ctx.InputResets != 1 {
		t.Fatalf("ResetInput forwarded %d times, want 1", ctx.InputResets)
	}
	s.NewFrame()
	if in := ctx.BeginInputs[0]; len(in.Keys) != 0 {
		t.Errorf("keys survived the reset: %v", in.Keys.Sorted())
	}
}

func TestApplyConfig(t *testing.T) {
	s, ctx, _ := newTestSession(t)

	cfg := config.Default()
	cfg.Input.FrameDeltaMS = 100
	s.ApplyConfig(cfg)

	s.NewFrame()
	if got := ctx.BeginInputs[0].DeltaTime; got != 0.1 {
		t.Errorf("delta = %v, want 0.1", got)
	}

	s.ApplyConfig(nil)
}

func TestPassBookkeeping(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.BeginPass()
	if s.Depth() != 0 {
		t.Fatalf("depth = %d after BeginPass, want 0", s.Depth())
	}

	tok := s.PushLayer()
	if tok != 1 || s.Depth() != 1 {
		t.Fatalf("token = %d, depth = %d, want 1, 1", tok, s.Depth())
	}

	s.Claim("inventory")
	s.Claim("tooltip")
	if got := s.ClaimedAt(tok); len(got) != 2 || got[0] != "inventory" || got[1] != "tooltip" {
		t.Errorf("ClaimedAt = %v", got)
	}

	s.MarkRendered("inventory")
	if !s.Rendered("inventory") || s.Rendered("tooltip") {
		t.Error("rendered set wrong")
	}

	s.PopLayer()
	s.PopLayer() // below zero is clamped
	if s.Depth() != 0 {
		t.Errorf("depth = %d after extra pops, want 0", s.Depth())
	}

	// A new pass wipes all bookkeeping.
	s.BeginPass()
	if s.Rendered("inventory") || len(s.ClaimedAt(tok)) != 0 {
		t.Error("BeginPass did not reset pass state")
	}
}

func TestConsumePassthrough(t *testing.T) {
	s, _, _ := newTestSession(t)
	keys := host.NewKeySet(host.KeyForChar('x'))

	// No request: nothing propagates.
	if s.ConsumePassthrough(keys) {
		t.Error("passthrough without a request")
	}

	// Requested: propagates, then the flag is spent.
	s.RequestPassthrough()
	if !s.ConsumePassthrough(keys) {
		t.Error("requested passthrough denied")
	}
	if s.ConsumePassthrough(keys) {
		t.Error("passthrough flag not cleared")
	}

	// A keyboard veto wins over the request.
	s.RequestPassthrough()
	s.SuppressNextKeyboard()
	if s.ConsumePassthrough(keys) {
		t.Error("vetoed passthrough allowed")
	}

	// The veto is one-shot too.
	s.RequestPassthrough()
	if !s.ConsumePassthrough(keys) {
		t.Error("veto flag not cleared")
	}

	// Nil key set never propagates.
	s.RequestPassthrough()
	if s.ConsumePassthrough(nil) {
		t.Error("passthrough of a nil key set")
	}
}

func TestSuppressedKeysVetoPassthrough(t *testing.T) {
	s, _, _ := newTestSession(t)

	s.BeginPass()
	s.PushLayer()
	s.SuppressKey(host.KeyLeave)

	s.RequestPassthrough()
	if s.ConsumePassthrough(host.NewKeySet(host.KeyLeave, host.KeyForChar('x'))) {
		t.Error("set containing a suppressed key propagated")
	}

	// A set without any suppressed key still propagates.
	s.RequestPassthrough()
	if !s.ConsumePassthrough(host.NewKeySet(host.KeyForChar('x'))) {
		t.Error("clean key set denied")
	}

	// Suppression registered at an outer layer still applies deeper in.
	s.PushLayer()
	s.RequestPassthrough()
	if s.ConsumePassthrough(host.NewKeySet(host.KeyLeave)) {
		t.Error("outer-layer suppression ignored")
	}

	s.ClearSuppressed()
	s.RequestPassthrough()
	if !s.ConsumePassthrough(host.NewKeySet(host.KeyLeave)) {
		t.Error("suppression survived ClearSuppressed")
	}
}

func TestClose(t *testing.T) {
	s, ctx, _ := newTestSession(t)
	s.Close()
	if !ctx.Closed {
		t.Error("context not destroyed")
	}
}
