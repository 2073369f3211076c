// Package overlay reconciles the GUI library's global window ordering with
// the host's screen-stack paint order.
//
// The host repaints its layers in strict stack order: the topmost layer is
// drawn last, above everything beneath it. The GUI library keeps a single
// global z-order that knows nothing about host layers, so a GUI window
// opened by a lower layer could paint over host content that should sit
// above it. The reconciler fixes that at each layer boundary: it collects
// the windows the layer claimed (plus all their descendants), pulls them
// out of the library's display and focus orderings, and splices them back
// at the paint-nearest end while leaving every untouched window in exactly
// the relative order the library had it in. Library-internal invariants
// such as focus handling and click hit-testing survive because the lists
// are only permuted, never rebuilt.
//
// One reconciler drives one session through a host render pass:
//
//	Idle -> LayerEnter(depth n) -> ... widget code ... -> LayerExit(n) -> Idle
//
// Enter/exit calls must nest in stack discipline, mirroring the host's own
// screen-stack push/pop. A layer that never exits leaves stale bookkeeping
// behind; the next top-level enter resets it, which is the designed
// recovery path.
package overlay

import (
	"github.com/Crystalwarrior/imtui/internal/gui"
	"github.com/Crystalwarrior/imtui/internal/host"
	"github.com/Crystalwarrior/imtui/internal/session"
)

// Reconciler drives window ordering and input routing for one session.
type Reconciler struct {
	sess *session.Session
	ctx  gui.Context
}

// New creates a reconciler over the given session.
func New(sess *session.Session) *Reconciler {
	return &Reconciler{sess: sess, ctx: sess.Context()}
}

// LayerEnter begins one host layer. For the outermost layer it resets the
// per-pass bookkeeping, activates the session, and starts a GUI frame. The
// returned token identifies the layer and must be handed back to
// LayerExit.
func (r *Reconciler) LayerEnter(isTop bool) int {
	if isTop {
		r.sess.BeginPass()
		r.sess.Activate()
		r.sess.NewFrame()
	}
	return r.sess.PushLayer()
}

// ClaimWindow tags the window currently being built by widget code as
// belonging to the current layer. Called by application code between
// LayerEnter and LayerExit; outside a window it does nothing.
func (r *Reconciler) ClaimWindow() {
	win := r.ctx.CurrentWindow()
	if win == nil {
		return
	}
	r.sess.Claim(win.Name())
}

// SuppressKey registers a key that must not propagate to the host while
// this layer is up.
func (r *Reconciler) SuppressKey(k host.Key) {
	r.sess.SuppressKey(k)
}

// LayerExit ends the layer identified by token: it reorders the library's
// window lists so this layer's windows paint at the host-correct position,
// renders them, and rasterizes the result. For the outermost layer it then
// finalizes the frame and deactivates the session.
func (r *Reconciler) LayerExit(isTop bool, token int) {
	claimed := r.sess.ClaimedAt(token)

	// Windows claimed at this depth that haven't painted yet; for the top
	// layer, every unpainted window in the context. Then every descendant,
	// so child windows travel with their parents.
	roots := r.collectRoots(claimed, isTop)
	wins := r.expandChildren(roots)

	for _, w := range wins {
		r.sess.MarkRendered(w.Name())
	}

	members := make(map[gui.Window]struct{}, len(wins))
	for _, w := range wins {
		members[w] = struct{}{}
	}

	displaySubset := filterOrder(r.ctx.DisplayOrder(), members)
	focusSubset := filterOrder(r.ctx.FocusOrder(), members)

	// Child-aware sort applies to paint order only; focus order keeps the
	// library's own sequence.
	displaySubset = r.ctx.SortSubset(displaySubset)

	r.ctx.SetDisplayOrder(splice(r.ctx.DisplayOrder(), displaySubset, members))
	r.ctx.SetFocusOrder(splice(r.ctx.FocusOrder(), focusSubset, members))

	r.ctx.Render(displaySubset, isTop)
	r.sess.DrawFrame(r.ctx.DrawData())

	r.sess.PopLayer()

	if isTop {
		r.ctx.EndFrame()
		r.sess.Deactivate()
	}
}

// collectRoots finds the context windows named by the claim list (all
// windows when isTop), skipping any that already painted this pass. The
// context's display-order list is the authoritative window enumeration.
func (r *Reconciler) collectRoots(claimed []string, isTop bool) []gui.Window {
	names := make(map[string]struct{}, len(claimed))
	for _, n := range claimed {
		names[n] = struct{}{}
	}

	var out []gui.Window
	for _, win := range r.ctx.DisplayOrder() {
		name := win.Name()
		if _, ok := names[name]; !ok && !isTop {
			continue
		}
		if r.sess.Rendered(name) {
			continue
		}
		out = append(out, win)
	}
	return out
}

// expandChildren returns the roots plus every descendant child window,
// depth first in discovery order. An explicit worklist bounds stack depth,
// and a visited set keyed by window name makes cycle handling explicit
// even though a window cannot legally be its own descendant.
func (r *Reconciler) expandChildren(roots []gui.Window) []gui.Window {
	var out []gui.Window
	visited := make(map[string]struct{})

	for _, root := range roots {
		stack := []gui.Window{root}
		for len(stack) > 0 {
			win := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			name := win.Name()
			if _, seen := visited[name]; seen || r.sess.Rendered(name) {
				continue
			}
			visited[name] = struct{}{}
			out = append(out, win)

			// Push children in reverse so they pop in discovery order.
			kids := win.Children()
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
	return out
}

// filterOrder returns the members of set in the order they appear in list.
func filterOrder(list []gui.Window, set map[gui.Window]struct{}) []gui.Window {
	var out []gui.Window
	for _, w := range list {
		if _, ok := set[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// splice rebuilds a global ordering: every window outside the subset keeps
// its relative position at the back of the paint order, and the subset goes
// to the paint-nearest end in its new order. Display order is back to
// front, so "nearest" is the end of the list.
func splice(global, subset []gui.Window, members map[gui.Window]struct{}) []gui.Window {
	out := make([]gui.Window, 0, len(global))
	for _, w := range global {
		if _, ok := members[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return append(out, subset...)
}
