package overlay

import "github.com/Crystalwarrior/imtui/internal/host"

// FeedStart delivers host input at the top of the layer stack's input
// walk. Only the outermost layer feeds keys, before any layer reads them;
// every call activates the session so widget code can query input state.
func (r *Reconciler) FeedStart(isTop bool, keys host.KeySet) {
	if isTop && keys != nil {
		r.sess.Feed(keys)
	}
	r.sess.Activate()
}

// FeedEnd closes the layer stack's input walk and reports whether the
// outgoing key set should propagate to the host's own input handling.
// Propagation happens only when a layer requested it, no one vetoed it,
// and none of the keys were registered as suppressed.
func (r *Reconciler) FeedEnd(keys host.KeySet) bool {
	should := r.sess.ConsumePassthrough(keys)
	r.sess.Deactivate()
	return should
}

// RequestPassthrough asks for unconsumed keys to reach the host once the
// stack unwinds.
func (r *Reconciler) RequestPassthrough() {
	r.sess.RequestPassthrough()
}

// SuppressNextKeyboard vetoes the next keyboard passthrough decision.
func (r *Reconciler) SuppressNextKeyboard() {
	r.sess.SuppressNextKeyboard()
}

// SuppressNextMouse vetoes the next mouse passthrough decision.
func (r *Reconciler) SuppressNextMouse() {
	r.sess.SuppressNextMouse()
}

// DismissAll resets input state when the host dismisses the last layer
// that is aware of this bridge: held keys and buttons release, and
// suppressed-key registrations drop.
func (r *Reconciler) DismissAll() {
	r.sess.ResetInput()
	r.sess.ClearSuppressed()
}
