package input

// RemapRequest is the transient remap holder, alive only while the Controls screen is open
// Idle when Awaiting is false; Awaiting names Action and the frame the request was made in
type RemapRequest struct {
	Action   Action
	Awaiting bool
	Frame    int64
}

// AwaitRemap returns a request listening for a new key for a
func AwaitRemap(a Action, frame int64) RemapRequest {
	return RemapRequest{Action: a, Awaiting: true, Frame: frame}
}

// Accepts reports whether a key pressed in frame may commit this request
// The press that created the request is never committed
func (r RemapRequest) Accepts(frame int64) bool {
	return r.Awaiting && frame > r.Frame
}

// Commit binds k to the requested action and returns the idle request
func (r RemapRequest) Commit(b *Bindings, k Key) RemapRequest {
	if r.Awaiting {
		b.Remap(r.Action, k)
	}
	return RemapRequest{}
}
