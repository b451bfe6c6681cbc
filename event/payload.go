package event

// PaddleHitPayload describes a paddle bounce
type PaddleHitPayload struct {
	// Offset is the normalized hit position on the paddle, -1 bottom edge to 1 top edge
	Offset float64
	// Speed is the ball speed after the bounce
	Speed float64
}

// PointScoredPayload names the side that won the point and the resulting ledger
type PointScoredPayload struct {
	Side        uint8
	Left, Right uint32
}

// KeyReboundPayload names the action and the display name of its new key
type KeyReboundPayload struct {
	Action string
	Key    string
}
