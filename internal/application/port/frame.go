package port

// FrameID identifies a requested frame callback.
type FrameID uint64

// FrameScheduler runs callbacks on the next render frame, on the UI goroutine.
type FrameScheduler interface {
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a pending callback. Cancelling a frame that already
	// ran is a no-op.
	CancelFrame(id FrameID)
}
