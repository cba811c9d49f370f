package port

// Cursor is a pointer shape hint.
type Cursor int

const (
	CursorDefault Cursor = iota
	// CursorColResize is shown while dragging a vertical divider.
	CursorColResize
	// CursorRowResize is shown while dragging a horizontal divider.
	CursorRowResize
	CursorMove
)

// CursorHinter shows a global cursor hint for the duration of a gesture.
type CursorHinter interface {
	SetCursor(c Cursor)
	ClearCursor()
}
