package capture

import (
	"gocv.io/x/gocv"
)

// Display is the operator preview surface.
type Display interface {
	// Show renders img.
	Show(img gocv.Mat)
	// WaitKey waits up to delay milliseconds for a key press and returns
	// its code, or -1 if none was pressed.
	WaitKey(delay int) int
	Close() error
}

// Window is a Display backed by an OpenCV HighGUI window.
type Window struct {
	window *gocv.Window
}

// NewWindow opens a titled preview window.
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

// Show renders img in the window.
func (w *Window) Show(img gocv.Mat) {
	w.window.IMShow(img)
}

// WaitKey polls the window for a key press.
func (w *Window) WaitKey(delay int) int {
	return w.window.WaitKey(delay)
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}

// IsQuitKey reports whether a WaitKey result is the given quit key.
// Only the low byte is compared, as some backends set modifier bits.
func IsQuitKey(code int, quit rune) bool {
	return code >= 0 && code&0xFF == int(quit)
}
