package capture

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing.
// Once the frames are exhausted Read fails, like an unplugged device.
type MockCamera struct {
	frames  []*gocv.Mat
	index   int
	mu      sync.Mutex
	running bool
	closes  int
}

// NewMockCamera creates a MockCamera that plays frames once.
func NewMockCamera(frames []*gocv.Mat) *MockCamera {
	return &MockCamera{
		frames: frames,
	}
}

// Open starts playback from the first frame.
func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	return nil
}

// Close stops playback.
func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.closes++
	return nil
}

// Read copies the next frame into dst.
func (c *MockCamera) Read(dst *gocv.Mat) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return ErrCameraNotOpen
	}

	if c.index >= len(c.frames) {
		return ErrReadFailed
	}

	// Copy so the caller can draw on dst without touching the source.
	c.frames[c.index].CopyTo(dst)
	c.index++

	return nil
}

// IsOpen reports whether the camera is open.
func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Served returns how many frames have been read.
func (c *MockCamera) Served() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Closes returns how many times Close has been called.
func (c *MockCamera) Closes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closes
}
