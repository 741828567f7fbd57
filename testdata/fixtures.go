// Package testdata builds synthetic camera frames for tests.
package testdata

import (
	"gocv.io/x/gocv"
)

// Frame size used by the fixtures.
const (
	Rows = 48
	Cols = 64
)

// FrameValue is the gray level of the n-th (1-based) fixture frame.
func FrameValue(n int) uint8 {
	return uint8((n * 10) % 256)
}

// SolidFrames returns n solid gray frames whose level identifies their
// position, so tests can check the order frames were written in.
func SolidFrames(n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, n)
	for i := 1; i <= n; i++ {
		v := float64(FrameValue(i))
		mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(v, v, v, 0), Rows, Cols, gocv.MatTypeCV8UC3)
		frames = append(frames, &mat)
	}
	return frames
}

// CloseAll releases fixture frames.
func CloseAll(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
