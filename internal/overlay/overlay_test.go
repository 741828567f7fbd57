package overlay

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/gesturecap/internal/detector"
	"github.com/ayusman/gesturecap/internal/recorder"
)

func blank(rows, cols int) gocv.Mat {
	return gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
}

// bgr reads a pixel in OpenCV channel order.
func bgr(img gocv.Mat, row, col int) [3]uint8 {
	v := img.GetVecbAt(row, col)
	return [3]uint8{v[0], v[1], v[2]}
}

func asBGR(c color.RGBA) [3]uint8 {
	return [3]uint8{c.B, c.G, c.R}
}

func TestRoundedRectangle(t *testing.T) {
	img := blank(100, 100)
	defer img.Close()
	img.SetTo(gocv.NewScalar(0, 0, 0, 0))

	RoundedRectangle(&img, image.Pt(10, 10), image.Pt(90, 60), RecordingColor, 10, -1)

	if got := bgr(img, 35, 50); got != asBGR(RecordingColor) {
		t.Errorf("center pixel = %v, want %v", got, asBGR(RecordingColor))
	}
	// The exact corner lies outside the rounding circle.
	if got := bgr(img, 10, 10); got != [3]uint8{} {
		t.Errorf("corner pixel = %v, want black", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		overlay recorder.Overlay
		want    [3]uint8
	}{
		{name: "recording", overlay: recorder.OverlayRecording, want: asBGR(RecordingColor)},
		{name: "waiting", overlay: recorder.OverlayWaiting, want: asBGR(WaitingColor)},
		{name: "warm-up draws nothing", overlay: recorder.OverlayNone, want: [3]uint8{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(120, 480)
			defer img.Close()
			img.SetTo(gocv.NewScalar(0, 0, 0, 0))

			Status(&img, tt.overlay, DefaultStyle(gocv.FontHersheyPlain, 1.5))

			// Inside the lower-left rounded corner of the banner.
			if got := bgr(img, 55, 10); got != tt.want {
				t.Errorf("banner pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeypoints(t *testing.T) {
	img := blank(100, 100)
	defer img.Close()
	img.SetTo(gocv.NewScalar(0, 0, 0, 0))

	Keypoints(&img, detector.Result{Hands: []detector.HandLandmarks{detector.OpenPalmLandmarks()}})

	// Wrist is at (0.5, 0.8).
	if got := bgr(img, 80, 50); got != asBGR(JointColor) {
		t.Errorf("wrist pixel = %v, want %v", got, asBGR(JointColor))
	}
}

func TestKeypoints_EmptyResult(t *testing.T) {
	img := blank(50, 50)
	defer img.Close()
	img.SetTo(gocv.NewScalar(0, 0, 0, 0))

	Keypoints(&img, detector.Result{})

	if got := bgr(img, 25, 25); got != [3]uint8{} {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle(gocv.FontHersheyPlain, 1.5)

	if s.FontSize != 1.5*0.8 {
		t.Errorf("FontSize = %f, want %f", s.FontSize, 1.5*0.8)
	}
	if s.Position != image.Pt(10, 50) {
		t.Errorf("Position = %v, want (10,50)", s.Position)
	}
}
