// Package overlay draws operator feedback on preview frames.
// Nothing drawn here reaches the persisted samples.
package overlay

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/gesturecap/internal/detector"
	"github.com/ayusman/gesturecap/internal/recorder"
)

// Status banner texts.
const (
	RecordingText = "Tomando muestras..."
	WaitingText   = "Esperando para tomar muestras..."
)

// Colors. gocv converts color.RGBA to OpenCV's BGR order.
var (
	White          = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	RecordingColor = color.RGBA{R: 0, G: 50, B: 255, A: 0}
	WaitingColor   = color.RGBA{R: 100, G: 220, B: 0, A: 0}
	HandColor      = color.RGBA{R: 245, G: 117, B: 66, A: 0}
	JointColor     = color.RGBA{R: 66, G: 230, B: 245, A: 0}
	PoseColor      = color.RGBA{R: 80, G: 110, B: 10, A: 0}
)

const (
	bannerRadius  = 15
	bannerPadding = 10
)

// Style controls the status banner text.
type Style struct {
	Font     gocv.HersheyFont
	FontSize float64
	Position image.Point
}

// DefaultStyle returns the banner style used by the capture tool.
func DefaultStyle(font gocv.HersheyFont, fontSize float64) Style {
	return Style{
		Font:     font,
		FontSize: fontSize * 0.8,
		Position: image.Pt(10, 50),
	}
}

// RoundedRectangle draws a rectangle with rounded corners. A negative
// thickness fills it.
func RoundedRectangle(img *gocv.Mat, topLeft, bottomRight image.Point, c color.RGBA, radius, thickness int) {
	x1, y1 := topLeft.X, topLeft.Y
	x2, y2 := bottomRight.X, bottomRight.Y

	gocv.Rectangle(img, image.Rect(x1+radius, y1, x2-radius, y2), c, thickness)
	gocv.Rectangle(img, image.Rect(x1, y1+radius, x2, y2-radius), c, thickness)

	gocv.Circle(img, image.Pt(x1+radius, y1+radius), radius, c, thickness)
	gocv.Circle(img, image.Pt(x2-radius, y1+radius), radius, c, thickness)
	gocv.Circle(img, image.Pt(x1+radius, y2-radius), radius, c, thickness)
	gocv.Circle(img, image.Pt(x2-radius, y2-radius), radius, c, thickness)
}

// TextWithBackground writes text over a filled rounded rectangle.
// pos is the bottom-left corner of the text.
func TextWithBackground(img *gocv.Mat, text string, pos image.Point, font gocv.HersheyFont, scale float64, fg, bg color.RGBA, padding int) {
	size := gocv.GetTextSize(text, font, scale, 1)

	topLeft := image.Pt(pos.X-padding, pos.Y-size.Y-padding)
	bottomRight := image.Pt(pos.X+size.X+padding, pos.Y+padding)

	RoundedRectangle(img, topLeft, bottomRight, bg, bannerRadius, -1)
	gocv.PutText(img, text, pos, font, scale, fg, 1)
}

// Status draws the banner that matches a recorder step.
func Status(img *gocv.Mat, o recorder.Overlay, style Style) {
	switch o {
	case recorder.OverlayRecording:
		TextWithBackground(img, RecordingText, style.Position, style.Font, style.FontSize, White, RecordingColor, bannerPadding)
	case recorder.OverlayWaiting:
		TextWithBackground(img, WaitingText, style.Position, style.Font, style.FontSize, White, WaitingColor, bannerPadding)
	}
}

// Keypoints draws the pose points and hand skeletons of a detection result.
func Keypoints(img *gocv.Mat, r detector.Result) {
	cols, rows := img.Cols(), img.Rows()

	for _, p := range r.Pose {
		gocv.Circle(img, toPixel(p, cols, rows), 2, PoseColor, -1)
	}

	for _, hand := range r.Hands {
		for _, c := range detector.HandConnections {
			gocv.Line(img, toPixel(hand.Points[c[0]], cols, rows), toPixel(hand.Points[c[1]], cols, rows), HandColor, 2)
		}
		for _, p := range hand.Points {
			gocv.Circle(img, toPixel(p, cols, rows), 3, JointColor, -1)
		}
	}
}

func toPixel(p detector.Point3D, cols, rows int) image.Point {
	return image.Pt(int(p.X*float64(cols)), int(p.Y*float64(rows)))
}
