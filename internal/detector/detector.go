package detector

import "gocv.io/x/gocv"

// Detector defines the interface for landmark detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns the detected landmarks.
	// A frame without hands yields a Result whose HandPresent is false.
	Detect(frame *gocv.Mat) (Result, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Result is the per-frame output of a Detector.
type Result struct {
	Hands []HandLandmarks `json:"hands"`
	// Pose holds the body landmarks, empty when no body was found.
	Pose []Point3D `json:"pose"`
}

// HandPresent reports whether at least one hand was detected.
func (r Result) HandPresent() bool {
	return len(r.Hands) > 0
}

// Hand returns the hand with the given handedness, if detected.
func (r Result) Hand(handedness string) (HandLandmarks, bool) {
	for _, h := range r.Hands {
		if h.Handedness == handedness {
			return h, true
		}
	}
	return HandLandmarks{}, false
}

// Config holds configuration options for landmark detection.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// ScriptPath overrides the location of the holistic service script.
	ScriptPath string
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
