// Package samples writes recorded gestures to disk as folders of numbered images.
package samples

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	"gocv.io/x/gocv"
)

// Sample folder naming.
const (
	FolderPrefix = "muestras_"
	ImageExt     = ".jpg"

	// timestampLayout is YYMMDDHHMMSS; microseconds are appended separately.
	timestampLayout = "060102150405"
)

// FolderName returns the sample folder name for t, with microsecond resolution.
func FolderName(t time.Time) string {
	return fmt.Sprintf("%s%s%06d", FolderPrefix, t.Format(timestampLayout), t.Nanosecond()/int(time.Microsecond))
}

// CreateFolder creates path and any missing parents. It is a no-op if the
// directory already exists.
func CreateFolder(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create folder %s: %w", path, err)
	}
	return nil
}

// Writer creates uniquely named sample folders.
type Writer struct {
	clock clock.Clock
}

// NewWriter creates a Writer. A nil clock uses the wall clock.
func NewWriter(c clock.Clock) *Writer {
	if c == nil {
		c = clock.New()
	}
	return &Writer{clock: c}
}

// NewFolder creates a new sample folder inside dir and returns its path.
// If a folder with the current timestamp already exists, the timestamp is
// advanced a microsecond at a time until the name is free.
func (w *Writer) NewFolder(dir string) (string, error) {
	if err := CreateFolder(dir); err != nil {
		return "", err
	}

	t := w.clock.Now()
	for {
		path := filepath.Join(dir, FolderName(t))
		err := os.Mkdir(path, 0755)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("create sample folder: %w", err)
		}
		t = t.Add(time.Microsecond)
	}
}

// FramePath returns the file name of the n-th frame (1-based) in dir.
func FramePath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%d%s", n, ImageExt))
}

// SaveFrames writes frames to dir as 1.jpg, 2.jpg, ... in order.
func SaveFrames(frames []gocv.Mat, dir string) error {
	for i, frame := range frames {
		path := FramePath(dir, i+1)
		if ok := gocv.IMWrite(path, frame); !ok {
			return fmt.Errorf("write frame %d to %s", i+1, path)
		}
	}
	return nil
}
