package samples

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"gocv.io/x/gocv"
)

func TestFolderName(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 42_123_456, time.UTC)

	got := FolderName(ts)

	if want := "muestras_240307090503042123"; got != want {
		t.Errorf("FolderName() = %q, want %q", got, want)
	}
}

func TestCreateFolder_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frame_actions", "hola")

	for i := 0; i < 2; i++ {
		if err := CreateFolder(dir); err != nil {
			t.Fatalf("CreateFolder() call %d error = %v", i+1, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestWriter_NewFolder(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, time.March, 7, 9, 5, 3, 1_000, time.Local))
	w := NewWriter(mock)
	dir := filepath.Join(t.TempDir(), "hola")

	path, err := w.NewFolder(dir)
	if err != nil {
		t.Fatalf("NewFolder() error = %v", err)
	}

	if got, want := filepath.Base(path), "muestras_240307090503000001"; got != want {
		t.Errorf("folder = %q, want %q", got, want)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("folder %q not inside %q", path, dir)
	}
}

func TestWriter_NewFolder_NoCollision(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local))
	w := NewWriter(mock)
	dir := t.TempDir()

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		path, err := w.NewFolder(dir)
		if err != nil {
			t.Fatalf("NewFolder() error = %v", err)
		}
		if seen[path] {
			t.Fatalf("folder %q returned twice", path)
		}
		seen[path] = true
	}

	if !seen[filepath.Join(dir, "muestras_240307090503000002")] {
		t.Errorf("expected timestamp to advance by a microsecond per collision, got %v", seen)
	}
}

func TestWriter_DefaultClock(t *testing.T) {
	w := NewWriter(nil)

	path, err := w.NewFolder(t.TempDir())
	if err != nil {
		t.Fatalf("NewFolder() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), FolderPrefix) {
		t.Errorf("folder %q missing prefix %q", path, FolderPrefix)
	}
}

func TestSaveFrames(t *testing.T) {
	dir := t.TempDir()

	var frames []gocv.Mat
	for i := 0; i < 3; i++ {
		frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
		defer frame.Close()
		frames = append(frames, frame)
	}

	if err := SaveFrames(frames, dir); err != nil {
		t.Fatalf("SaveFrames() error = %v", err)
	}

	for n := 1; n <= 3; n++ {
		if _, err := os.Stat(FramePath(dir, n)); err != nil {
			t.Errorf("frame %d missing: %v", n, err)
		}
	}
	if _, err := os.Stat(FramePath(dir, 4)); !os.IsNotExist(err) {
		t.Error("unexpected fourth frame")
	}
}

func TestSaveFrames_MissingDir(t *testing.T) {
	frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
	defer frame.Close()

	err := SaveFrames([]gocv.Mat{frame}, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
