package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestMockCamera_Playback(t *testing.T) {
	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()
	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame1, &frame2})

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cam.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	for i := 0; i < 2; i++ {
		if err := cam.Read(&dst); err != nil {
			t.Fatalf("Read() %d error = %v", i+1, err)
		}
		if dst.Rows() != 480 || dst.Cols() != 640 {
			t.Errorf("frame %d size = %dx%d, want 640x480", i+1, dst.Cols(), dst.Rows())
		}
	}

	// Third read should fail like a disconnected device
	if err := cam.Read(&dst); !errors.Is(err, ErrReadFailed) {
		t.Errorf("Read() error = %v, want ErrReadFailed", err)
	}
	if cam.Served() != 2 {
		t.Errorf("Served() = %d, want 2", cam.Served())
	}
}

func TestMockCamera_NotOpen(t *testing.T) {
	cam := NewMockCamera(nil)
	dst := gocv.NewMat()
	defer dst.Close()

	if err := cam.Read(&dst); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("Read() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestMockCamera_CloseCounted(t *testing.T) {
	cam := NewMockCamera(nil)
	cam.Open()

	if err := cam.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if cam.IsOpen() {
		t.Error("IsOpen() should be false after Close()")
	}
	if cam.Closes() != 1 {
		t.Errorf("Closes() = %d, want 1", cam.Closes())
	}
}
