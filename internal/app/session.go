// Package app runs the sample capture loop: camera, detector, recorder and disk.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"github.com/ayusman/gesturecap/internal/capture"
	"github.com/ayusman/gesturecap/internal/config"
	"github.com/ayusman/gesturecap/internal/detector"
	"github.com/ayusman/gesturecap/internal/overlay"
	"github.com/ayusman/gesturecap/internal/recorder"
	"github.com/ayusman/gesturecap/internal/samples"
	"github.com/ayusman/gesturecap/internal/store"
)

// Options wires a Session to its collaborators.
type Options struct {
	Config   config.Config
	Camera   capture.Camera
	Display  capture.Display
	Detector detector.Detector
	// Store indexes written samples. Optional.
	Store *store.Store
	// Writer names sample folders. Defaults to a wall-clock writer.
	Writer *samples.Writer
	Logger *zap.SugaredLogger
}

// Stats counts what a session has done so far.
type Stats struct {
	Frames    int
	Saved     int
	Discarded int
	// SavedFrames is the total number of frames written to disk.
	SavedFrames int
}

// Session is a single capture run for one word. It owns the camera,
// display and detector for the duration of Run and releases them on exit.
type Session struct {
	cfg      config.Config
	camera   capture.Camera
	display  capture.Display
	detector detector.Detector
	store    *store.Store
	writer   *samples.Writer
	log      *zap.SugaredLogger
	machine  *recorder.Machine[gocv.Mat]
	style    overlay.Style
	word     *store.Word
	stats    Stats
}

// NewSession validates the configuration and builds a Session.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if opts.Camera == nil || opts.Display == nil || opts.Detector == nil {
		return nil, errors.New("camera, display and detector are required")
	}

	writer := opts.Writer
	if writer == nil {
		writer = samples.NewWriter(nil)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Session{
		cfg:      opts.Config,
		camera:   opts.Camera,
		display:  opts.Display,
		detector: opts.Detector,
		store:    opts.Store,
		writer:   writer,
		log:      log.With("word", opts.Config.Word),
		machine:  recorder.New[gocv.Mat](opts.Config.Recorder),
		style:    overlay.DefaultStyle(opts.Config.Font, opts.Config.FontSize),
	}, nil
}

// Run captures until the camera stops delivering frames, the quit key is
// pressed or ctx is cancelled. Those three endings return nil; detector and
// persistence failures are returned. Camera, display and detector are
// released on every path.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		closeMats(s.machine.Drain())
		err = multierr.Combine(err,
			s.camera.Close(),
			s.display.Close(),
			s.detector.Close(),
		)
	}()

	wordPath := s.cfg.WordPath()
	if err := samples.CreateFolder(wordPath); err != nil {
		return err
	}

	if s.store != nil {
		word, err := s.store.Words().GetOrCreate(s.cfg.Word)
		if err != nil {
			return fmt.Errorf("index word: %w", err)
		}
		s.word = word
	}

	if err := s.camera.Open(); err != nil {
		return err
	}

	s.log.Infow("capture started", "path", wordPath, "params", s.cfg.Recorder)

	frame := gocv.NewMat()
	defer frame.Close()

	for {
		select {
		case <-ctx.Done():
			s.log.Infow("capture cancelled", "stats", s.stats)
			return nil
		default:
		}

		if err := s.camera.Read(&frame); err != nil {
			s.log.Infow("camera stopped delivering frames", "error", err, "stats", s.stats)
			return nil
		}
		s.stats.Frames++

		quit, err := s.process(&frame)
		if err != nil {
			return err
		}
		if quit {
			s.log.Infow("quit key pressed", "stats", s.stats)
			return nil
		}
	}
}

// process handles one captured frame and reports whether the operator quit.
func (s *Session) process(frame *gocv.Mat) (bool, error) {
	result, err := s.detector.Detect(frame)
	if err != nil {
		return false, fmt.Errorf("detect landmarks: %w", err)
	}

	prev := s.machine.State()
	candidate := frame.Clone()
	step := s.machine.Step(result.HandPresent(), candidate)
	if !step.Kept {
		candidate.Close()
	}
	if step.State != prev {
		s.log.Debugw("recorder state changed", "from", prev, "to", step.State, "buffered", s.machine.Len())
	}

	closeMats(step.Released)

	if step.Sample != nil {
		err := s.persist(step.Sample)
		closeMats(step.Sample)
		if err != nil {
			return false, err
		}
	} else if len(step.Released) > 0 && step.State == recorder.Idle {
		s.stats.Discarded++
		s.log.Debugw("recording discarded", "frames", len(step.Released))
	}

	image := frame.Clone()
	defer image.Close()

	overlay.Status(&image, step.Overlay, s.style)
	overlay.Keypoints(&image, result)
	s.display.Show(image)

	return capture.IsQuitKey(s.display.WaitKey(s.cfg.WaitKeyDelay), s.cfg.QuitKey), nil
}

// persist writes a finished sample to a new folder and indexes it.
func (s *Session) persist(frames []gocv.Mat) error {
	dir, err := s.writer.NewFolder(s.cfg.WordPath())
	if err != nil {
		return err
	}

	if err := samples.SaveFrames(frames, dir); err != nil {
		return fmt.Errorf("save sample: %w", err)
	}

	if s.store != nil && s.word != nil {
		entry := &store.Sample{
			WordID: s.word.ID,
			Folder: filepath.Base(dir),
			Frames: len(frames),
		}
		if err := s.store.Samples().Create(entry); err != nil {
			// The frames are already on disk; name the folder so it can be
			// indexed or removed by hand.
			s.log.Errorw("sample written but not indexed", "folder", dir, "frames", len(frames), "error", err)
			return fmt.Errorf("index sample %s (unindexed folder %s): %w", entry.Folder, dir, err)
		}
	}

	s.stats.Saved++
	s.stats.SavedFrames += len(frames)
	s.log.Infow("sample saved", "folder", dir, "frames", len(frames))

	return nil
}

// Stats returns the counters of the session.
func (s *Session) Stats() Stats {
	return s.stats
}

func closeMats(mats []gocv.Mat) {
	for i := range mats {
		mats[i].Close()
	}
}
