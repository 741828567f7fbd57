// Package config holds the settings of a sample capture session.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"

	"github.com/ayusman/gesturecap/internal/recorder"
)

// Defaults matching the layout the training scripts expect.
const (
	DefaultActionsDir   = "frame_actions"
	DefaultWord         = "como_estas"
	DefaultDatabaseName = "samples.db"
	DefaultQuitKey      = 'q'
	DefaultWaitKeyDelay = 10
	DefaultFontSize     = 1.5
)

// ErrEmptyWord is returned when no capture target is configured.
var ErrEmptyWord = errors.New("word name is empty")

// Config holds everything a capture session needs.
type Config struct {
	// RootDir is the project root; samples live under RootDir/ActionsDir/Word.
	RootDir    string
	ActionsDir string
	Word       string

	CameraID     int
	QuitKey      rune
	WaitKeyDelay int // milliseconds

	Recorder recorder.Params

	Font     gocv.HersheyFont
	FontSize float64
}

// Default returns a Config for the current directory.
func Default() Config {
	return Config{
		RootDir:      ".",
		ActionsDir:   DefaultActionsDir,
		Word:         DefaultWord,
		CameraID:     0,
		QuitKey:      DefaultQuitKey,
		WaitKeyDelay: DefaultWaitKeyDelay,
		Recorder:     recorder.DefaultParams(),
		Font:         gocv.FontHersheyPlain,
		FontSize:     DefaultFontSize,
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	word := strings.TrimSpace(c.Word)
	if word == "" {
		return ErrEmptyWord
	}
	if strings.ContainsAny(word, `/\`) || word == "." || word == ".." {
		return fmt.Errorf("word name %q must be a single path element", c.Word)
	}
	if c.CameraID < 0 {
		return fmt.Errorf("camera id must be >= 0, got %d", c.CameraID)
	}
	if c.WaitKeyDelay <= 0 {
		return fmt.Errorf("wait key delay must be > 0, got %d", c.WaitKeyDelay)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be > 0, got %f", c.FontSize)
	}
	return c.Recorder.Validate()
}

// ActionsPath is the directory holding one folder per word.
func (c Config) ActionsPath() string {
	return filepath.Join(c.RootDir, c.ActionsDir)
}

// WordPath is the directory samples for the configured word are written to.
func (c Config) WordPath() string {
	return filepath.Join(c.ActionsPath(), c.Word)
}

// DatabasePath is where the sample index is kept.
func (c Config) DatabasePath() string {
	return filepath.Join(c.ActionsPath(), DefaultDatabaseName)
}

// WindowTitle is the title of the preview window.
func (c Config) WindowTitle() string {
	return fmt.Sprintf("Toma de muestras para %q", filepath.Base(c.WordPath()))
}
