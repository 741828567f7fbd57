// Package main is the gesturecap command: it records gesture samples from a
// webcam into per-word folders.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ayusman/gesturecap/internal/app"
	"github.com/ayusman/gesturecap/internal/capture"
	"github.com/ayusman/gesturecap/internal/config"
	"github.com/ayusman/gesturecap/internal/detector"
	"github.com/ayusman/gesturecap/internal/samples"
	"github.com/ayusman/gesturecap/internal/store"
)

const (
	// Flags.
	flagWord         = "word"
	flagRoot         = "root"
	flagActionsDir   = "actions-dir"
	flagCamera       = "camera"
	flagMarginFrames = "margin-frames"
	flagMinFrames    = "min-frames"
	flagDelayFrames  = "delay-frames"
	flagDebug        = "debug"

	envPrefix = "GESTURECAP_"
)

func main() {
	defaults := config.Default()

	rootFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    flagRoot,
			Value:   defaults.RootDir,
			Usage:   "directory that holds the actions folder",
			EnvVars: []string{envPrefix + "ROOT"},
		},
		&cli.StringFlag{
			Name:    flagActionsDir,
			Value:   defaults.ActionsDir,
			Usage:   "name of the actions folder under the root",
			EnvVars: []string{envPrefix + "ACTIONS_DIR"},
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
			EnvVars: []string{envPrefix + "DEBUG"},
		},
	}

	cliApp := &cli.App{
		Name:  "gesturecap",
		Usage: "capture hand gesture samples from a webcam",
		Flags: rootFlags,
		Commands: []*cli.Command{
			{
				Name:  "capture",
				Usage: "record samples of a word until the quit key is pressed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagWord,
						Aliases: []string{"w"},
						Value:   defaults.Word,
						Usage:   "word the samples belong to",
						EnvVars: []string{envPrefix + "WORD"},
					},
					&cli.IntFlag{
						Name:    flagCamera,
						Value:   defaults.CameraID,
						Usage:   "video device index",
						EnvVars: []string{envPrefix + "CAMERA"},
					},
					&cli.IntFlag{
						Name:    flagMarginFrames,
						Value:   defaults.Recorder.MarginFrames,
						Usage:   "frames skipped at the start and trimmed at the end of a sample",
						EnvVars: []string{envPrefix + "MARGIN_FRAMES"},
					},
					&cli.IntFlag{
						Name:    flagMinFrames,
						Value:   defaults.Recorder.MinFrames,
						Usage:   "minimum recorded frames for a sample to be kept",
						EnvVars: []string{envPrefix + "MIN_FRAMES"},
					},
					&cli.IntFlag{
						Name:    flagDelayFrames,
						Value:   defaults.Recorder.DelayFrames,
						Usage:   "hand-absent frames tolerated before a recording stops",
						EnvVars: []string{envPrefix + "DELAY_FRAMES"},
					},
				},
				Action: runCapture,
			},
			{
				Name:      "list",
				Usage:     "print the indexed samples",
				ArgsUsage: "[word]",
				Action:    runList,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func configFromContext(c *cli.Context) config.Config {
	cfg := config.Default()
	cfg.RootDir = c.String(flagRoot)
	cfg.ActionsDir = c.String(flagActionsDir)
	if word := c.String(flagWord); word != "" {
		cfg.Word = word
	}
	if c.IsSet(flagCamera) {
		cfg.CameraID = c.Int(flagCamera)
	}
	if c.IsSet(flagMarginFrames) {
		cfg.Recorder.MarginFrames = c.Int(flagMarginFrames)
	}
	if c.IsSet(flagMinFrames) {
		cfg.Recorder.MinFrames = c.Int(flagMinFrames)
	}
	if c.IsSet(flagDelayFrames) {
		cfg.Recorder.DelayFrames = c.Int(flagDelayFrames)
	}
	return cfg
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func openStore(cfg config.Config) (*store.Store, error) {
	if err := samples.CreateFolder(cfg.ActionsPath()); err != nil {
		return nil, err
	}
	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open sample index: %w", err)
	}
	return st, nil
}

func runCapture(c *cli.Context) error {
	cfg := configFromContext(c)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(c.Bool(flagDebug))
	if err != nil {
		return err
	}
	//nolint:errcheck
	defer logger.Sync()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		return err
	}

	session, err := app.NewSession(app.Options{
		Config:   cfg,
		Camera:   capture.NewCamera(cfg.CameraID, 0, 0),
		Display:  capture.NewWindow(cfg.WindowTitle()),
		Detector: det,
		Store:    st,
		Logger:   logger,
	})
	if err != nil {
		det.Close()
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		return err
	}

	stats := session.Stats()
	fmt.Fprintf(c.App.Writer, "%d samples saved (%d frames), %d discarded\n",
		stats.Saved, stats.SavedFrames, stats.Discarded)
	return nil
}

func runList(c *cli.Context) error {
	cfg := configFromContext(c)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.WriteReport(c.App.Writer, st, c.Args().First())
}
