package app

import (
	"fmt"
	"log/slog"

	"github.com/glintgl/glint/gpu"
)

// presenter is the slice of gpu.Presenter the frame loop needs.
type presenter interface {
	Configure(width, height uint32) error
	BeginFrame() (frame, error)
}

// frame is the slice of gpu.Frame the frame loop needs.
type frame interface {
	Clear(color gpu.Color) error
	Present()
	Discard()
}

// sizer reports the current drawable size of the window.
type sizer interface {
	GetSize() (uint32, uint32)
}

type loopState struct {
	window     sizer
	presenter  presenter
	clearColor gpu.Color

	surfaceWidth  uint32
	surfaceHeight uint32
}

// tick renders a single frame. Resize handling always happens before the
// image acquisition, and the clear submission always happens before the
// present.
func (ls *loopState) tick() error {
	width, height := ls.window.GetSize()

	// a zero-area window has nothing to present, skip the frame
	if width == 0 || height == 0 {
		return nil
	}

	// reconfigure surface if needed
	if width != ls.surfaceWidth || height != ls.surfaceHeight {
		slog.Debug("Resize surface",
			slog.Int("width", int(width)),
			slog.Int("height", int(height)),
		)

		if err := ls.presenter.Configure(width, height); err != nil {
			return fmt.Errorf("resize surface: %w", err)
		}

		ls.surfaceWidth = width
		ls.surfaceHeight = height
	}

	fr, err := ls.presenter.BeginFrame()
	if err != nil {
		if !gpu.IsSurfaceStale(err) {
			return fmt.Errorf("acquire frame: %w", err)
		}

		// the surface is outdated or lost. reconfigure and give the
		// acquisition one more chance this tick.
		slog.Warn("Surface stale, reconfiguring", slog.Any("error", err))

		if err := ls.presenter.Configure(width, height); err != nil {
			return fmt.Errorf("reconfigure stale surface: %w", err)
		}

		fr, err = ls.presenter.BeginFrame()
		if err != nil {
			return fmt.Errorf("acquire frame after reconfigure: %w", err)
		}
	}

	if err := fr.Clear(ls.clearColor); err != nil {
		fr.Discard()
		return fmt.Errorf("clear frame: %w", err)
	}

	fr.Present()

	return nil
}
