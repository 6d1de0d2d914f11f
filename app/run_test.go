package app

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/glintgl/glint/shell"
)

type fakeWindow struct {
	width, height uint32

	maxFrames  int
	ticks      int
	terminated bool
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	return w.width, w.height
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{}
}

func (w *fakeWindow) Terminate() {
	w.terminated = true
}

func (w *fakeWindow) Run(frame func() error) error {
	for range w.maxFrames {
		w.ticks++

		if err := frame(); err != nil {
			return err
		}
	}

	return nil
}

func withFakes(t *testing.T, win *fakeWindow, pr presenter, bootErr error) {
	t.Helper()

	origWindow, origPresenter := newWindow, newPresenter
	t.Cleanup(func() {
		newWindow, newPresenter = origWindow, origPresenter
	})

	newWindow = func(width, height int, title string) (shell.Window, error) {
		return win, nil
	}

	newPresenter = func(sd *wgpu.SurfaceDescriptor) (presenter, func(), error) {
		if bootErr != nil {
			return nil, nil, bootErr
		}

		return pr, func() {}, nil
	}
}

func TestRunBootstrapFailureRunsNoFrames(t *testing.T) {
	win := &fakeWindow{width: 800, height: 600, maxFrames: 3}
	withFakes(t, win, nil, errors.New("no suitable adapter"))

	err := Run(Options{})
	if err == nil {
		t.Fatal("Run succeeded, want error")
	}

	if win.ticks != 0 {
		t.Errorf("window ran %d frames, want 0", win.ticks)
	}

	if !win.terminated {
		t.Error("window was not terminated")
	}
}

func TestRunReadyBeforeFirstFrame(t *testing.T) {
	win := &fakeWindow{width: 800, height: 600, maxFrames: 2}
	withFakes(t, win, &fakePresenter{}, nil)

	ticksAtReady := -1

	err := Run(Options{
		OnReady: func() {
			ticksAtReady = win.ticks
		},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if ticksAtReady != 0 {
		t.Errorf("OnReady saw %d frames, want 0", ticksAtReady)
	}

	if win.ticks != 2 {
		t.Errorf("window ran %d frames, want 2", win.ticks)
	}

	if !win.terminated {
		t.Error("window was not terminated")
	}
}

func TestRunCleanCloseReturnsNil(t *testing.T) {
	win := &fakeWindow{width: 800, height: 600, maxFrames: 1}
	withFakes(t, win, &fakePresenter{}, nil)

	if err := Run(Options{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunPropagatesFrameError(t *testing.T) {
	win := &fakeWindow{width: 800, height: 600, maxFrames: 5}

	pr := &fakePresenter{}
	pr.acquireErrs = []error{nil, errors.New("device destroyed")}
	withFakes(t, win, pr, nil)

	err := Run(Options{})
	if err == nil {
		t.Fatal("Run succeeded, want error")
	}

	if win.ticks != 2 {
		t.Errorf("window ran %d frames, want 2", win.ticks)
	}
}
