package app

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/glintgl/glint/gpu"
	"github.com/glintgl/glint/shell"
)

type Options struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// ClearColor fills every frame. The zero value is opaque white.
	ClearColor gpu.Color

	// OnReady is invoked once the gpu context is established, before the
	// first frame tick. Optional.
	OnReady func()
}

// seams for the tests in this package
var (
	newWindow    = shell.NewWindow
	newPresenter = newGPUPresenter
)

func newGPUPresenter(sd *wgpu.SurfaceDescriptor) (presenter, func(), error) {
	ctx, err := gpu.New(sd)
	if err != nil {
		return nil, nil, err
	}

	return gpuPresenter{gpu.NewPresenter(ctx)}, ctx.Release, nil
}

// gpuPresenter adapts *gpu.Presenter to the loop's presenter interface.
type gpuPresenter struct {
	*gpu.Presenter
}

func (p gpuPresenter) BeginFrame() (frame, error) {
	f, err := p.Presenter.BeginFrame()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Run opens the window (or binds the canvas), establishes the gpu context
// and hands control to the platform event loop. It returns nil on a clean
// window close and the first fatal error otherwise. On the browser target
// it never returns nil.
func Run(opts Options) error {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "glint"
	}

	// create a new window (or canvas)
	win, err := newWindow(opts.WindowWidth, opts.WindowHeight, opts.WindowTitle)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	pr, release, err := newPresenter(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	// surface and context go away before the window does
	defer release()

	if opts.OnReady != nil {
		opts.OnReady()
	}

	loop := &loopState{
		window:     win,
		presenter:  pr,
		clearColor: opts.ClearColor,
	}

	return win.Run(loop.tick)
}
