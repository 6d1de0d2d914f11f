package shell

import "github.com/cogentcore/webgpu/wgpu"

// Window is the platform surface shared by the desktop and browser targets.
// Exactly one Window exists per process (or page), and it must exist before
// any gpu setup starts.
type Window interface {
	// GetSize returns the current drawable size in pixels.
	GetSize() (uint32, uint32)

	// SurfaceDescriptor describes the presentation surface of this window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run drives the platform event loop, invoking frame once per redraw
	// tick until the window is closed or frame returns an error. On the
	// browser target there is no close event and Run never returns nil.
	Run(frame func() error) error

	Terminate()
}
