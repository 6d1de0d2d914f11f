package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Frame is a single presentable image acquired from the surface. Clear it,
// then Present it. A frame that is abandoned instead must be Discarded to
// give the image back to the surface.
type Frame struct {
	pr      *Presenter
	texture *wgpu.Texture
}

// Clear encodes a render pass that clears the frame to the given color and
// submits it to the queue.
func (f *Frame) Clear(color Color) error {
	view, err := f.texture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer view.Release()

	enc, err := f.pr.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearSurface",
	})

	if err != nil {
		return err
	}

	defer enc.Release()

	r, g, b, a := color.Components()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearSurface",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(r),
					G: float64(g),
					B: float64(b),
					A: float64(a),
				},
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	// encode into a command buffer
	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearSurface"})
	if err != nil {
		return err
	}

	defer buf.Release()

	f.pr.Queue.Submit(buf)

	return nil
}

// Present shows the frame. The image does not need a release after a
// successful present.
func (f *Frame) Present() {
	f.pr.Surface.Present()
	f.texture = nil
}

func (f *Frame) Discard() {
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

type Releaser interface {
	Release()
}

type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
