package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Presenter owns the surface configuration and hands out one Frame per
// redraw tick. The surface must be configured with a non-zero size before
// the first BeginFrame, and reconfigured after every window resize. The
// Presenter becomes invalid once the window it was created for is gone.
type Presenter struct {
	*Context

	config *wgpu.SurfaceConfiguration
}

func NewPresenter(ctx *Context) *Presenter {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	// the preferred format comes first in the capability list
	format := wgpu.TextureFormatBGRA8Unorm
	if len(caps.Formats) > 0 {
		format = caps.Formats[0]
	}

	return &Presenter{
		Context: ctx,

		config: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   caps.AlphaModes[0],
		},
	}
}

// Format returns the texture format the surface is configured with.
func (p *Presenter) Format() wgpu.TextureFormat {
	return p.config.Format
}

// Configure binds the surface to the given drawable size.
func (p *Presenter) Configure(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("configure surface: zero size %dx%d", width, height)
	}

	p.config.Width = width
	p.config.Height = height
	p.Surface.Configure(p.Adapter, p.Device, p.config)

	return nil
}

// BeginFrame acquires the next presentable texture from the surface.
func (p *Presenter) BeginFrame() (*Frame, error) {
	texture, err := p.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	return &Frame{pr: p, texture: texture}, nil
}
