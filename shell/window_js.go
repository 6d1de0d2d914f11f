//go:build js

package shell

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
}

// NewWindow binds to the canvas element with id "glint", creating one and
// appending it to the document body if the page does not provide it. The
// width and height arguments are ignored, the canvas always fills the
// viewport.
func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")

	canvas := document.Call("getElementById", "glint")
	if canvas.IsNull() {
		canvas = document.Call("createElement", "canvas")
		canvas.Set("id", "glint")
		document.Get("body").Call("appendChild", canvas)
	}

	canvas.Set("style", "width:100vw; height:100vh")

	document.Set("title", title)

	return &jsWindow{canvas: canvas}, nil
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	ratio := js.Global().Get("devicePixelRatio").Float()

	vv := js.Global().Get("visualViewport")
	width := vv.Get("width").Float()
	height := vv.Get("height").Float()
	return uint32(width * ratio), uint32(height * ratio)
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) Terminate() {
	// the canvas belongs to the page
}

// Run schedules frame on the browser's requestAnimationFrame callback. The
// calling goroutine parks between callbacks, the browser thread is never
// blocked. Run only returns if frame fails.
func (g *jsWindow) Run(frame func() error) error {
	errs := make(chan error, 1)

	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    return
                }
            }
        }
	})`)

	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		g.resizeCanvas()

		if err := frame(); err != nil {
			errs <- err
			fn.Release()
			return false
		}

		return true
	})

	helper.Call("run", fn)

	return <-errs
}

// resizeCanvas keeps the canvas backing store in sync with the viewport.
func (g *jsWindow) resizeCanvas() {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	g.canvas.Set("width", viewWidth*ratio)
	g.canvas.Set("height", viewHeight*ratio)
}
