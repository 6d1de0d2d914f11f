//go:build js

package main

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/glintgl/glint/app"
	"github.com/glintgl/glint/gpu"
)

func main() {
	slog.SetDefault(slog.New(newConsoleHandler(slog.LevelInfo)))

	js.Global().Set("glintInit", js.FuncOf(glintInit))

	// keep the runtime alive for the browser callbacks
	select {}
}

// glintInit is the entry point the hosting page calls once the module is
// loaded. It returns a Promise that resolves as soon as the gpu context is
// established; the frame loop keeps running on browser callbacks afterwards.
// All the blocking work happens on a spawned goroutine, the calling script
// thread is never blocked.
func glintInit(this js.Value, args []js.Value) any {
	executor := js.FuncOf(func(this js.Value, promiseArgs []js.Value) any {
		resolve := promiseArgs[0]
		reject := promiseArgs[1]

		go func() {
			defer func() {
				if r := recover(); r != nil {
					js.Global().Get("console").Call("error", fmt.Sprint("panic: ", r))
					reject.Invoke(fmt.Sprint(r))
				}
			}()

			err := app.Run(app.Options{
				WindowTitle: "glint",
				ClearColor:  gpu.ColorSRGBA(0.06, 0.07, 0.09, 1),
				OnReady: func() {
					resolve.Invoke(js.Null())
				},
			})

			// on the web the loop only returns on a fatal error
			if err != nil {
				slog.Error("Fatal error", slog.Any("error", err))
				reject.Invoke(err.Error())
			}
		}()

		return nil
	})

	// the Promise constructor calls the executor synchronously
	defer executor.Release()

	return js.Global().Get("Promise").New(executor)
}
