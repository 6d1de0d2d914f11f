//go:build js

package main

import (
	"context"
	"log/slog"
	"strings"
	"syscall/js"
)

// consoleHandler routes slog records to the browser console, picking
// console.error/warn/debug/log based on the record level.
type consoleHandler struct {
	level slog.Leveler
	attrs []slog.Attr
}

func newConsoleHandler(level slog.Level) *consoleHandler {
	return &consoleHandler{level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder
	sb.WriteString(rec.Message)

	appendAttr := func(attr slog.Attr) bool {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		sb.WriteString(attr.Value.String())
		return true
	}

	for _, attr := range h.attrs {
		appendAttr(attr)
	}

	rec.Attrs(appendAttr)

	console := js.Global().Get("console")

	switch {
	case rec.Level >= slog.LevelError:
		console.Call("error", sb.String())
	case rec.Level >= slog.LevelWarn:
		console.Call("warn", sb.String())
	case rec.Level < slog.LevelInfo:
		console.Call("debug", sb.String())
	default:
		console.Call("log", sb.String())
	}

	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	// groups are not worth flattening for console output
	return h
}
