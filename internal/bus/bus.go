// Package bus carries viewer events out of the X event loop and commands
// into it. Subscriptions are registered during startup, before anything
// publishes.
package bus

import (
	"context"
	"fmt"
	"log/slog"
)

var _ctx = context.Background()

func SetContext(ctx context.Context) {
	_ctx = ctx
}

var subs = make(map[string][]func(ctx context.Context, event any))

func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	topic := fmt.Sprintf("%T", *new(T))
	subs[topic] = append(subs[topic], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "error", err)
		}
	})
}

func Publish[T any](event T) {
	for _, fn := range subs[fmt.Sprintf("%T", event)] {
		fn(_ctx, event)
	}
}

// EventImageLoaded is published after a file is decoded and fitted.
type EventImageLoaded struct {
	ID     string
	Title  string
	Path   string
	Width  int
	Height int
}

// EventImageRotated is published after a rotation, carrying the transposed
// pixel dimensions.
type EventImageRotated struct {
	ID     string
	Width  int
	Height int
}

type EventGeometryChanged struct {
	X      int
	Y      int
	Width  int
	Height int
}

type EventOpacityChanged struct {
	Value float64
}
