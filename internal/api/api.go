// Package api exposes the remote control surface of the viewer: state reads
// come from a bus-fed snapshot, mutations queue commands for the X event
// loop.
package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"xoverlay/internal/build"
	"xoverlay/internal/bus"
	"xoverlay/internal/core"
	"xoverlay/internal/view"
	"xoverlay/pkg/chiext"
)

type StateOutput struct {
	Body State
}

type OpenInput struct {
	Body struct {
		Path string `json:"path" minLength:"1" doc:"Image file to load"`
	}
}

type RotateInput struct {
	Body struct {
		Turns *int `json:"turns,omitempty" minimum:"-3" maximum:"3" doc:"Quarter turns, positive clockwise, default 1"`
	}
}

type OpacityInput struct {
	Body struct {
		Value float64 `json:"value" minimum:"0.1" maximum:"1" doc:"Image opacity"`
	}
}

type EmptyOutput struct{}

func New(cmds *bus.Commands, snapshot *Snapshot) http.Handler {
	router := chi.NewRouter()
	router.Use(chiext.Logger())

	humaAPI := humachi.New(router, huma.DefaultConfig("xoverlay", build.Current.Version))

	huma.Get(humaAPI, "/api/state", func(ctx context.Context, _ *struct{}) (*StateOutput, error) {
		return &StateOutput{Body: snapshot.State()}, nil
	})

	huma.Post(humaAPI, "/api/open", func(ctx context.Context, input *OpenInput) (*EmptyOutput, error) {
		if err := cmds.Send(ctx, bus.OpenCmd{Path: input.Body.Path}); err != nil {
			return nil, huma.Error503ServiceUnavailable("viewer is shutting down", err)
		}
		return &EmptyOutput{}, nil
	})

	huma.Post(humaAPI, "/api/rotate", func(ctx context.Context, input *RotateInput) (*EmptyOutput, error) {
		turns := core.Optional(input.Body.Turns, 1)
		if err := cmds.Send(ctx, bus.RotateCmd{Turns: turns}); err != nil {
			return nil, huma.Error503ServiceUnavailable("viewer is shutting down", err)
		}
		return &EmptyOutput{}, nil
	})

	huma.Post(humaAPI, "/api/opacity", func(ctx context.Context, input *OpacityInput) (*EmptyOutput, error) {
		if err := cmds.Send(ctx, bus.OpacityCmd{Value: view.ClampOpacity(input.Body.Value)}); err != nil {
			return nil, huma.Error503ServiceUnavailable("viewer is shutting down", err)
		}
		return &EmptyOutput{}, nil
	})

	return router
}
