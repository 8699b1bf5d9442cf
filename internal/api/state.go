package api

import (
	"context"
	"sync"

	"xoverlay/internal/bus"
)

type ImageState struct {
	ID     string `json:"id" doc:"Session ID of the current load"`
	Title  string `json:"title"`
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type GeometryState struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type State struct {
	Image    *ImageState   `json:"image,omitempty"`
	Geometry GeometryState `json:"geometry"`
	Opacity  float64       `json:"opacity"`
}

// Snapshot mirrors the viewer state from bus events so API reads never touch
// the X event loop.
type Snapshot struct {
	mu    sync.RWMutex
	state State
}

func NewSnapshot(opacity float64) *Snapshot {
	s := &Snapshot{state: State{Opacity: opacity}}

	bus.Subscribe("api.Snapshot", func(_ context.Context, event bus.EventImageLoaded) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Image = &ImageState{
			ID:     event.ID,
			Title:  event.Title,
			Path:   event.Path,
			Width:  event.Width,
			Height: event.Height,
		}
		return nil
	})
	bus.Subscribe("api.Snapshot", func(_ context.Context, event bus.EventImageRotated) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.state.Image != nil && s.state.Image.ID == event.ID {
			s.state.Image.Width = event.Width
			s.state.Image.Height = event.Height
		}
		return nil
	})
	bus.Subscribe("api.Snapshot", func(_ context.Context, event bus.EventGeometryChanged) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Geometry = GeometryState{X: event.X, Y: event.Y, Width: event.Width, Height: event.Height}
		return nil
	})
	bus.Subscribe("api.Snapshot", func(_ context.Context, event bus.EventOpacityChanged) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Opacity = event.Value
		return nil
	})

	return s
}

func (s *Snapshot) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	if s.state.Image != nil {
		img := *s.state.Image
		state.Image = &img
	}
	return state
}
