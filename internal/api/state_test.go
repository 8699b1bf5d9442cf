package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xoverlay/internal/bus"
)

func TestSnapshotTracksEvents(t *testing.T) {
	snapshot := NewSnapshot(1.0)

	bus.Publish(bus.EventImageLoaded{ID: "a", Title: "cat.png", Path: "/tmp/cat.png", Width: 800, Height: 600})
	bus.Publish(bus.EventGeometryChanged{X: 91, Y: 61, Width: 818, Height: 678})
	bus.Publish(bus.EventOpacityChanged{Value: 0.4})

	state := snapshot.State()
	require.NotNil(t, state.Image)
	assert.Equal(t, "cat.png", state.Image.Title)
	assert.Equal(t, 800, state.Image.Width)
	assert.Equal(t, GeometryState{X: 91, Y: 61, Width: 818, Height: 678}, state.Geometry)
	assert.Equal(t, 0.4, state.Opacity)
}

func TestSnapshotRotationUpdatesMatchingSession(t *testing.T) {
	snapshot := NewSnapshot(1.0)

	bus.Publish(bus.EventImageLoaded{ID: "a", Title: "cat.png", Width: 800, Height: 600})
	bus.Publish(bus.EventImageRotated{ID: "stale", Width: 1, Height: 1})

	state := snapshot.State()
	require.NotNil(t, state.Image)
	assert.Equal(t, 800, state.Image.Width)

	bus.Publish(bus.EventImageRotated{ID: "a", Width: 600, Height: 800})

	state = snapshot.State()
	assert.Equal(t, 600, state.Image.Width)
	assert.Equal(t, 800, state.Image.Height)
}

func TestSnapshotStateIsACopy(t *testing.T) {
	snapshot := NewSnapshot(1.0)

	bus.Publish(bus.EventImageLoaded{ID: "a", Title: "cat.png", Width: 800, Height: 600})

	state := snapshot.State()
	state.Image.Width = 1

	assert.Equal(t, 800, snapshot.State().Image.Width)
}
