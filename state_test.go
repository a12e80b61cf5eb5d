package learngl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateEdges(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyW, true)
	assert.True(t, in.KeyDown(KeyW))
	assert.True(t, in.KeyPressed(KeyW))

	// Held across frames: pressed only on the first.
	in.Reset()
	in.SetKey(KeyW, true)
	assert.True(t, in.KeyDown(KeyW))
	assert.False(t, in.KeyPressed(KeyW))

	in.Reset()
	in.SetKey(KeyW, false)
	assert.False(t, in.KeyDown(KeyW))
	assert.True(t, in.KeyReleased(KeyW))

	in.Reset()
	assert.False(t, in.KeyReleased(KeyW))
}

func TestInputStateOutOfRange(t *testing.T) {
	in := NewInputState()
	assert.NotPanics(t, func() {
		in.SetKey(KeyNone, true)
		in.SetKey(KeyCount, true)
		in.SetKey(Key(-1), true)
	})
	assert.False(t, in.KeyDown(KeyCount))
	assert.False(t, in.KeyPressed(Key(-1)))
	assert.False(t, in.KeyReleased(KeyNone))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "Esc", KeyName(KeyEscape))
	assert.Equal(t, "W", KeyName(KeyW))
	assert.Equal(t, "--", KeyName(KeyNone))
}

func TestRenderStateResize(t *testing.T) {
	s := NewRenderState(800, 600, false)

	assert.True(t, s.Resize(1024, 768))
	assert.Equal(t, 1024, s.Width)
	assert.Equal(t, 768, s.Height)

	assert.False(t, s.Resize(1024, 768), "same size")
	assert.False(t, s.Resize(0, 0), "minimized")
	assert.Equal(t, 1024, s.Width)

	assert.InDelta(t, 1024.0/768.0, s.Aspect(), 1e-6)
	assert.Equal(t, float32(1), (&RenderState{}).Aspect())
}

func TestWireframeTogglesOncePerPress(t *testing.T) {
	s := NewRenderState(800, 600, false)
	in := NewInputState()

	// Press W and hold it for three frames.
	changes := 0
	for frame := 0; frame < 3; frame++ {
		in.Reset()
		in.SetKey(KeyW, true)
		if s.HandleInput(in) {
			changes++
		}
	}
	assert.Equal(t, 1, changes)
	assert.True(t, s.Wireframe)

	// Release, then press again.
	in.Reset()
	in.SetKey(KeyW, false)
	assert.False(t, s.HandleInput(in))

	in.Reset()
	in.SetKey(KeyW, true)
	assert.True(t, s.HandleInput(in))
	assert.False(t, s.Wireframe)
}

func TestHandleInputCloseAndReload(t *testing.T) {
	s := NewRenderState(800, 600, true)
	in := NewInputState()

	in.SetKey(KeyR, true)
	s.HandleInput(in)
	assert.True(t, s.ReloadRequested)
	assert.False(t, s.CloseRequested)

	in.Reset()
	in.SetKey(KeyEscape, true)
	s.HandleInput(in)
	assert.True(t, s.CloseRequested)
	assert.True(t, s.Wireframe, "unchanged")
}
