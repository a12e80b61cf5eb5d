package learngl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, Pulse(0), 1e-6)
	assert.InDelta(t, 1.0, Pulse(math.Pi/2), 1e-6)
	assert.InDelta(t, 0.0, Pulse(3*math.Pi/2), 1e-6)

	for ts := 0.0; ts < 20; ts += 0.37 {
		v := Pulse(ts)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestPulseColor(t *testing.T) {
	c := PulseColor(ColorBlack, math.Pi/2)
	assert.InDelta(t, 1.0, c.G, 1e-6)
	assert.Equal(t, float32(0), c.R)
	assert.Equal(t, float32(1), c.A)
}

func TestOffset(t *testing.T) {
	assert.InDelta(t, 0.3, Offset(math.Pi/2, 0.3), 1e-6)
	assert.InDelta(t, -0.3, Offset(3*math.Pi/2, 0.3), 1e-6)
}
