package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerticesCount(t *testing.T) {
	for _, tc := range []struct{ segments, sectors int }{
		{1, 3}, {1, 4}, {2, 8}, {7, 13}, {127, 127},
	} {
		coords, err := GenerateVertices(tc.segments, tc.sectors)
		require.NoError(t, err)

		want := 2 + tc.sectors*(tc.segments+1)
		assert.Len(t, coords, want*3, "segments=%d sectors=%d", tc.segments, tc.sectors)
		assert.Equal(t, want, VertexCount(tc.segments, tc.sectors))
	}
}

func TestGenerateVerticesPoles(t *testing.T) {
	c, err := NewCylinder(3, 6)
	require.NoError(t, err)

	assert.Equal(t, [3]float32{0, -1, 0}, c.Vertex(BottomPole))
	assert.Equal(t, [3]float32{0, 1, 0}, c.Vertex(TopPole))
}

func TestRingVerticesOnUnitCircle(t *testing.T) {
	c, err := NewCylinder(5, 17)
	require.NoError(t, err)

	for i := FirstRing; i < c.VertexCount(); i++ {
		v := c.Vertex(i)
		r := v[0]*v[0] + v[2]*v[2]
		assert.InDelta(t, 1.0, r, 1e-5, "vertex %d", i)
	}
}

func TestRingHeightsAndOrder(t *testing.T) {
	const segments, sectors = 4, 8
	c, err := NewCylinder(segments, sectors)
	require.NoError(t, err)

	for ring := 0; ring <= segments; ring++ {
		wantY := -1 + float64(ring)*2/float64(segments)
		for s := 0; s < sectors; s++ {
			v := c.Vertex(FirstRing + ring*sectors + s)
			assert.InDelta(t, wantY, v[1], 1e-6, "ring %d sector %d", ring, s)

			phi := float64(s) * 2 * math.Pi / sectors
			assert.InDelta(t, math.Cos(phi), v[0], 1e-6)
			assert.InDelta(t, math.Sin(phi), v[2], 1e-6)
		}
	}

	// top ring lands exactly on y=1
	last := c.Vertex(c.VertexCount() - 1)
	assert.Equal(t, float32(1), last[1])
}

func TestGenerateVerticesInvalid(t *testing.T) {
	for _, tc := range []struct{ segments, sectors int }{
		{0, 4}, {-1, 4}, {4, 0}, {4, -3}, {0, 0},
	} {
		_, err := GenerateVertices(tc.segments, tc.sectors)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "segments=%d sectors=%d", tc.segments, tc.sectors)

		_, err = NewCylinder(tc.segments, tc.sectors)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}
