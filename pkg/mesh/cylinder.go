// Package mesh provides procedural mesh generation for the cylinder viewer.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a tessellation count is not positive.
var ErrInvalidParameter = errors.New("invalid parameter")

// Fixed vertex indices of the cap centers.
const (
	BottomPole = 0
	TopPole    = 1

	// FirstRing is the index of the first ring vertex.
	FirstRing = 2
)

// Cylinder is a unit cylinder spanning y in [-1, 1] with radius 1.
type Cylinder struct {
	Segments int
	Sectors  int

	// Positions holds x, y, z triples.
	Positions []float32
	Indices   IndexSet
}

// NewCylinder generates vertices and index buffers for a cylinder with the
// given number of height segments and angular sectors.
func NewCylinder(segments, sectors int) (*Cylinder, error) {
	positions, err := GenerateVertices(segments, sectors)
	if err != nil {
		return nil, err
	}

	indices, err := BuildIndices(sectors, segments)
	if err != nil {
		return nil, err
	}

	c := &Cylinder{
		Segments:  segments,
		Sectors:   sectors,
		Positions: positions,
		Indices:   indices,
	}

	if err := c.Indices.Validate(c.VertexCount()); err != nil {
		return nil, err
	}
	return c, nil
}

// VertexCount returns the number of vertices in Positions.
func (c *Cylinder) VertexCount() int {
	return len(c.Positions) / 3
}

// Vertex returns the position of vertex i.
func (c *Cylinder) Vertex(i int) [3]float32 {
	return [3]float32{c.Positions[i*3], c.Positions[i*3+1], c.Positions[i*3+2]}
}

// RingCount returns the number of vertex rings for the given segment count.
func RingCount(segments int) int {
	return segments + 1
}

// VertexCount returns the number of vertices GenerateVertices emits.
func VertexCount(segments, sectors int) int {
	return FirstRing + sectors*RingCount(segments)
}

// GenerateVertices returns the flattened vertex positions of a unit cylinder.
//
// Layout: bottom pole, top pole, then segments+1 rings from y=-1 to y=1.
// Each ring holds sectors vertices starting at angle 0 and going
// counter-clockwise when viewed from +Y.
func GenerateVertices(segments, sectors int) ([]float32, error) {
	if err := checkCounts(sectors, segments); err != nil {
		return nil, err
	}

	rings := RingCount(segments)
	coords := make([]float32, 0, VertexCount(segments, sectors)*3)

	coords = append(coords, 0, -1, 0)
	coords = append(coords, 0, 1, 0)

	deltaHeight := 2.0 / float64(segments)
	deltaAngle := 2 * math.Pi / float64(sectors)

	for r := 0; r < rings; r++ {
		h := -1 + float64(r)*deltaHeight
		if r == rings-1 {
			h = 1 // pin the top ring, no drift
		}
		for s := 0; s < sectors; s++ {
			phi := float64(s) * deltaAngle
			coords = append(coords,
				float32(math.Cos(phi)),
				float32(h),
				float32(math.Sin(phi)),
			)
		}
	}

	return coords, nil
}

func checkCounts(sectors, segments int) error {
	if sectors <= 0 {
		return fmt.Errorf("sectors must be positive, got %d: %w", sectors, ErrInvalidParameter)
	}
	if segments <= 0 {
		return fmt.Errorf("segments must be positive, got %d: %w", segments, ErrInvalidParameter)
	}
	return nil
}
