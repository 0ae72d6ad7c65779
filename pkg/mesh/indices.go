package mesh

import "fmt"

// Primitive is the draw topology an index buffer is meant for.
type Primitive int

const (
	PrimitiveTriangleFan Primitive = iota
	PrimitiveTriangleStrip
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case PrimitiveTriangleFan:
		return "triangle_fan"
	case PrimitiveTriangleStrip:
		return "triangle_strip"
	default:
		return fmt.Sprintf("primitive(%d)", int(p))
	}
}

// IndexBuffer is an index list tagged with its primitive type.
type IndexBuffer struct {
	Primitive Primitive
	Indices   []uint32
}

// IndexSet holds the three parts of a cylinder: the caps and the side wall.
type IndexSet struct {
	Bottom IndexBuffer
	Middle IndexBuffer
	Top    IndexBuffer
}

// Parts returns the buffers in draw order.
func (s IndexSet) Parts() []IndexBuffer {
	return []IndexBuffer{s.Bottom, s.Middle, s.Top}
}

// Validate checks that every index references one of vertexCount vertices.
func (s IndexSet) Validate(vertexCount int) error {
	for _, part := range s.Parts() {
		for i, idx := range part.Indices {
			if int(idx) >= vertexCount {
				return fmt.Errorf("%s index %d out of range: %d >= %d", part.Primitive, i, idx, vertexCount)
			}
		}
	}
	return nil
}

// BuildIndices returns the index buffers for a cylinder laid out by
// GenerateVertices.
//
// The bottom and top caps are triangle fans around the poles, closed by
// repeating the first ring vertex. The side wall is one triangle strip;
// consecutive segments are joined with a doubled index so the restart only
// produces degenerate triangles.
func BuildIndices(sectors, segments int) (IndexSet, error) {
	if err := checkCounts(sectors, segments); err != nil {
		return IndexSet{}, err
	}

	return IndexSet{
		Bottom: capFan(BottomPole, FirstRing, sectors),
		Middle: sideStrip(sectors, segments),
		Top:    capFan(TopPole, FirstRing+sectors*segments, sectors),
	}, nil
}

// capFan builds a closed fan around center over the ring starting at start.
func capFan(center, start, sectors int) IndexBuffer {
	indices := make([]uint32, 0, sectors+2)
	indices = append(indices, uint32(center))
	for i := start; i < start+sectors; i++ {
		indices = append(indices, uint32(i))
	}
	indices = append(indices, uint32(start))

	return IndexBuffer{Primitive: PrimitiveTriangleFan, Indices: indices}
}

func sideStrip(sectors, segments int) IndexBuffer {
	// 2*(sectors+1) per segment plus 2 per restart
	indices := make([]uint32, 0, segments*2*(sectors+1)+2*(segments-1))

	for i := 0; i < segments; i++ {
		lower := FirstRing + i*sectors
		upper := FirstRing + (i+1)*sectors

		for j := 0; j <= sectors; j++ {
			indices = append(indices,
				uint32(lower+j%sectors),
				uint32(upper+j%sectors),
			)
		}

		if i != segments-1 {
			indices = append(indices, uint32(upper), uint32(upper))
		}
	}

	return IndexBuffer{Primitive: PrimitiveTriangleStrip, Indices: indices}
}
