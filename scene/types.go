package scene

import "github.com/go-gl/mathgl/mgl32"

type Color struct {
	R, G, B float32
}

var ColorWhite = Color{1, 1, 1}

func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// Vertex is the CPU-side layout of mesh vertices. Interleave flattens it
// to position(3) normal(3) uv(2).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// FloatsPerVertex is the interleaved stride of a Vertex in float32s.
const FloatsPerVertex = 8
