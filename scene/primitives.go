package scene

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// CreateSphere generates a UV-sphere mesh
func CreateSphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	var vertices []Vertex
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * stdmath.Pi / float64(rings)
		sinPhi := float32(stdmath.Sin(phi))
		cosPhi := float32(stdmath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2.0 * stdmath.Pi / float64(segments)
			sinTheta := float32(stdmath.Sin(theta))
			cosTheta := float32(stdmath.Cos(theta))

			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				UV:       mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreateSkydome returns a unit sphere whose faces point inwards.
func CreateSkydome(segments, rings int) *Mesh {
	m := CreateSphere(1, segments, rings)
	m.Name = "Skydome"
	m.FlipFaces()
	return m
}

// CreateScreenQuad returns a two-triangle quad covering NDC [-1,1]² with
// UVs spanning [0,1]².
func CreateScreenQuad() *Mesh {
	vertices := []Vertex{
		{Position: mgl32.Vec3{-1, -1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, -1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{1, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-1, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0, 1}},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return CreateMeshFromData("ScreenQuad", vertices, indices)
}
