package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// vecNear compares with an absolute tolerance; mgl32's ApproxEqualThreshold
// is relative and collapses to eps² when the expected component is zero.
func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() < eps
}

func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) >= float64(eps) {
			return false
		}
	}
	return true
}

func starColor(s StarField, i int) Color {
	o := i*FloatsPerStar + 3
	return Color{s.Vertices[o], s.Vertices[o+1], s.Vertices[o+2]}
}

func findBody(s *Scene, name string) (CelestialBody, bool) {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return CelestialBody{}, false
}
