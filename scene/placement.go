package scene

import "github.com/go-gl/mathgl/mgl32"

// Moon offsets relative to the parent's model matrix.
const (
	MoonScale    float32 = 0.2
	MoonDistance float32 = 8.0
	MoonSpeed    float32 = 1.0
)

// Placement is everything the renderer needs to draw one sphere instance.
type Placement struct {
	Name         string
	Model        mgl32.Mat4
	Normal       mgl32.Mat4
	Color        Color
	TextureIndex int
	Emissive     bool
	Moon         bool
}

// ModelMatrix returns scale(size) · rotate(t·speed, axis) · translate(0,0,-distance).
func ModelMatrix(b CelestialBody, t float32) mgl32.Mat4 {
	m := mgl32.Scale3D(b.Size, b.Size, b.Size)
	if b.RotationAxis != 0 {
		axis := mgl32.Vec3{0, b.RotationAxis, 0}.Normalize()
		m = m.Mul4(mgl32.HomogRotate3D(t*b.AngularSpeed, axis))
	}
	return m.Mul4(mgl32.Translate3D(0, 0, -b.Distance))
}

// MoonMatrix places the moon around a parent body.
func MoonMatrix(parent mgl32.Mat4, t float32) mgl32.Mat4 {
	return parent.
		Mul4(mgl32.Scale3D(MoonScale, MoonScale, MoonScale)).
		Mul4(mgl32.HomogRotate3D(t*MoonSpeed, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.Translate3D(0, 0, -MoonDistance))
}

// NormalMatrix is the inverse-transpose of the model-view matrix, where the
// view matrix is the inverse of the camera transform.
func NormalMatrix(viewTransform, model mgl32.Mat4) mgl32.Mat4 {
	return viewTransform.Inv().Mul4(model).Inv().Transpose()
}

// Placements computes the draw list for time t in table order. A body with
// HasSatellite is immediately followed by its moon.
func (s *Scene) Placements(t float32, viewTransform mgl32.Mat4) []Placement {
	out := make([]Placement, 0, len(s.Bodies)+1)
	for _, b := range s.Bodies {
		model := ModelMatrix(b, t)
		out = append(out, Placement{
			Name:         b.Name,
			Model:        model,
			Normal:       NormalMatrix(viewTransform, model),
			Color:        b.Color,
			TextureIndex: b.TextureIndex,
			Emissive:     b.Emissive,
		})

		if b.HasSatellite {
			moon := MoonMatrix(model, t)
			out = append(out, Placement{
				Name:         b.Name + " moon",
				Model:        moon,
				Normal:       NormalMatrix(viewTransform, moon),
				Color:        ColorWhite,
				TextureIndex: MoonTextureIndex,
				Moon:         true,
			})
		}
	}
	return out
}
