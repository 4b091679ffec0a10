package scene

import "github.com/go-gl/mathgl/mgl32"

// Plane represents a half-space: n·p + d = 0.
// Normal points into the "inside" of the frustum.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts the six normalized frustum planes from a
// projection·view matrix (Gribb/Hartmann, on matrix rows).
func FrustumFromVP(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)

	var f Frustum
	f.Planes[0] = normalizePlane(r3.Add(r0))
	f.Planes[1] = normalizePlane(r3.Sub(r0))
	f.Planes[2] = normalizePlane(r3.Add(r1))
	f.Planes[3] = normalizePlane(r3.Sub(r1))
	f.Planes[4] = normalizePlane(r3.Add(r2))
	f.Planes[5] = normalizePlane(r3.Sub(r2))
	return f
}

func normalizePlane(v mgl32.Vec4) Plane {
	n := v.Vec3()
	l := n.Len()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.Mul(1 / l), D: v[3] / l}
}

// IntersectsSphere returns false if the sphere is completely outside.
func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceTo(center) < -radius {
			return false
		}
	}
	return true
}

// BoundingSphere returns the world-space bounding sphere of a mesh whose
// local bounds are a sphere of localRadius around the origin.
func BoundingSphere(model mgl32.Mat4, localRadius float32) (mgl32.Vec3, float32) {
	center := model.Col(3).Vec3()
	scale := model.Col(0).Vec3().Len()
	if s := model.Col(1).Vec3().Len(); s > scale {
		scale = s
	}
	if s := model.Col(2).Vec3().Len(); s > scale {
		scale = s
	}
	return center, localRadius * scale
}

// Visible reports whether a placement drawn with a mesh of the given local
// radius intersects f. Build f once per frame with FrustumFromVP.
func (p Placement) Visible(f *Frustum, localRadius float32) bool {
	c, r := BoundingSphere(p.Model, localRadius)
	return f.IntersectsSphere(c, r)
}
