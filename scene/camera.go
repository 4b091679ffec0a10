package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewState is the camera: its pose (Transform, camera-to-world) and the
// projection matrix. The view matrix uploaded to shaders is Transform⁻¹.
type ViewState struct {
	Transform  mgl32.Mat4
	Projection mgl32.Mat4

	FOV       float32 // fixed horizontal-reference field of view, radians
	Near      float32
	Far       float32
	DollyStep float32

	Width  int
	Height int
}

// NewViewState places the camera distance units along +Z looking down -Z.
// Projection stays identity until the first Resize.
func NewViewState(fovDegrees, near, far, distance, dollyStep float32) *ViewState {
	return &ViewState{
		Transform:  mgl32.Translate3D(0, 0, distance),
		Projection: mgl32.Ident4(),
		FOV:        mgl32.DegToRad(fovDegrees),
		Near:       near,
		Far:        far,
		DollyStep:  dollyStep,
	}
}

// ViewMatrix transforms world space into camera space.
func (v *ViewState) ViewMatrix() mgl32.Mat4 {
	return v.Transform.Inv()
}

// Position is the camera origin in world space.
func (v *ViewState) Position() mgl32.Vec3 {
	return v.Transform.Col(3).Vec3()
}

// DollyForward moves the camera one step along its local -Z.
func (v *ViewState) DollyForward() {
	v.Transform = v.Transform.Mul4(mgl32.Translate3D(0, 0, -v.DollyStep))
}

// DollyBack is the inverse of DollyForward.
func (v *ViewState) DollyBack() {
	v.Transform = v.Transform.Mul4(mgl32.Translate3D(0, 0, v.DollyStep))
}

// Resize recomputes the projection for a framebuffer of the given size.
// It reports false and leaves the projection alone for a zero-area
// framebuffer (minimised window).
func (v *ViewState) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	v.Width = width
	v.Height = height

	aspect := float32(width) / float32(height)
	v.Projection = mgl32.Perspective(VerticalFOV(v.FOV, width, height), aspect, v.Near, v.Far)
	return true
}

// VerticalFOV returns the vertical field of view for the given size. Wide
// windows use fov unchanged (hor+); tall windows widen the vertical angle
// so the horizontal extent stays fov.
func VerticalFOV(fov float32, width, height int) float32 {
	if width >= height {
		return fov
	}
	aspect := float64(width) / float64(height)
	return float32(2 * math.Atan(math.Tan(float64(fov)*0.5)*(1/aspect)))
}
