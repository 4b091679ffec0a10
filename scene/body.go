package scene

import "fmt"

// EarthSize is the unit all body sizes are expressed in.
const EarthSize float32 = 1.0

// CelestialBody is one entry of the fixed body table.
type CelestialBody struct {
	Name         string
	Distance     float32 // along local -Z, in scaled units
	AngularSpeed float32 // radians per second
	Size         float32 // uniform scale, EarthSize = 1
	RotationAxis float32 // Y component of the rotation axis
	Color        Color
	TextureIndex int
	HasSatellite bool // draws the moon relative to this body
	Emissive     bool // unlit, e.g. the sun
}

// DefaultBodies returns the sun and the eight planets in table order.
// The table is not sorted by distance: Uranus (14) follows Saturn (18).
func DefaultBodies() []CelestialBody {
	return []CelestialBody{
		{Name: "Sun", Distance: 0, AngularSpeed: 0, Size: 7.0, RotationAxis: 1, Color: Color{1.0, 0.85, 0.3}, TextureIndex: 0, Emissive: true},
		{Name: "Mercury", Distance: 8, AngularSpeed: 2.5, Size: EarthSize * 0.7, RotationAxis: 1, Color: Color{0.6, 0.6, 0.6}, TextureIndex: 1},
		{Name: "Venus", Distance: 9, AngularSpeed: 2.0, Size: EarthSize * 0.9, RotationAxis: 1, Color: Color{0.9, 0.75, 0.5}, TextureIndex: 2},
		{Name: "Earth", Distance: 10, AngularSpeed: 1.2, Size: EarthSize, RotationAxis: 1, Color: Color{0.3, 0.5, 1.0}, TextureIndex: 3, HasSatellite: true},
		{Name: "Mars", Distance: 11, AngularSpeed: 1.0, Size: EarthSize * 0.5, RotationAxis: 1, Color: Color{0.9, 0.35, 0.2}, TextureIndex: 4},
		{Name: "Jupiter", Distance: 15, AngularSpeed: 0.8, Size: EarthSize * 1.4, RotationAxis: 1, Color: Color{0.85, 0.7, 0.5}, TextureIndex: 5},
		{Name: "Saturn", Distance: 18, AngularSpeed: 0.7, Size: EarthSize * 1.3, RotationAxis: 1, Color: Color{0.9, 0.8, 0.55}, TextureIndex: 6},
		{Name: "Uranus", Distance: 14, AngularSpeed: 0.5, Size: EarthSize * 3.0, RotationAxis: 1, Color: Color{0.55, 0.85, 0.9}, TextureIndex: 7},
		{Name: "Neptune", Distance: 15, AngularSpeed: 0.4, Size: EarthSize * 1.1, RotationAxis: 1, Color: Color{0.3, 0.4, 0.95}, TextureIndex: 8},
	}
}

// Texture slots following the per-body ones.
const (
	MoonTextureIndex    = 9
	SkydomeTextureIndex = 10
)

// DefaultTextureFiles lists texture paths relative to the resource root,
// indexed by CelestialBody.TextureIndex, MoonTextureIndex and
// SkydomeTextureIndex.
func DefaultTextureFiles() []string {
	return []string{
		"textures/sunmap.png",
		"textures/mercurymap.png",
		"textures/venusmap.png",
		"textures/earthmap.png",
		"textures/marsmap.png",
		"textures/jupitermap.png",
		"textures/saturnmap.png",
		"textures/uranusmap.png",
		"textures/neptunemap.png",
		"textures/moonmap.png",
		"textures/skydome.png",
	}
}

// validateBodies checks that every texture index resolves.
func validateBodies(bodies []CelestialBody, textures []string) error {
	for _, b := range bodies {
		if b.TextureIndex < 0 || b.TextureIndex >= len(textures) {
			return fmt.Errorf("body %q: texture index %d out of range [0,%d)", b.Name, b.TextureIndex, len(textures))
		}
	}
	for _, idx := range []int{MoonTextureIndex, SkydomeTextureIndex} {
		if idx >= len(textures) {
			return fmt.Errorf("texture table has %d entries, need index %d", len(textures), idx)
		}
	}
	return nil
}
