package scene

import "math/rand"

// FloatsPerStar is the interleaved stride of a star: position(3) colour(3).
const FloatsPerStar = 6

// StarField is a static background point cloud.
type StarField struct {
	Count    int
	Vertices []float32
}

// GenerateStars draws a count in [0, maxStars) and places each star at integer
// coordinates in [0, extent)³. Every star is white.
func GenerateStars(rng *rand.Rand, maxStars, extent int) StarField {
	if maxStars <= 0 || extent <= 0 {
		return StarField{}
	}

	count := rng.Intn(maxStars)
	verts := make([]float32, 0, count*FloatsPerStar)
	for i := 0; i < count; i++ {
		x := float32(rng.Intn(extent))
		y := float32(rng.Intn(extent))
		z := float32(rng.Intn(extent))
		verts = append(verts, x, y, z, 1, 1, 1)
	}
	return StarField{Count: count, Vertices: verts}
}
