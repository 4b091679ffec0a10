package scene

// Mesh holds CPU-side indexed triangle data.
// GPU upload is managed by the opengl package.
type Mesh struct {
	Name       string
	Vertices   []Vertex
	Indices    []uint32
	IndexCount uint32
}

// CreateMeshFromData builds a Mesh. Meshes without indices get a sequential
// index list so every mesh can be drawn with DrawElements.
func CreateMeshFromData(name string, vertices []Vertex, indices []uint32) *Mesh {
	if len(indices) == 0 {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	return &Mesh{
		Name:       name,
		Vertices:   vertices,
		Indices:    indices,
		IndexCount: uint32(len(indices)),
	}
}

// Interleave returns the vertex data as a flat float32 slice with
// FloatsPerVertex entries per vertex.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}

// FlipFaces reverses the winding of every triangle and negates normals so
// the surface is visible from the inside.
func (m *Mesh) FlipFaces() {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		m.Indices[i+1], m.Indices[i+2] = m.Indices[i+2], m.Indices[i+1]
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Mul(-1)
	}
}

// BoundingRadius is the largest vertex distance from the local origin.
func (m *Mesh) BoundingRadius() float32 {
	var r float32
	for _, v := range m.Vertices {
		if l := v.Position.Len(); l > r {
			r = l
		}
	}
	return r
}
