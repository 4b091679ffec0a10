package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseOBJQuad(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Errorf("expected 4 deduplicated vertices, got %d", len(m.Vertices))
	}
	if m.IndexCount != 6 || int(m.IndexCount) != len(m.Indices) {
		t.Errorf("expected 6 indices, got IndexCount=%d len=%d", m.IndexCount, len(m.Indices))
	}
	for i, v := range m.Vertices {
		if v.Normal != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d: expected normal +Z, got %v", i, v.Normal)
		}
	}
	if uv := m.Vertices[2].UV; uv != (mgl32.Vec2{1, 1}) {
		t.Errorf("vertex 2: expected uv (1,1), got %v", uv)
	}
}

func TestParseOBJGeneratesNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	for i, v := range m.Vertices {
		if !vecNear(v.Normal, mgl32.Vec3{0, 0, 1}, 1e-6) {
			t.Errorf("vertex %d: expected generated normal +Z, got %v", i, v.Normal)
		}
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 2 0 0\nv 0 2 0\nf -3 -2 -1\n"
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if got := m.Vertices[1].Position; got != (mgl32.Vec3{2, 0, 0}) {
		t.Errorf("expected second vertex (2,0,0), got %v", got)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no faces", "v 0 0 0\nv 1 0 0\n"},
		{"bad float", "v 0 x 0\n"},
		{"short vertex", "v 1 2\n"},
		{"face out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"},
		{"face negative out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 2 3\n"},
		{"bad face index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 x 3\n"},
		{"zero face index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"missing uv", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n"},
	}
	for _, tt := range tests {
		if _, err := ParseOBJ(strings.NewReader(tt.src)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	_, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"))
	if err == nil || !strings.Contains(err.Error(), `line 4: bad face index "9"`) {
		t.Errorf("expected line and token in error, got %v", err)
	}
}

func TestLoadModel(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "quad.obj")
	if err := os.WriteFile(objPath, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadModel(objPath)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if len(m.Indices) != 6 {
		t.Errorf("expected 6 indices, got %d", len(m.Indices))
	}

	if _, err := LoadModel(filepath.Join(dir, "sphere.3ds")); err == nil {
		t.Error("expected unsupported format error")
	}
	if _, err := LoadModel(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}

func writeTriangleGLB(t *testing.T, path string, mode gltf.PrimitiveMode, withPosition bool) {
	t.Helper()
	doc := gltf.NewDocument()
	attrs := gltf.PrimitiveAttributes{}
	if withPosition {
		attrs[gltf.POSITION] = modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	}
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: attrs,
			Mode:       mode,
		}},
	})
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
}

func TestLoadGLTF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.glb")
	writeTriangleGLB(t, path, gltf.PrimitiveTriangles, true)

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if len(m.Vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(m.Vertices))
	}
	if m.IndexCount != 3 || len(m.Indices) != 3 {
		t.Fatalf("expected 3 indices, got IndexCount=%d len=%d", m.IndexCount, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx != uint32(i) {
			t.Errorf("index %d: expected %d, got %d", i, i, idx)
		}
	}
	// No NORMAL attribute: smooth normals are generated from the winding.
	for i, v := range m.Vertices {
		if !vecNear(v.Normal, mgl32.Vec3{0, 0, 1}, 1e-6) {
			t.Errorf("vertex %d: expected generated normal +Z, got %v", i, v.Normal)
		}
	}
	if got := m.Vertices[1].Position; got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("vertex 1: expected (1,0,0), got %v", got)
	}
}

func TestLoadGLTFErrors(t *testing.T) {
	dir := t.TempDir()

	lines := filepath.Join(dir, "lines.glb")
	writeTriangleGLB(t, lines, gltf.PrimitiveLines, true)
	if _, err := LoadGLTF(lines); err == nil {
		t.Error("expected error for non-triangle primitive")
	}

	noPos := filepath.Join(dir, "nopos.glb")
	writeTriangleGLB(t, noPos, gltf.PrimitiveTriangles, false)
	if _, err := LoadGLTF(noPos); err == nil {
		t.Error("expected error for missing POSITION")
	}

	if _, err := LoadGLTF(filepath.Join(dir, "missing.glb")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeTexture(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(1, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	tex, err := DecodeTexture("test.png", &buf)
	if err != nil {
		t.Fatalf("DecodeTexture: %v", err)
	}
	if tex.Width != 2 || tex.Height != 3 {
		t.Fatalf("expected 2x3, got %dx%d", tex.Width, tex.Height)
	}
	if len(tex.Pixels) != 2*3*4 {
		t.Fatalf("expected %d bytes, got %d", 2*3*4, len(tex.Pixels))
	}
	o := (2*2 + 1) * 4
	if got := tex.Pixels[o : o+4]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("pixel (1,2): expected [10 20 30 255], got %v", got)
	}
}

func TestLoadTextureMissing(t *testing.T) {
	if _, err := LoadTexture(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing texture")
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTexture(bad); err == nil {
		t.Error("expected error for undecodable texture")
	}
}

func TestScreenQuad(t *testing.T) {
	q := CreateScreenQuad()
	if len(q.Vertices) != 4 || int(q.IndexCount) != 6 || len(q.Indices) != 6 {
		t.Fatalf("expected 4 vertices and 6 indices, got %d and %d", len(q.Vertices), len(q.Indices))
	}
	for i, v := range q.Vertices {
		if v.UV[0] < 0 || v.UV[0] > 1 || v.UV[1] < 0 || v.UV[1] > 1 {
			t.Errorf("vertex %d: uv %v outside [0,1]", i, v.UV)
		}
		if v.Position[0] != -1 && v.Position[0] != 1 {
			t.Errorf("vertex %d: x %v not at NDC edge", i, v.Position[0])
		}
	}
	if got := len(q.Interleave()); got != 4*FloatsPerVertex {
		t.Errorf("expected %d interleaved floats, got %d", 4*FloatsPerVertex, got)
	}
}

func TestSphereAndSkydome(t *testing.T) {
	s := CreateSphere(1, 16, 8)
	if int(s.IndexCount) != len(s.Indices) || len(s.Indices) != 16*8*6 {
		t.Errorf("sphere: expected %d indices, got %d", 16*8*6, len(s.Indices))
	}
	if r := s.BoundingRadius(); r < 0.999 || r > 1.001 {
		t.Errorf("sphere: expected radius 1, got %v", r)
	}

	d := CreateSkydome(16, 8)
	for i, v := range d.Vertices {
		// Inward normals point opposite to the position on a unit sphere.
		if !vecNear(v.Normal, v.Position.Mul(-1), 1e-5) {
			t.Fatalf("skydome vertex %d: normal %v not inward", i, v.Normal)
		}
	}
	if s.Indices[1] != d.Indices[2] || s.Indices[2] != d.Indices[1] {
		t.Error("skydome winding not reversed")
	}
}

func TestCreateMeshFromDataSequentialIndices(t *testing.T) {
	m := CreateMeshFromData("points", make([]Vertex, 5), nil)
	if m.IndexCount != 5 {
		t.Fatalf("expected 5 indices, got %d", m.IndexCount)
	}
	for i, idx := range m.Indices {
		if idx != uint32(i) {
			t.Errorf("index %d: expected %d, got %d", i, i, idx)
		}
	}
}
