package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objFace is an already-triangulated face (three vertex references).
type objFace struct {
	vIdx, vtIdx, vnIdx [3]int // 0-based position / UV / normal indices (-1 = absent)
}

// LoadOBJ parses a Wavefront .obj file into a single indexed Mesh.
// Object and group boundaries are ignored; materials are not read.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ text from r.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	var positions []mgl32.Vec3
	var normals []mgl32.Vec3
	var uvs []mgl32.Vec2
	var faces []objFace

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v", "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %s needs 3 components", line, fields[0])
			}
			v, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if fields[0] == "v" {
				positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})
			} else {
				normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})
			}

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt needs 2 components", line)
			}
			v, err := parseFloats(fields[1:3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})

		case "f":
			if len(fields) < 4 {
				continue
			}
			fverts := make([]faceVertex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				fv, err := parseFaceVertex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w %q", line, err, tok)
				}
				fverts = append(fverts, fv)
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(fverts); i++ {
				f0, f1, f2 := fverts[0], fverts[i], fverts[i+1]
				faces = append(faces, objFace{
					vIdx:  [3]int{f0.v, f1.v, f2.v},
					vtIdx: [3]int{f0.vt, f1.vt, f2.vt},
					vnIdx: [3]int{f0.vn, f1.vn, f2.vn},
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no geometry found")
	}

	return buildMeshFromOBJ("obj", faces, positions, normals, uvs), nil
}

func parseFloats(fields []string) ([]float32, error) {
	out := make([]float32, len(fields))
	for i, s := range fields {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

type faceVertex struct{ v, vt, vn int }

var errFaceIndex = errors.New("bad face index")

// parseFaceVertex parses one face vertex token: "v", "v/vt", "v//vn", "v/vt/vn".
// Returns 0-based indices (-1 if absent). Negative OBJ indices are relative
// to the current end of the respective pool. The position is required and
// every present index must resolve inside its pool.
func parseFaceVertex(tok string, nPos, nUV, nNorm int) (faceVertex, error) {
	parseIdx := func(s string, pool int) (int, error) {
		if s == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil || n == 0 {
			return -1, errFaceIndex
		}
		if n > 0 {
			n--
		} else {
			n += pool
		}
		if n < 0 || n >= pool {
			return -1, errFaceIndex
		}
		return n, nil
	}
	parts := strings.Split(tok, "/")
	if len(parts) > 3 || parts[0] == "" {
		return faceVertex{}, errFaceIndex
	}
	res := faceVertex{v: -1, vt: -1, vn: -1}
	var err error
	if res.v, err = parseIdx(parts[0], nPos); err != nil {
		return faceVertex{}, err
	}
	if len(parts) > 1 {
		if res.vt, err = parseIdx(parts[1], nUV); err != nil {
			return faceVertex{}, err
		}
	}
	if len(parts) > 2 {
		if res.vn, err = parseIdx(parts[2], nNorm); err != nil {
			return faceVertex{}, err
		}
	}
	return res, nil
}

// buildMeshFromOBJ converts parsed face data into a deduplicated Mesh.
func buildMeshFromOBJ(
	name string,
	faces []objFace,
	positions []mgl32.Vec3,
	normals []mgl32.Vec3,
	uvs []mgl32.Vec2,
) *Mesh {
	type key struct{ v, vt, vn int }
	vertMap := map[key]uint32{}
	var vertices []Vertex
	var indices []uint32

	safeNorm := func(i int) mgl32.Vec3 {
		if i >= 0 && i < len(normals) {
			return normals[i]
		}
		return mgl32.Vec3{0, 1, 0}
	}
	safeUV := func(i int) mgl32.Vec2 {
		if i >= 0 && i < len(uvs) {
			return uvs[i]
		}
		return mgl32.Vec2{}
	}

	for _, face := range faces {
		for c := 0; c < 3; c++ {
			k := key{face.vIdx[c], face.vtIdx[c], face.vnIdx[c]}
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
				continue
			}
			idx := uint32(len(vertices))
			vertices = append(vertices, Vertex{
				Position: positions[k.v],
				Normal:   safeNorm(k.vn),
				UV:       safeUV(k.vt),
			})
			vertMap[k] = idx
			indices = append(indices, idx)
		}
	}

	if len(normals) == 0 {
		generateSmoothNormals(vertices, indices)
	}

	return CreateMeshFromData(name, vertices, indices)
}

// generateSmoothNormals computes area-weighted normals and writes them to the vertex slice.
func generateSmoothNormals(vertices []Vertex, indices []uint32) {
	accum := make([]mgl32.Vec3, len(vertices))

	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		v1 := vertices[i1].Position
		v2 := vertices[i2].Position
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if accum[i].Len() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}
