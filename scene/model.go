package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadModel loads a mesh from an OBJ or glTF file, chosen by extension.
func LoadModel(path string) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("model %q: unsupported format %q", path, ext)
	}
}
