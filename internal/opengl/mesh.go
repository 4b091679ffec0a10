package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"solar-system/scene"
)

// GPUMesh is the GPU side of one drawable geometry.
type GPUMesh struct {
	VAO, VBO, EBO uint32
	Mode          uint32 // gl.TRIANGLES or gl.POINTS
	ElementCount  int32
	Indexed       bool
}

// UploadMesh copies an indexed mesh to the GPU. Attributes: 0 position,
// 1 normal, 2 uv.
func UploadMesh(mesh *scene.Mesh) (*GPUMesh, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("mesh %q: no geometry", mesh.Name)
	}

	data := mesh.Interleave()
	stride := int32(scene.FloatsPerVertex * 4)

	gpu := &GPUMesh{
		Mode:         gl.TRIANGLES,
		ElementCount: int32(len(mesh.Indices)),
		Indexed:      true,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if err := CheckError("upload mesh " + mesh.Name); err != nil {
		gpu.Destroy()
		return nil, err
	}
	return gpu, nil
}

// UploadStars copies a star field as a non-indexed point cloud.
// Attributes: 0 position, 1 colour.
func UploadStars(stars scene.StarField) (*GPUMesh, error) {
	gpu := &GPUMesh{
		Mode:         gl.POINTS,
		ElementCount: int32(stars.Count),
	}
	stride := int32(scene.FloatsPerStar * 4)

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	if len(stars.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(stars.Vertices)*4, gl.Ptr(stars.Vertices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)

	if err := CheckError("upload stars"); err != nil {
		gpu.Destroy()
		return nil, err
	}
	return gpu, nil
}

func (g *GPUMesh) Draw() {
	if g.ElementCount == 0 {
		return
	}
	gl.BindVertexArray(g.VAO)
	if g.Indexed {
		gl.DrawElements(g.Mode, g.ElementCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(g.Mode, 0, g.ElementCount)
	}
	gl.BindVertexArray(0)
}

func (g *GPUMesh) Destroy() {
	if g.EBO != 0 {
		gl.DeleteBuffers(1, &g.EBO)
		g.EBO = 0
	}
	if g.VBO != 0 {
		gl.DeleteBuffers(1, &g.VBO)
		g.VBO = 0
	}
	if g.VAO != 0 {
		gl.DeleteVertexArrays(1, &g.VAO)
		g.VAO = 0
	}
}
