package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"solar-system/scene"
	"solar-system/shader"
)

// Skydome is a textured inward-facing sphere centred on the camera. It is
// drawn first with depth writes off so everything else lands in front.
type Skydome struct {
	mesh    *GPUMesh
	texture *scene.Texture
	Radius  float32
}

func NewSkydome(texture *scene.Texture, radius float32) (*Skydome, error) {
	mesh, err := UploadMesh(scene.CreateSkydome(48, 24))
	if err != nil {
		return nil, err
	}
	return &Skydome{mesh: mesh, texture: texture, Radius: radius}, nil
}

// Model places the dome around the camera position.
func (sd *Skydome) Model(camera mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(camera[0], camera[1], camera[2]).
		Mul4(mgl32.Scale3D(sd.Radius, sd.Radius, sd.Radius))
}

// Draw renders the dome with prog, which must already hold view and
// projection.
func (sd *Skydome) Draw(prog *shader.Program, camera mgl32.Vec3) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	gl.UseProgram(prog.Handle)
	setMat4(prog, "model", sd.Model(camera))
	bindTexture(0, sd.texture.GLID)
	sd.mesh.Draw()

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

func (sd *Skydome) Destroy() {
	sd.mesh.Destroy()
}
