package opengl

import (
	"fmt"
	"path/filepath"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"solar-system/internal/logger"
	"solar-system/scene"
	"solar-system/shader"
)

// Program names.
const (
	ProgramPlanet  = "planet"
	ProgramStars   = "stars"
	ProgramSkydome = "skydome"
	ProgramQuad    = "quad"
)

// Options configures NewRenderer.
type Options struct {
	ShaderDir     string
	SkydomeRadius float32
}

// Renderer owns every GPU object of the demo and draws one frame in two
// passes: the scene into a FramebufferTarget, then a screen quad that
// applies the post effects.
type Renderer struct {
	scene   *scene.Scene
	view    *scene.ViewState
	effects *scene.PostEffects

	shaders  *shader.Registry
	planet   *GPUMesh
	stars    *GPUMesh
	quad     *GPUMesh
	skydome  *Skydome
	textures []*scene.Texture
	target   FramebufferTarget

	planetRadius float32
}

// NewRenderer initialises OpenGL, builds every shader program and uploads
// the meshes and textures. textures is indexed like sc.TextureFiles.
// Must be called after the GLFW window context is made current.
func NewRenderer(sc *scene.Scene, view *scene.ViewState, effects *scene.PostEffects,
	planet *scene.Mesh, textures []*scene.Texture, opts Options) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL context",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	if len(textures) <= scene.SkydomeTextureIndex {
		return nil, fmt.Errorf("need %d textures, got %d", scene.SkydomeTextureIndex+1, len(textures))
	}

	r := &Renderer{
		scene:        sc,
		view:         view,
		effects:      effects,
		textures:     textures,
		shaders:      shader.NewRegistry(Compiler{}),
		planetRadius: planet.BoundingRadius(),
	}
	r.registerPrograms(opts.ShaderDir)
	if err := r.shaders.Build(); err != nil {
		return nil, err
	}
	for _, missing := range r.shaders.MissingUniforms() {
		logger.Log.Debug("uniform not active", zap.String("uniform", missing))
	}

	if err := r.upload(planet, opts.SkydomeRadius); err != nil {
		r.Destroy()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	r.uploadUniforms()
	return r, nil
}

func (r *Renderer) registerPrograms(dir string) {
	path := func(name string) (string, string) {
		return filepath.Join(dir, name+".vert"), filepath.Join(dir, name+".frag")
	}
	v, f := path(ProgramPlanet)
	r.shaders.Add(ProgramPlanet, v, f,
		"model", "view", "projection", "normalMatrix", "tint", "emissive", "diffuseTex")
	v, f = path(ProgramStars)
	r.shaders.Add(ProgramStars, v, f, "view", "projection", "pointSize")
	v, f = path(ProgramSkydome)
	r.shaders.Add(ProgramSkydome, v, f, "model", "view", "projection", "skyTex")
	v, f = path(ProgramQuad)
	r.shaders.Add(ProgramQuad, v, f,
		"screenTex", "texelSize", "greyscale", "flipHorizontal", "flipVertical", "blur")
}

func (r *Renderer) upload(planet *scene.Mesh, skydomeRadius float32) error {
	var err error
	if r.planet, err = UploadMesh(planet); err != nil {
		return fmt.Errorf("planet mesh: %w", err)
	}
	if r.stars, err = UploadStars(r.scene.Stars); err != nil {
		return fmt.Errorf("star field: %w", err)
	}
	if r.quad, err = UploadMesh(scene.CreateScreenQuad()); err != nil {
		return fmt.Errorf("screen quad: %w", err)
	}
	for _, tex := range r.textures {
		if err := UploadTexture(tex); err != nil {
			return err
		}
	}
	r.skydome, err = NewSkydome(r.textures[scene.SkydomeTextureIndex], skydomeRadius)
	if err != nil {
		return fmt.Errorf("skydome: %w", err)
	}
	return nil
}

// ── Uniform upload ───────────────────────────────────────────────────────────

func (r *Renderer) program(name string) *shader.Program {
	p, _ := r.shaders.Get(name)
	return p
}

// UploadView sends the current view matrix to every program that uses it.
func (r *Renderer) UploadView() {
	view := r.view.ViewMatrix()
	for _, name := range []string{ProgramPlanet, ProgramStars, ProgramSkydome} {
		p := r.program(name)
		gl.UseProgram(p.Handle)
		setMat4(p, "view", view)
	}
}

// UploadProjection sends the current projection matrix.
func (r *Renderer) UploadProjection() {
	for _, name := range []string{ProgramPlanet, ProgramStars, ProgramSkydome} {
		p := r.program(name)
		gl.UseProgram(p.Handle)
		setMat4(p, "projection", r.view.Projection)
	}
}

// UploadEffects sends the post-effect toggles to the quad program.
func (r *Renderer) UploadEffects() {
	p := r.program(ProgramQuad)
	gl.UseProgram(p.Handle)
	setBool(p, "greyscale", r.effects.Greyscale)
	setBool(p, "flipHorizontal", r.effects.FlipHorizontal)
	setBool(p, "flipVertical", r.effects.FlipVertical)
	setBool(p, "blur", r.effects.Blur)
}

func (r *Renderer) uploadSamplers() {
	p := r.program(ProgramPlanet)
	gl.UseProgram(p.Handle)
	setInt(p, "diffuseTex", 0)

	p = r.program(ProgramSkydome)
	gl.UseProgram(p.Handle)
	setInt(p, "skyTex", 0)

	p = r.program(ProgramStars)
	gl.UseProgram(p.Handle)
	setFloat(p, "pointSize", 2)

	p = r.program(ProgramQuad)
	gl.UseProgram(p.Handle)
	setInt(p, "screenTex", 0)
	r.uploadTexelSize()
}

func (r *Renderer) uploadTexelSize() {
	if !r.target.Ready() {
		return
	}
	p := r.program(ProgramQuad)
	gl.UseProgram(p.Handle)
	setVec2(p, "texelSize", mgl32.Vec2{1 / float32(r.target.Width), 1 / float32(r.target.Height)})
}

func (r *Renderer) uploadUniforms() {
	r.uploadSamplers()
	r.UploadView()
	r.UploadProjection()
	r.UploadEffects()
}

// ReloadShaders rebuilds every program from disk. On failure the previous
// programs stay active; on success all uniforms are re-uploaded.
func (r *Renderer) ReloadShaders() error {
	if err := r.shaders.Reload(); err != nil {
		return err
	}
	r.uploadUniforms()
	return nil
}

// ResizeFramebuffer reallocates the off-screen target for a new window size.
func (r *Renderer) ResizeFramebuffer(width, height int) error {
	if err := r.target.Resize(width, height); err != nil {
		return err
	}
	r.uploadTexelSize()
	return nil
}

// ── Frame ────────────────────────────────────────────────────────────────────

// Render draws one frame at animation time t (seconds).
func (r *Renderer) Render(t float32) {
	if !r.target.Ready() {
		return
	}

	// Pass 1: scene into the off-screen target.
	r.target.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.skydome.Draw(r.program(ProgramSkydome), r.view.Position())

	gl.UseProgram(r.program(ProgramStars).Handle)
	r.stars.Draw()

	r.drawPlanets(t)

	// Pass 2: post effects onto the default framebuffer.
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.target.Width), int32(r.target.Height))
	gl.Disable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program(ProgramQuad).Handle)
	bindTexture(0, r.target.ColorTex)
	r.quad.Draw()

	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) drawPlanets(t float32) {
	p := r.program(ProgramPlanet)
	gl.UseProgram(p.Handle)

	frustum := scene.FrustumFromVP(r.view.Projection.Mul4(r.view.ViewMatrix()))
	for _, pl := range r.scene.Placements(t, r.view.Transform) {
		if !pl.Visible(&frustum, r.planetRadius) {
			continue
		}
		setMat4(p, "model", pl.Model)
		setMat4(p, "normalMatrix", pl.Normal)
		setVec3(p, "tint", pl.Color.Vec3())
		setBool(p, "emissive", pl.Emissive)
		bindTexture(0, r.textures[pl.TextureIndex].GLID)
		r.planet.Draw()
	}
}

// Destroy frees every GPU object owned by the renderer.
func (r *Renderer) Destroy() {
	for _, m := range []*GPUMesh{r.planet, r.stars, r.quad} {
		if m != nil {
			m.Destroy()
		}
	}
	if r.skydome != nil {
		r.skydome.Destroy()
	}
	for _, tex := range r.textures {
		DeleteTexture(tex)
	}
	r.target.Release()
	r.shaders.Destroy()
}

// ── Uniform helpers (program must be in use) ─────────────────────────────────

func setMat4(p *shader.Program, name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func setVec3(p *shader.Program, name string, v mgl32.Vec3) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func setVec2(p *shader.Program, name string, v mgl32.Vec2) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform2f(loc, v[0], v[1])
	}
}

func setFloat(p *shader.Program, name string, f float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

func setInt(p *shader.Program, name string, i int32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

func setBool(p *shader.Program, name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	setInt(p, name, i)
}
