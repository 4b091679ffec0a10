package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// FramebufferTarget is the off-screen render target of the scene pass:
// an RGBA8 colour texture sampled by the screen quad and a 24-bit depth
// renderbuffer. It is allocated once per distinct size.
type FramebufferTarget struct {
	FBO      uint32
	ColorTex uint32
	DepthRBO uint32
	Width    int
	Height   int
}

// Ready reports whether the target has been allocated.
func (f *FramebufferTarget) Ready() bool {
	return f.FBO != 0
}

// Resize allocates the target at the given size. Asking for the current
// size is a no-op; any other size releases the old objects first.
func (f *FramebufferTarget) Resize(width, height int) error {
	if f.Ready() && f.Width == width && f.Height == height {
		return nil
	}
	f.Release()
	return f.acquire(width, height)
}

func (f *FramebufferTarget) acquire(width, height int) error {
	f.Width = width
	f.Height = height

	gl.GenTextures(1, &f.ColorTex)
	gl.BindTexture(gl.TEXTURE_2D, f.ColorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &f.DepthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.DepthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &f.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_2D, f.ColorTex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
		gl.RENDERBUFFER, f.DepthRBO)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		f.Release()
		return &FramebufferError{Status: status, Width: width, Height: height}
	}
	if err := CheckError("allocate framebuffer"); err != nil {
		f.Release()
		return err
	}
	return nil
}

// Release deletes the GL objects. The target can be resized again after.
func (f *FramebufferTarget) Release() {
	if f.FBO != 0 {
		gl.DeleteFramebuffers(1, &f.FBO)
		f.FBO = 0
	}
	if f.ColorTex != 0 {
		gl.DeleteTextures(1, &f.ColorTex)
		f.ColorTex = 0
	}
	if f.DepthRBO != 0 {
		gl.DeleteRenderbuffers(1, &f.DepthRBO)
		f.DepthRBO = 0
	}
	f.Width = 0
	f.Height = 0
}

// Bind makes the target the draw framebuffer and sets the viewport.
func (f *FramebufferTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.FBO)
	gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
}
