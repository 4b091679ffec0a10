// Package shader keeps the named GLSL programs of the renderer and rebuilds
// them from disk on demand.
package shader

import (
	"errors"
	"fmt"
	"os"
	"sort"
)

// Backend compiles and links programs. The OpenGL implementation lives in
// internal/opengl; tests use a fake.
type Backend interface {
	CompileProgram(name, vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(handle uint32)
	UniformLocation(handle uint32, name string) int32
}

// Program is one vertex+fragment pair loaded from disk.
type Program struct {
	Name         string
	VertexPath   string
	FragmentPath string
	Handle       uint32
	Uniforms     []string
	Locations    map[string]int32
}

// Location returns the cached location of a uniform, or -1.
func (p *Program) Location(uniform string) int32 {
	if loc, ok := p.Locations[uniform]; ok {
		return loc
	}
	return -1
}

// Registry owns every program. Programs are compiled together so a reload
// either replaces all of them or none.
type Registry struct {
	backend  Backend
	programs map[string]*Program
	order    []string
}

func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend:  backend,
		programs: make(map[string]*Program),
	}
}

// Add registers a program. It is compiled by the next Build or Reload.
func (r *Registry) Add(name, vertexPath, fragmentPath string, uniforms ...string) {
	if _, ok := r.programs[name]; !ok {
		r.order = append(r.order, name)
	}
	r.programs[name] = &Program{
		Name:         name,
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
		Uniforms:     uniforms,
		Locations:    map[string]int32{},
	}
}

// Get returns the program registered under name.
func (r *Registry) Get(name string) (*Program, bool) {
	p, ok := r.programs[name]
	return p, ok
}

// Names returns registered program names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Build compiles every program for the first time.
func (r *Registry) Build() error {
	if err := r.rebuild(); err != nil {
		return fmt.Errorf("build shaders: %w", err)
	}
	return nil
}

// Reload recompiles every program from disk. On any failure the previous
// handles stay in place and the error lists what went wrong.
func (r *Registry) Reload() error {
	if err := r.rebuild(); err != nil {
		return fmt.Errorf("reload shaders: %w", err)
	}
	return nil
}

func (r *Registry) rebuild() error {
	handles := make(map[string]uint32, len(r.order))
	var errs []error

	for _, name := range r.order {
		p := r.programs[name]
		h, err := r.compile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		handles[name] = h
	}

	if len(errs) > 0 {
		for _, h := range handles {
			r.backend.DeleteProgram(h)
		}
		return errors.Join(errs...)
	}

	for _, name := range r.order {
		p := r.programs[name]
		if p.Handle != 0 {
			r.backend.DeleteProgram(p.Handle)
		}
		p.Handle = handles[name]
		p.Locations = make(map[string]int32, len(p.Uniforms))
		for _, u := range p.Uniforms {
			p.Locations[u] = r.backend.UniformLocation(p.Handle, u)
		}
	}
	return nil
}

func (r *Registry) compile(p *Program) (uint32, error) {
	vs, err := os.ReadFile(p.VertexPath)
	if err != nil {
		return 0, fmt.Errorf("program %q: %w", p.Name, err)
	}
	fs, err := os.ReadFile(p.FragmentPath)
	if err != nil {
		return 0, fmt.Errorf("program %q: %w", p.Name, err)
	}
	h, err := r.backend.CompileProgram(p.Name, string(vs), string(fs))
	if err != nil {
		return 0, fmt.Errorf("program %q: %w", p.Name, err)
	}
	return h, nil
}

// Destroy deletes every compiled program.
func (r *Registry) Destroy() {
	for _, name := range r.order {
		p := r.programs[name]
		if p.Handle != 0 {
			r.backend.DeleteProgram(p.Handle)
			p.Handle = 0
		}
	}
}

// MissingUniforms lists uniforms that resolved to -1 across all programs,
// as "program.uniform". The GLSL compiler drops unused uniforms, so these
// are warnings rather than errors.
func (r *Registry) MissingUniforms() []string {
	var out []string
	for _, name := range r.order {
		p := r.programs[name]
		for _, u := range p.Uniforms {
			if p.Location(u) < 0 {
				out = append(out, name+"."+u)
			}
		}
	}
	sort.Strings(out)
	return out
}
