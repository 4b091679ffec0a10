package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeBackend struct {
	next     uint32
	live     map[uint32]bool
	failOn   string // fragment source substring that fails to compile
	compiled int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{next: 1, live: map[uint32]bool{}}
}

func (f *fakeBackend) CompileProgram(name, vs, fs string) (uint32, error) {
	f.compiled++
	if f.failOn != "" && strings.Contains(fs, f.failOn) {
		return 0, errors.New("0:1(1): error: syntax error")
	}
	h := f.next
	f.next++
	f.live[h] = true
	return h, nil
}

func (f *fakeBackend) DeleteProgram(h uint32) {
	delete(f.live, h)
}

func (f *fakeBackend) UniformLocation(h uint32, name string) int32 {
	if name == "unused" {
		return -1
	}
	return int32(h)*100 + int32(len(name))
}

func writeShaders(t *testing.T, dir, name, frag string) (string, string) {
	t.Helper()
	vp := filepath.Join(dir, name+".vert")
	fp := filepath.Join(dir, name+".frag")
	if err := os.WriteFile(vp, []byte("void main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fp, []byte(frag), 0o644); err != nil {
		t.Fatal(err)
	}
	return vp, fp
}

func newTestRegistry(t *testing.T) (*Registry, *fakeBackend, string) {
	t.Helper()
	dir := t.TempDir()
	be := newFakeBackend()
	r := NewRegistry(be)

	vp, fp := writeShaders(t, dir, "simple", "ok")
	r.Add("simple", vp, fp, "model", "view", "unused")
	vp, fp = writeShaders(t, dir, "quad", "ok")
	r.Add("quad", vp, fp, "greyscale")

	if err := r.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	return r, be, dir
}

func TestBuild(t *testing.T) {
	r, be, _ := newTestRegistry(t)

	if got := len(be.live); got != 2 {
		t.Fatalf("expected 2 live programs, got %d", got)
	}
	p, ok := r.Get("simple")
	if !ok || p.Handle == 0 {
		t.Fatalf("simple not built: %+v", p)
	}
	if loc := p.Location("model"); loc != int32(p.Handle)*100+5 {
		t.Errorf("unexpected model location %d", loc)
	}
	if loc := p.Location("nonexistent"); loc != -1 {
		t.Errorf("expected -1 for unknown uniform, got %d", loc)
	}
	if got := r.MissingUniforms(); len(got) != 1 || got[0] != "simple.unused" {
		t.Errorf("expected [simple.unused], got %v", got)
	}
	if names := r.Names(); len(names) != 2 || names[0] != "simple" || names[1] != "quad" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestBuildFailsOnMissingFile(t *testing.T) {
	r := NewRegistry(newFakeBackend())
	r.Add("simple", "/does/not/exist.vert", "/does/not/exist.frag")
	if err := r.Build(); err == nil {
		t.Fatal("expected error for missing shader files")
	}
}

func TestReloadReplacesHandles(t *testing.T) {
	r, be, _ := newTestRegistry(t)
	p, _ := r.Get("simple")
	old := p.Handle

	if err := r.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if p.Handle == old {
		t.Error("expected a new handle after reload")
	}
	if be.live[old] {
		t.Error("old program was not deleted")
	}
	if got := len(be.live); got != 2 {
		t.Errorf("expected 2 live programs, got %d", got)
	}
	if loc := p.Location("view"); loc != int32(p.Handle)*100+4 {
		t.Errorf("locations not re-queried: view=%d handle=%d", loc, p.Handle)
	}
}

func TestReloadFailureKeepsPrevious(t *testing.T) {
	r, be, dir := newTestRegistry(t)
	simple, _ := r.Get("simple")
	quad, _ := r.Get("quad")
	oldSimple, oldQuad := simple.Handle, quad.Handle
	oldLoc := simple.Location("model")

	// Break only the quad shader; simple compiles but must not be swapped in.
	writeShaders(t, dir, "quad", "broken")
	be.failOn = "broken"

	err := r.Reload()
	if err == nil {
		t.Fatal("expected reload error")
	}
	if !strings.Contains(err.Error(), `"quad"`) {
		t.Errorf("error should name the failing program: %v", err)
	}
	if simple.Handle != oldSimple || quad.Handle != oldQuad {
		t.Errorf("handles changed on failed reload: simple %d->%d quad %d->%d",
			oldSimple, simple.Handle, oldQuad, quad.Handle)
	}
	if simple.Location("model") != oldLoc {
		t.Error("locations changed on failed reload")
	}
	if got := len(be.live); got != 2 {
		t.Errorf("expected the 2 previous programs live, got %d", got)
	}

	// Fixing the file lets the next reload through.
	writeShaders(t, dir, "quad", "fixed")
	if err := r.Reload(); err != nil {
		t.Fatalf("Reload after fix: %v", err)
	}
	if quad.Handle == oldQuad {
		t.Error("expected quad to be replaced after fix")
	}
}

func TestDestroy(t *testing.T) {
	r, be, _ := newTestRegistry(t)
	r.Destroy()
	if len(be.live) != 0 {
		t.Errorf("expected no live programs, got %d", len(be.live))
	}
	p, _ := r.Get("quad")
	if p.Handle != 0 {
		t.Errorf("expected zero handle after destroy, got %d", p.Handle)
	}
}
