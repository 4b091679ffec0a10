package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"solar-system/config"
	"solar-system/core"
	"solar-system/internal/logger"
	"solar-system/internal/opengl"
	"solar-system/scene"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default <resource-root>/config.yml, optional)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [resource-root]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Args(), *configPath); err != nil {
		logger.Log.Error("fatal", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

func run(args []string, configPath string) error {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	root := config.ResourcePath(args, exe)

	optional := configPath == ""
	if optional {
		configPath = filepath.Join(root, config.Filename)
	}
	cfg, err := config.Load(configPath, optional)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel, cfg.Debug); err != nil {
		return err
	}
	logger.Log.Info("starting", zap.String("resources", root))

	seed := cfg.Stars.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc, err := scene.New(scene.Options{
		MaxStars:   cfg.Stars.Max,
		StarExtent: cfg.Stars.Extent,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	for _, b := range sc.Bodies {
		logger.Log.Debug("body",
			zap.String("name", b.Name),
			zap.Float32("distance", b.Distance),
			zap.Float32("size", b.Size))
	}
	logger.Log.Info("star field", zap.Int("stars", sc.Stars.Count), zap.Int64("seed", seed))

	planet, err := loadPlanetMesh(root)
	if err != nil {
		return err
	}
	textures, err := loadTextures(root, sc.TextureFiles)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	view := scene.NewViewState(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far,
		cfg.Camera.Distance, cfg.Camera.DollyStep)
	effects := &scene.PostEffects{}

	renderer, err := opengl.NewRenderer(sc, view, effects, planet, textures, opengl.Options{
		ShaderDir:     filepath.Join(root, "shaders"),
		SkydomeRadius: cfg.Skydome.Radius,
	})
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	return newLauncher(window, renderer, view, effects, cfg.Window.Title).Run()
}

// loadPlanetMesh loads the shared sphere mesh, preferring OBJ over glTF.
func loadPlanetMesh(root string) (*scene.Mesh, error) {
	var errs []error
	for _, name := range []string{"sphere.obj", "sphere.gltf", "sphere.glb"} {
		path := filepath.Join(root, "models", name)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, err)
			continue
		}
		mesh, err := scene.LoadModel(path)
		if err != nil {
			return nil, fmt.Errorf("planet mesh: %w", err)
		}
		logger.Log.Info("planet mesh",
			zap.String("path", path),
			zap.Int("vertices", len(mesh.Vertices)),
			zap.Uint32("indices", mesh.IndexCount))
		return mesh, nil
	}
	return nil, fmt.Errorf("planet mesh: %w", errs[0])
}

func loadTextures(root string, files []string) ([]*scene.Texture, error) {
	out := make([]*scene.Texture, 0, len(files))
	for _, f := range files {
		tex, err := scene.LoadTexture(filepath.Join(root, f))
		if err != nil {
			return nil, err
		}
		logger.Log.Debug("texture", zap.String("file", f), zap.Int("width", tex.Width), zap.Int("height", tex.Height))
		out = append(out, tex)
	}
	return out, nil
}
