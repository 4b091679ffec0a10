package main

import (
	"fmt"

	"go.uber.org/zap"

	"solar-system/app"
	"solar-system/core"
	"solar-system/internal/logger"
	"solar-system/internal/opengl"
	"solar-system/scene"
)

type launcher struct {
	window     *core.Window
	renderer   *opengl.Renderer
	controller *app.Controller
	fps        *app.FPSCounter

	resizeErr error
}

func newLauncher(w *core.Window, r *opengl.Renderer, view *scene.ViewState, fx *scene.PostEffects, title string) *launcher {
	l := &launcher{
		window:     w,
		renderer:   r,
		controller: app.NewController(view, fx, r),
		fps:        app.NewFPSCounter(title, w.Time()),
	}

	w.OnKey(func(key int) {
		action, ok := keyBindings[key]
		if !ok {
			return
		}
		logger.Log.Debug("key", zap.Stringer("action", action))
		if l.controller.Apply(action) {
			w.SetShouldClose(true)
		}
	})
	w.OnResize(func(width, height int) {
		if err := l.controller.Resize(width, height); err != nil {
			l.resizeErr = err
			w.SetShouldClose(true)
		}
	})
	return l
}

// Run drives the frame loop until the window closes.
func (l *launcher) Run() error {
	width, height := l.window.GetFramebufferSize()
	if err := l.controller.Resize(width, height); err != nil {
		return fmt.Errorf("initial framebuffer: %w", err)
	}

	start := l.window.Time()
	for !l.window.ShouldClose() {
		l.window.PollEvents()
		if l.resizeErr != nil {
			return fmt.Errorf("resize framebuffer: %w", l.resizeErr)
		}

		now := l.window.Time()
		l.renderer.Render(float32(now - start))
		l.window.SwapBuffers()

		if title, ok := l.fps.Tick(now); ok {
			l.window.SetTitle(title)
		}
	}
	logger.Log.Info("shutting down")
	return nil
}
