// Package app holds the input and frame bookkeeping of the demo that does
// not need a GL context.
package app

import (
	"go.uber.org/zap"

	"solar-system/internal/logger"
	"solar-system/scene"
)

// Action is one edge-triggered input command.
type Action int

const (
	ActionNone Action = iota
	ActionDollyForward
	ActionDollyBack
	ActionToggleGreyscale
	ActionToggleFlipHorizontal
	ActionToggleFlipVertical
	ActionToggleBlur
	ActionReloadShaders
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionDollyForward:
		return "dolly-forward"
	case ActionDollyBack:
		return "dolly-back"
	case ActionToggleGreyscale:
		return "toggle-greyscale"
	case ActionToggleFlipHorizontal:
		return "toggle-flip-horizontal"
	case ActionToggleFlipVertical:
		return "toggle-flip-vertical"
	case ActionToggleBlur:
		return "toggle-blur"
	case ActionReloadShaders:
		return "reload-shaders"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Target receives uniform uploads and GPU-side requests. The GL renderer
// implements it.
type Target interface {
	UploadView()
	UploadProjection()
	UploadEffects()
	ResizeFramebuffer(width, height int) error
	ReloadShaders() error
}

// Controller applies actions and resizes to the view and effect state and
// pushes the changes to the Target straight away.
type Controller struct {
	View    *scene.ViewState
	Effects *scene.PostEffects
	target  Target
}

func NewController(view *scene.ViewState, effects *scene.PostEffects, target Target) *Controller {
	return &Controller{View: view, Effects: effects, target: target}
}

// Apply runs one action and reports whether the application should quit.
// A failed shader reload is logged and otherwise ignored.
func (c *Controller) Apply(a Action) (quit bool) {
	switch a {
	case ActionDollyForward:
		c.View.DollyForward()
		c.target.UploadView()
	case ActionDollyBack:
		c.View.DollyBack()
		c.target.UploadView()
	case ActionToggleGreyscale:
		c.toggle(scene.EffectGreyscale)
	case ActionToggleFlipHorizontal:
		c.toggle(scene.EffectFlipHorizontal)
	case ActionToggleFlipVertical:
		c.toggle(scene.EffectFlipVertical)
	case ActionToggleBlur:
		c.toggle(scene.EffectBlur)
	case ActionReloadShaders:
		if err := c.target.ReloadShaders(); err != nil {
			logger.Log.Warn("shader reload failed, keeping previous programs", zap.Error(err))
		} else {
			logger.Log.Info("shaders reloaded")
		}
	case ActionQuit:
		return true
	}
	return false
}

func (c *Controller) toggle(e scene.Effect) {
	on := c.Effects.Toggle(e)
	c.target.UploadEffects()
	logger.Log.Debug("post effect", zap.Stringer("effect", e), zap.Bool("enabled", on))
}

// Resize handles a framebuffer size notification. Zero-area sizes are
// ignored; otherwise the projection is recomputed and the off-screen target
// follows the new size.
func (c *Controller) Resize(width, height int) error {
	if !c.View.Resize(width, height) {
		return nil
	}
	if err := c.target.ResizeFramebuffer(width, height); err != nil {
		return err
	}
	c.target.UploadProjection()
	return nil
}
