package main

import (
	"solar-system/app"
	"solar-system/core"
)

var keyBindings = map[int]app.Action{
	core.KeyW:      app.ActionDollyForward,
	core.KeyS:      app.ActionDollyBack,
	core.Key7:      app.ActionToggleGreyscale,
	core.Key8:      app.ActionToggleFlipHorizontal,
	core.Key9:      app.ActionToggleFlipVertical,
	core.Key0:      app.ActionToggleBlur,
	core.KeyR:      app.ActionReloadShaders,
	core.KeyQ:      app.ActionQuit,
	core.KeyEscape: app.ActionQuit,
}
