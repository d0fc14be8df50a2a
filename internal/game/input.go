package game

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/go-gl/glfw/v3.3/glfw"

	"neoncity/internal/scene"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// HandleInput applies this frame's key and mouse edges to the scene.
//
//	Space      next theme
//	P          pause rotation
//	Up/Down    density +/- DensityStep (regenerates)
//	Click      fireworks over a random rooftop
//	R          new random seed (regenerates)
//	C          copy a reproducible summary to the clipboard
//	Esc        quit
func HandleInput(window *glfw.Window, in *Input, st *scene.State, logger *slog.Logger) {
	if in.JustPressed(window, glfw.KeyEscape) {
		window.SetShouldClose(true)
		return
	}
	if in.JustPressed(window, glfw.KeySpace) {
		st.NextTheme()
	}
	if in.JustPressed(window, glfw.KeyP) {
		st.TogglePause()
		logger.Debug("rotation toggled", "paused", st.Paused)
	}
	if in.JustPressed(window, glfw.KeyUp) {
		st.AdjustDensity(scene.DensityStep)
	}
	if in.JustPressed(window, glfw.KeyDown) {
		st.AdjustDensity(-scene.DensityStep)
	}
	if in.JustClicked(window, glfw.MouseButtonLeft) {
		st.LaunchFireworks()
	}
	if in.JustPressed(window, glfw.KeyR) {
		st.Reseed(uint64(time.Now().UnixNano()))
	}
	if in.JustPressed(window, glfw.KeyC) {
		summary := st.Summary()
		if err := clipboard.WriteAll(summary); err != nil {
			logger.Warn("clipboard unavailable", "err", err)
		} else {
			logger.Info("copied city summary", "summary", summary)
		}
	}
}
