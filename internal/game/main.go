package game

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"neoncity/internal/scene"
)

// Run opens the window and drives st until the window closes. It owns the
// OS thread for the lifetime of the GL context.
func Run(st *scene.State, logger *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Debug("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if st.Settings.Audio {
		if err := InitAudio(); err != nil {
			logger.Warn("audio init failed, continuing without sound", "err", err)
		} else {
			go func() {
				time.Sleep(100 * time.Millisecond) // let audio context initialize
				StartAmbient()
			}()
			defer StopAudio()
		}
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	subscribe(st, rend, logger)
	st.Regenerate()

	input := NewInput()
	frames := 0
	statAt := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		HandleInput(window, input, st, logger)
		st.Update()

		fbW, fbH := window.GetFramebufferSize()
		bg := st.Theme().Background
		rend.BeginFrame(bg, fbW, fbH)
		rend.SetCamera(st.Camera, bg, fbW, fbH)
		rend.DrawCity(st.City)
		rend.DrawSparks(st.Particles)
		rend.RenderHUD(st, fbW, fbH)

		window.SwapBuffers()

		frames++
		if now := glfw.GetTime(); now-statAt >= 5 {
			logger.Debug("frame stats",
				"fps", float64(frames)/(now-statAt),
				"meshes", rend.MeshCount(),
				"particles", st.Particles.Live())
			frames = 0
			statAt = now
		}
	}
	return nil
}

// subscribe wires scene events to the GPU cache, sound and logs.
func subscribe(st *scene.State, rend *Renderer, logger *slog.Logger) {
	st.Events.Subscribe(scene.EventCityGenerated, func(e scene.Event) {
		rend.Release(e.Retired)
		PlaySound(SoundRegenerate)
		c := st.City
		attrs := []any{
			"seed", st.Seed,
			"requested", c.Requested,
			"placed", len(c.Buildings),
			"attempts", c.Attempts,
		}
		if c.Short() {
			logger.Warn("city placed fewer buildings than requested", attrs...)
		} else {
			logger.Info("city generated", attrs...)
		}
	})
	st.Events.Subscribe(scene.EventThemeChanged, func(e scene.Event) {
		PlaySound(SoundTheme)
		logger.Info("theme changed", "theme", st.Themes[e.Data].Name)
	})
	st.Events.Subscribe(scene.EventFireworks, func(e scene.Event) {
		PlaySound(SoundFirework)
		logger.Debug("fireworks", "x", e.X, "y", e.Y, "z", e.Z, "sparks", e.Data)
	})
}
