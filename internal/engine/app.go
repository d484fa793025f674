package engine

import (
	"GLQuad/internal/logger"
	"GLQuad/internal/renderer"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// App runs the quad demo on the calling goroutine.
type App struct {
	Config Config

	window   *glfw.Window
	renderer *renderer.Renderer
	scene    *QuadScene
	pulse    *ColorPulse
	frames   int
}

func NewApp(config Config) *App {
	return &App{
		Config: config,
		pulse:  NewColorPulse(config.PulseStep),
	}
}

// Run opens the window, builds the scene and blocks in the frame loop until
// the window is closed. Errors are fatal initialization failures. GPU objects
// are released before the context is destroyed.
func (app *App) Run() error {
	// GLFW and the GL context belong to the main thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := openWindow(app.Config)
	if err != nil {
		return err
	}
	defer window.Destroy()
	app.window = window

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	api := renderer.OpenGL()
	app.renderer = renderer.NewRenderer(api)
	logger.Log.Info("OpenGL initialized", zap.String("version", app.renderer.Version()))

	scene, err := NewQuadScene(api, app.Config.ShaderPath)
	if err != nil {
		return err
	}
	defer scene.Delete()
	app.scene = scene

	c := app.Config.ClearColor
	app.renderer.SetClearColor(mgl32.Vec4{c[0], c[1], c[2], c[3]})

	window.SetKeyCallback(app.keyCallback)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		app.resize(width, height)
	})
	app.resize(window.GetFramebufferSize())

	app.RenderLoop()
	return nil
}

func (app *App) RenderLoop() {
	for !app.window.ShouldClose() {
		app.frame()
		app.window.SwapBuffers()
		glfw.PollEvents()
	}
	logger.Log.Info("Window closed", zap.Int("frames", app.frames))
}

// frame draws one frame into the back buffer and advances the animation.
func (app *App) frame() {
	app.renderer.Clear()
	app.scene.Draw(app.renderer, app.pulse.Color())
	app.pulse.Next()
	app.frames++
}

func (app *App) resize(width, height int) {
	logger.Log.Debug("Framebuffer resized", zap.Int("width", width), zap.Int("height", height))
	app.renderer.UpdateViewport(int32(width), int32(height))
	app.scene.SetProjection(Projection(width, height))
}

func (app *App) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}
