package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer issues frame-level commands: clearing, viewport and indexed draws.
type Renderer struct {
	api        GL
	clearColor mgl32.Vec4
}

func NewRenderer(api GL) *Renderer {
	return &Renderer{api: api, clearColor: mgl32.Vec4{0, 0, 0, 1}}
}

// API returns the GL table the renderer draws with.
func (rend *Renderer) API() GL { return rend.api }

func (rend *Renderer) SetClearColor(color mgl32.Vec4) {
	rend.clearColor = color
	GLCall(rend.api, "glClearColor", func() { rend.api.ClearColor(color[0], color[1], color[2], color[3]) })
}

func (rend *Renderer) ClearColor() mgl32.Vec4 { return rend.clearColor }

func (rend *Renderer) Clear() {
	GLCall(rend.api, "glClear", func() { rend.api.Clear(gl.COLOR_BUFFER_BIT) })
}

// UpdateViewport updates the OpenGL viewport to match the framebuffer size
func (rend *Renderer) UpdateViewport(width, height int32) {
	GLCall(rend.api, "glViewport", func() { rend.api.Viewport(0, 0, width, height) })
}

// Draw binds shader, va and ib and draws ib's indices as triangles.
func (rend *Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *Shader) {
	shader.Bind()
	va.Bind()
	ib.Bind()
	GLCall(rend.api, "glDrawElements", func() {
		rend.api.DrawElements(gl.TRIANGLES, ib.Count(), gl.UNSIGNED_INT, 0)
	})
}

// Version returns the GL_VERSION string of the current context.
func (rend *Renderer) Version() string {
	var version string
	GLCall(rend.api, "glGetString", func() { version = rend.api.GetString(gl.VERSION) })
	return version
}
