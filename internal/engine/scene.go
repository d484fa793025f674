package engine

import (
	"GLQuad/internal/logger"
	"GLQuad/internal/renderer"
	"GLQuad/res"
	"bytes"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Quad corners in normalized device coordinates, two floats per vertex.
var quadPositions = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	0.5, 0.5,
	-0.5, 0.5,
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// QuadScene owns the GPU objects for the animated quad.
type QuadScene struct {
	VertexArray  *renderer.VertexArray
	VertexBuffer *renderer.VertexBuffer
	IndexBuffer  *renderer.IndexBuffer
	Shader       *renderer.Shader

	cleanup renderer.Unwind
}

// NewQuadScene uploads the quad and builds its shader. shaderPath selects a
// combined shader file; empty uses the embedded basic shader. Objects are
// left unbound.
func NewQuadScene(api renderer.GL, shaderPath string) (*QuadScene, error) {
	scene := &QuadScene{}

	scene.VertexArray = renderer.NewVertexArray(api)
	scene.cleanup.Add(scene.VertexArray.Delete)

	scene.VertexBuffer = renderer.NewVertexBuffer(api, quadPositions)
	scene.cleanup.Add(scene.VertexBuffer.Delete)

	var layout renderer.VertexBufferLayout
	layout.PushFloat(2)
	scene.VertexArray.AddBuffer(scene.VertexBuffer, &layout)

	scene.IndexBuffer = renderer.NewIndexBuffer(api, quadIndices)
	scene.cleanup.Add(scene.IndexBuffer.Delete)

	shader, err := loadShader(api, shaderPath)
	if err != nil {
		scene.cleanup.Unwind()
		return nil, err
	}
	scene.Shader = shader
	scene.cleanup.Add(scene.Shader.Delete)

	scene.Shader.Bind()
	scene.Shader.SetUniform4f("u_Color", 0.2, 0.3, 0.8, 1.0)
	scene.Shader.SetUniformMat4("u_MVP", mgl32.Ident4())

	scene.VertexArray.Unbind()
	scene.VertexBuffer.Unbind()
	scene.IndexBuffer.Unbind()
	scene.Shader.Unbind()

	return scene, nil
}

func loadShader(api renderer.GL, path string) (*renderer.Shader, error) {
	if path != "" {
		logger.Log.Info("Loading shader", zap.String("path", path))
		return renderer.NewShaderFromFile(api, path)
	}

	logger.Log.Info("Loading shader", zap.String("path", res.BasicShaderName))
	src, err := renderer.ParseShaderSource(bytes.NewReader(res.BasicShader))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.BasicShaderName, err)
	}
	return renderer.NewShader(api, src)
}

// SetProjection updates the u_MVP uniform.
func (scene *QuadScene) SetProjection(projection mgl32.Mat4) {
	scene.Shader.Bind()
	scene.Shader.SetUniformMat4("u_MVP", projection)
}

// Draw renders the quad with color bound to u_Color.
func (scene *QuadScene) Draw(rend *renderer.Renderer, color mgl32.Vec4) {
	scene.Shader.Bind()
	scene.Shader.SetUniformVec4("u_Color", color)
	rend.Draw(scene.VertexArray, scene.IndexBuffer, scene.Shader)
}

// Delete releases every GPU object in reverse creation order.
func (scene *QuadScene) Delete() {
	scene.cleanup.Unwind()
}

// Projection returns an orthographic projection that keeps the quad square
// in a width x height framebuffer.
func Projection(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	if aspect >= 1 {
		return mgl32.Ortho2D(-aspect, aspect, -1, 1)
	}
	return mgl32.Ortho2D(-1, 1, -1/aspect, 1/aspect)
}
