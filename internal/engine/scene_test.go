package engine

import (
	"GLQuad/internal/renderer"
	"GLQuad/internal/renderer/rendertest"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func newQuadStub() *rendertest.Stub {
	stub := rendertest.NewStub()
	stub.UniformLocations["u_Color"] = 0
	stub.UniformLocations["u_MVP"] = 1
	return stub
}

func TestNewQuadSceneEmbeddedShader(t *testing.T) {
	stub := newQuadStub()

	scene, err := NewQuadScene(stub, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scene.IndexBuffer.Count() != 6 {
		t.Errorf("Expected 6 indices, got %d", scene.IndexBuffer.Count())
	}
	if stub.Count(fmt.Sprintf("BufferData 0x%X 32", gl.ARRAY_BUFFER)) != 1 {
		t.Error("Expected 4 vertices of 2 floats to be uploaded")
	}
	if stub.Count(fmt.Sprintf("VertexAttribPointer 0 2 0x%X false 8 0", gl.FLOAT)) != 1 {
		t.Errorf("Expected one 2-float position attribute, got %v", stub.Calls)
	}
	if stub.Count("Uniform4f 0 0.2 0.3 0.8 1") != 1 {
		t.Error("Expected the initial u_Color upload")
	}
	if stub.Count("UseProgram 0") != 1 || stub.Count("BindVertexArray 0") != 1 {
		t.Error("Scene objects should be left unbound")
	}
}

func TestNewQuadSceneShaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.shader")
	content := "#shader vertex\nvoid main() {}\n#shader fragment\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	scene, err := NewQuadScene(newQuadStub(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scene.Shader.FilePath() != path {
		t.Errorf("Expected shader from %s, got %s", path, scene.Shader.FilePath())
	}
}

func TestNewQuadSceneShaderFailureReleasesBuffers(t *testing.T) {
	stub := newQuadStub()
	stub.CompileFails[gl.FRAGMENT_SHADER] = true

	scene, err := NewQuadScene(stub, "")

	if scene != nil {
		t.Error("Expected no scene on failure")
	}
	var shaderErr *renderer.ShaderError
	if !errors.As(err, &shaderErr) {
		t.Fatalf("Expected *renderer.ShaderError, got %v", err)
	}
	if stub.Count("DeleteBuffer") != 2 || stub.Count("DeleteVertexArray") != 1 {
		t.Errorf("Buffers and vertex array should be released, got %v", stub.Calls)
	}
}

func TestNewQuadSceneMissingShaderFile(t *testing.T) {
	_, err := NewQuadScene(newQuadStub(), filepath.Join(t.TempDir(), "missing.shader"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestQuadSceneDeleteOrder(t *testing.T) {
	stub := newQuadStub()
	scene, err := NewQuadScene(stub, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		fmt.Sprintf("DeleteProgram %d", scene.Shader.Program()),
		fmt.Sprintf("DeleteBuffer %d", scene.IndexBuffer.ID()),
		fmt.Sprintf("DeleteBuffer %d", scene.VertexBuffer.ID()),
		fmt.Sprintf("DeleteVertexArray %d", scene.VertexArray.ID()),
	}
	stub.Calls = nil

	scene.Delete()

	if len(stub.Calls) != len(want) {
		t.Fatalf("Expected %d deletes, got %v", len(want), stub.Calls)
	}
	for i := range want {
		if stub.Calls[i] != want[i] {
			t.Errorf("delete %d: expected %q, got %q", i, want[i], stub.Calls[i])
		}
	}
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		corner        mgl32.Vec4
	}{
		{"landscape", 640, 480, mgl32.Vec4{640.0 / 480.0, 1, 0, 1}},
		{"portrait", 480, 640, mgl32.Vec4{1, 640.0 / 480.0, 0, 1}},
		{"square", 500, 500, mgl32.Vec4{1, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Projection(tt.width, tt.height).Mul4x1(tt.corner)
			if !got.ApproxEqual(mgl32.Vec4{1, 1, 0, 1}) {
				t.Errorf("Expected corner to map to (1, 1), got %v", got)
			}
		})
	}

	if Projection(0, 480) != mgl32.Ident4() {
		t.Error("Degenerate framebuffer should yield identity")
	}
}
