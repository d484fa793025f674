package renderer

import (
	"GLQuad/internal/logger"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ShaderError reports a stage that failed to compile, or a program that
// failed to link, together with the driver's info log.
type ShaderError struct {
	Stage string
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return "failed to link shader program: " + strings.TrimSpace(e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// =============================================================
//
//	Shaders
//
// =============================================================

// Shader owns a linked vertex + fragment program and its uniform locations.
type Shader struct {
	api      GL
	program  uint32
	filePath string
	uniforms *UniformCache
}

// NewShaderFromFile splits the combined shader file at path and builds a
// program from it.
func NewShaderFromFile(api GL, path string) (*Shader, error) {
	src, err := ParseShaderFile(path)
	if err != nil {
		return nil, err
	}
	shader, err := NewShader(api, src)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", path, err)
	}
	shader.filePath = path
	return shader, nil
}

// NewShader compiles and links src. The stage objects are always deleted
// once linking is done; on failure the program is deleted too and a
// *ShaderError is returned.
func NewShader(api GL, src ShaderProgramSource) (*Shader, error) {
	var cleanup Unwind
	defer cleanup.Unwind()

	var program uint32
	GLCall(api, "glCreateProgram", func() { program = api.CreateProgram() })
	cleanup.Add(func() { GLCall(api, "glDeleteProgram", func() { api.DeleteProgram(program) }) })

	vs, err := compileShader(api, gl.VERTEX_SHADER, src.VertexSource)
	if err != nil {
		return nil, err
	}
	defer GLCall(api, "glDeleteShader", func() { api.DeleteShader(vs) })

	fs, err := compileShader(api, gl.FRAGMENT_SHADER, src.FragmentSource)
	if err != nil {
		return nil, err
	}
	defer GLCall(api, "glDeleteShader", func() { api.DeleteShader(fs) })

	GLCall(api, "glAttachShader", func() { api.AttachShader(program, vs) })
	GLCall(api, "glAttachShader", func() { api.AttachShader(program, fs) })
	GLCall(api, "glLinkProgram", func() { api.LinkProgram(program) })

	var status int32
	GLCall(api, "glGetProgramiv", func() { status = api.GetProgrami(program, gl.LINK_STATUS) })
	if status == gl.FALSE {
		var log string
		GLCall(api, "glGetProgramInfoLog", func() { log = api.GetProgramInfoLog(program) })
		logger.Log.Error("Failed to link program", zap.Uint32("program", program), zap.String("log", log))
		return nil, &ShaderError{Stage: "link", Log: log}
	}
	GLCall(api, "glValidateProgram", func() { api.ValidateProgram(program) })

	// the stages are flagged for deletion and released with the program
	cleanup.Discard()

	logger.Log.Debug("Shader program linked", zap.Uint32("program", program))
	return &Shader{
		api:      api,
		program:  program,
		uniforms: NewUniformCache(api, program),
	}, nil
}

func compileShader(api GL, stage uint32, source string) (uint32, error) {
	name := "vertex"
	if stage == gl.FRAGMENT_SHADER {
		name = "fragment"
	}
	if strings.TrimSpace(source) == "" {
		return 0, &ShaderError{Stage: name, Log: "empty source"}
	}

	var id uint32
	GLCall(api, "glCreateShader", func() { id = api.CreateShader(stage) })
	GLCall(api, "glShaderSource", func() { api.ShaderSource(id, source) })
	GLCall(api, "glCompileShader", func() { api.CompileShader(id) })

	var status int32
	GLCall(api, "glGetShaderiv", func() { status = api.GetShaderi(id, gl.COMPILE_STATUS) })
	if status == gl.FALSE {
		var log string
		GLCall(api, "glGetShaderInfoLog", func() { log = api.GetShaderInfoLog(id) })
		GLCall(api, "glDeleteShader", func() { api.DeleteShader(id) })
		logger.Log.Error("Failed to compile", zap.String("stage", name), zap.String("log", log))
		return 0, &ShaderError{Stage: name, Log: log}
	}
	return id, nil
}

// Program returns the GL program name, 0 once deleted.
func (shader *Shader) Program() uint32 { return shader.program }

// FilePath is the file the shader was loaded from, if any.
func (shader *Shader) FilePath() string { return shader.filePath }

func (shader *Shader) Bind() {
	GLCall(shader.api, "glUseProgram", func() { shader.api.UseProgram(shader.program) })
}

func (shader *Shader) Unbind() {
	GLCall(shader.api, "glUseProgram", func() { shader.api.UseProgram(0) })
}

// Delete releases the program and forgets cached uniform locations.
func (shader *Shader) Delete() {
	if shader.program == 0 {
		return
	}
	GLCall(shader.api, "glDeleteProgram", func() { shader.api.DeleteProgram(shader.program) })
	shader.program = 0
	shader.uniforms.Clear()
}

func (shader *Shader) SetUniform1i(name string, value int32) {
	loc := shader.uniforms.GetLocation(name)
	if loc != -1 {
		GLCall(shader.api, "glUniform1i", func() { shader.api.Uniform1i(loc, value) })
	}
}

func (shader *Shader) SetUniform1f(name string, value float32) {
	loc := shader.uniforms.GetLocation(name)
	if loc != -1 {
		GLCall(shader.api, "glUniform1f", func() { shader.api.Uniform1f(loc, value) })
	}
}

func (shader *Shader) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	loc := shader.uniforms.GetLocation(name)
	if loc != -1 {
		GLCall(shader.api, "glUniform4f", func() { shader.api.Uniform4f(loc, v0, v1, v2, v3) })
	}
}

func (shader *Shader) SetUniformVec4(name string, value mgl32.Vec4) {
	shader.SetUniform4f(name, value.X(), value.Y(), value.Z(), value.W())
}

func (shader *Shader) SetUniformMat4(name string, value mgl32.Mat4) {
	loc := shader.uniforms.GetLocation(name)
	if loc != -1 {
		GLCall(shader.api, "glUniformMatrix4fv", func() { shader.api.UniformMatrix4(loc, value) })
	}
}
