package renderer

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GL is the subset of the OpenGL API used by the renderer. OpenGL returns the
// go-gl backed implementation; tests substitute a recording stub.
type GL interface {
	GetError() uint32
	GetString(name uint32) string

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)

	GenVertexArray() uint32
	DeleteVertexArray(array uint32)
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgrami(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location, v0 int32)
	Uniform1f(location int32, v0 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}

// openGL forwards to the go-gl bindings. gl.Init must have been called on
// the thread owning the context.
type openGL struct{}

// OpenGL returns the GL implementation backed by the current context.
func OpenGL() GL {
	return openGL{}
}

func (openGL) GetError() uint32 { return gl.GetError() }

func (openGL) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (openGL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (openGL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (openGL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (openGL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (openGL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (openGL) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (openGL) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (openGL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (openGL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (openGL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (openGL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (openGL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (openGL) GetShaderi(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (openGL) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (openGL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (openGL) CreateProgram() uint32 { return gl.CreateProgram() }

func (openGL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (openGL) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (openGL) ValidateProgram(program uint32) { gl.ValidateProgram(program) }

func (openGL) GetProgrami(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (openGL) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (openGL) UseProgram(program uint32) { gl.UseProgram(program) }

func (openGL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (openGL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (openGL) Uniform1i(location, v0 int32) { gl.Uniform1i(location, v0) }

func (openGL) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (openGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (openGL) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (openGL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (openGL) Clear(mask uint32) { gl.Clear(mask) }

func (openGL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (openGL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
