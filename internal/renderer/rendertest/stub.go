// Package rendertest provides a recording stand-in for the OpenGL function
// table so GPU wrappers can be tested without a context.
package rendertest

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Stub records every call as a formatted string and hands out sequential
// object names. Codes queued in Errors are returned by GetError in order,
// then NO_ERROR.
type Stub struct {
	Calls  []string
	Errors []uint32

	// UniformLocations answers GetUniformLocation; unknown names yield -1
	UniformLocations map[string]int32
	LocationQueries  map[string]int

	// CompileFails makes shaders of the given stage type fail to compile
	CompileFails map[uint32]bool
	LinkFails    bool

	nextID      uint32
	shaderTypes map[uint32]uint32
}

func NewStub() *Stub {
	return &Stub{
		UniformLocations: make(map[string]int32),
		LocationQueries:  make(map[string]int),
		CompileFails:     make(map[uint32]bool),
		shaderTypes:      make(map[uint32]uint32),
	}
}

func (s *Stub) record(format string, args ...interface{}) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls start with prefix.
func (s *Stub) Count(prefix string) int {
	n := 0
	for _, c := range s.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (s *Stub) id() uint32 {
	s.nextID++
	return s.nextID
}

func (s *Stub) GetError() uint32 {
	if len(s.Errors) == 0 {
		return gl.NO_ERROR
	}
	code := s.Errors[0]
	s.Errors = s.Errors[1:]
	return code
}

func (s *Stub) GetString(name uint32) string { return "4.1 stub" }

func (s *Stub) GenBuffer() uint32 {
	id := s.id()
	s.record("GenBuffer %d", id)
	return id
}

func (s *Stub) DeleteBuffer(buffer uint32) { s.record("DeleteBuffer %d", buffer) }

func (s *Stub) BindBuffer(target, buffer uint32) {
	s.record("BindBuffer 0x%X %d", target, buffer)
}

func (s *Stub) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	s.record("BufferData 0x%X %d", target, size)
}

func (s *Stub) GenVertexArray() uint32 {
	id := s.id()
	s.record("GenVertexArray %d", id)
	return id
}

func (s *Stub) DeleteVertexArray(array uint32) { s.record("DeleteVertexArray %d", array) }

func (s *Stub) BindVertexArray(array uint32) { s.record("BindVertexArray %d", array) }

func (s *Stub) EnableVertexAttribArray(index uint32) {
	s.record("EnableVertexAttribArray %d", index)
}

func (s *Stub) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	s.record("VertexAttribPointer %d %d 0x%X %t %d %d", index, size, xtype, normalized, stride, offset)
}

func (s *Stub) CreateShader(xtype uint32) uint32 {
	id := s.id()
	s.shaderTypes[id] = xtype
	s.record("CreateShader %d", id)
	return id
}

func (s *Stub) ShaderSource(shader uint32, source string) { s.record("ShaderSource %d", shader) }

func (s *Stub) CompileShader(shader uint32) { s.record("CompileShader %d", shader) }

func (s *Stub) GetShaderi(shader, pname uint32) int32 {
	if pname == gl.COMPILE_STATUS {
		if s.CompileFails[s.shaderTypes[shader]] {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (s *Stub) GetShaderInfoLog(shader uint32) string { return "0:1: syntax error" }

func (s *Stub) DeleteShader(shader uint32) { s.record("DeleteShader %d", shader) }

func (s *Stub) CreateProgram() uint32 {
	id := s.id()
	s.record("CreateProgram %d", id)
	return id
}

func (s *Stub) AttachShader(program, shader uint32) {
	s.record("AttachShader %d %d", program, shader)
}

func (s *Stub) LinkProgram(program uint32) { s.record("LinkProgram %d", program) }

func (s *Stub) ValidateProgram(program uint32) { s.record("ValidateProgram %d", program) }

func (s *Stub) GetProgrami(program, pname uint32) int32 {
	if pname == gl.LINK_STATUS && s.LinkFails {
		return gl.FALSE
	}
	return gl.TRUE
}

func (s *Stub) GetProgramInfoLog(program uint32) string { return "link error" }

func (s *Stub) UseProgram(program uint32) { s.record("UseProgram %d", program) }

func (s *Stub) DeleteProgram(program uint32) { s.record("DeleteProgram %d", program) }

func (s *Stub) GetUniformLocation(program uint32, name string) int32 {
	s.record("GetUniformLocation %d %s", program, name)
	s.LocationQueries[name]++
	if loc, ok := s.UniformLocations[name]; ok {
		return loc
	}
	return -1
}

func (s *Stub) Uniform1i(location, v0 int32) { s.record("Uniform1i %d %d", location, v0) }

func (s *Stub) Uniform1f(location int32, v0 float32) { s.record("Uniform1f %d %g", location, v0) }

func (s *Stub) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	s.record("Uniform4f %d %g %g %g %g", location, v0, v1, v2, v3)
}

func (s *Stub) UniformMatrix4(location int32, m mgl32.Mat4) {
	s.record("UniformMatrix4 %d", location)
}

func (s *Stub) ClearColor(r, g, b, a float32) { s.record("ClearColor %g %g %g %g", r, g, b, a) }

func (s *Stub) Clear(mask uint32) { s.record("Clear 0x%X", mask) }

func (s *Stub) Viewport(x, y, width, height int32) {
	s.record("Viewport %d %d %d %d", x, y, width, height)
}

func (s *Stub) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	s.record("DrawElements 0x%X %d 0x%X %d", mode, count, xtype, offset)
}
