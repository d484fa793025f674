package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexBuffer owns one GL_ARRAY_BUFFER object.
type VertexBuffer struct {
	api GL
	id  uint32
}

// NewVertexBuffer creates a buffer and uploads data with GL_STATIC_DRAW. The
// buffer is left bound.
func NewVertexBuffer(api GL, data []float32) *VertexBuffer {
	vb := &VertexBuffer{api: api}
	GLCall(api, "glGenBuffers", func() { vb.id = api.GenBuffer() })
	GLCall(api, "glBindBuffer", func() { api.BindBuffer(gl.ARRAY_BUFFER, vb.id) })
	GLCall(api, "glBufferData", func() {
		api.BufferData(gl.ARRAY_BUFFER, len(data)*4, slicePtr(data), gl.STATIC_DRAW)
	})
	return vb
}

// ID returns the GL buffer name.
func (vb *VertexBuffer) ID() uint32 { return vb.id }

func (vb *VertexBuffer) Bind() {
	GLCall(vb.api, "glBindBuffer", func() { vb.api.BindBuffer(gl.ARRAY_BUFFER, vb.id) })
}

func (vb *VertexBuffer) Unbind() {
	GLCall(vb.api, "glBindBuffer", func() { vb.api.BindBuffer(gl.ARRAY_BUFFER, 0) })
}

// Delete releases the buffer. Calling it twice is a no-op.
func (vb *VertexBuffer) Delete() {
	if vb.id == 0 {
		return
	}
	GLCall(vb.api, "glDeleteBuffers", func() { vb.api.DeleteBuffer(vb.id) })
	vb.id = 0
}

// IndexBuffer owns one GL_ELEMENT_ARRAY_BUFFER object of uint32 indices.
type IndexBuffer struct {
	api   GL
	id    uint32
	count int32
}

// NewIndexBuffer creates a buffer and uploads indices with GL_STATIC_DRAW.
// The buffer is left bound.
func NewIndexBuffer(api GL, indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{api: api, count: int32(len(indices))}
	GLCall(api, "glGenBuffers", func() { ib.id = api.GenBuffer() })
	GLCall(api, "glBindBuffer", func() { api.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) })
	GLCall(api, "glBufferData", func() {
		api.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, slicePtr(indices), gl.STATIC_DRAW)
	})
	return ib
}

// ID returns the GL buffer name.
func (ib *IndexBuffer) ID() uint32 { return ib.id }

// Count is the number of indices uploaded.
func (ib *IndexBuffer) Count() int32 { return ib.count }

func (ib *IndexBuffer) Bind() {
	GLCall(ib.api, "glBindBuffer", func() { ib.api.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) })
}

func (ib *IndexBuffer) Unbind() {
	GLCall(ib.api, "glBindBuffer", func() { ib.api.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) })
}

// Delete releases the buffer. Calling it twice is a no-op.
func (ib *IndexBuffer) Delete() {
	if ib.id == 0 {
		return
	}
	GLCall(ib.api, "glDeleteBuffers", func() { ib.api.DeleteBuffer(ib.id) })
	ib.id = 0
}

// slicePtr returns a pointer to the first element, or nil for an empty slice.
func slicePtr[T float32 | uint32](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}
