package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

// VertexBufferElement describes one vertex attribute.
type VertexBufferElement struct {
	Type       uint32
	Count      int32
	Normalized bool
}

// Size returns the element's size in bytes.
func (e VertexBufferElement) Size() int32 {
	return e.Count * SizeOfType(e.Type)
}

// SizeOfType returns the byte size of a GL component type, or 0 when the
// type is not supported by VertexBufferLayout.
func SizeOfType(xtype uint32) int32 {
	switch xtype {
	case gl.FLOAT, gl.UNSIGNED_INT:
		return 4
	case gl.UNSIGNED_BYTE:
		return 1
	}
	return 0
}

// VertexBufferLayout is an ordered list of interleaved attributes.
type VertexBufferLayout struct {
	elements []VertexBufferElement
	stride   int32
}

func (l *VertexBufferLayout) push(xtype uint32, count int32, normalized bool) {
	l.elements = append(l.elements, VertexBufferElement{Type: xtype, Count: count, Normalized: normalized})
	l.stride += count * SizeOfType(xtype)
}

// PushFloat appends an attribute of count float32 components.
func (l *VertexBufferLayout) PushFloat(count int32) *VertexBufferLayout {
	l.push(gl.FLOAT, count, false)
	return l
}

// PushUint32 appends an attribute of count uint32 components.
func (l *VertexBufferLayout) PushUint32(count int32) *VertexBufferLayout {
	l.push(gl.UNSIGNED_INT, count, false)
	return l
}

// PushUint8 appends an attribute of count normalized byte components.
func (l *VertexBufferLayout) PushUint8(count int32) *VertexBufferLayout {
	l.push(gl.UNSIGNED_BYTE, count, true)
	return l
}

func (l *VertexBufferLayout) Elements() []VertexBufferElement { return l.elements }

// Stride is the byte distance between consecutive vertices.
func (l *VertexBufferLayout) Stride() int32 { return l.stride }
