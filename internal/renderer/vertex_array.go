package renderer

// VertexArray owns one vertex array object.
type VertexArray struct {
	api GL
	id  uint32
}

// NewVertexArray generates a vertex array object. It is not bound until Bind
// or AddBuffer.
func NewVertexArray(api GL) *VertexArray {
	va := &VertexArray{api: api}
	GLCall(api, "glGenVertexArrays", func() { va.id = api.GenVertexArray() })
	return va
}

// ID returns the GL vertex array name.
func (va *VertexArray) ID() uint32 { return va.id }

// AddBuffer binds vb to this vertex array and registers one attribute per
// layout element, in order, starting at attribute index 0.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) {
	va.Bind()
	vb.Bind()

	var offset uintptr
	for i, element := range layout.Elements() {
		index := uint32(i)
		GLCall(va.api, "glEnableVertexAttribArray", func() { va.api.EnableVertexAttribArray(index) })
		GLCall(va.api, "glVertexAttribPointer", func() {
			va.api.VertexAttribPointer(index, element.Count, element.Type, element.Normalized, layout.Stride(), offset)
		})
		offset += uintptr(element.Size())
	}
}

func (va *VertexArray) Bind() {
	GLCall(va.api, "glBindVertexArray", func() { va.api.BindVertexArray(va.id) })
}

func (va *VertexArray) Unbind() {
	GLCall(va.api, "glBindVertexArray", func() { va.api.BindVertexArray(0) })
}

// Delete releases the vertex array. Calling it twice is a no-op.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	GLCall(va.api, "glDeleteVertexArrays", func() { va.api.DeleteVertexArray(va.id) })
	va.id = 0
}
