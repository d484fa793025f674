package renderer

import (
	"GLQuad/internal/renderer/rendertest"
	"fmt"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestNewVertexBuffer(t *testing.T) {
	stub := rendertest.NewStub()
	vb := NewVertexBuffer(stub, []float32{-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, 0.5})

	if vb.ID() == 0 {
		t.Fatal("Expected a buffer name")
	}
	want := []string{
		fmt.Sprintf("GenBuffer %d", vb.ID()),
		fmt.Sprintf("BindBuffer 0x%X %d", gl.ARRAY_BUFFER, vb.ID()),
		fmt.Sprintf("BufferData 0x%X 32", gl.ARRAY_BUFFER),
	}
	assertCalls(t, stub.Calls, want)
}

func TestNewIndexBuffer(t *testing.T) {
	stub := rendertest.NewStub()
	ib := NewIndexBuffer(stub, []uint32{0, 1, 2, 2, 3, 0})

	if ib.Count() != 6 {
		t.Errorf("Expected count 6, got %d", ib.Count())
	}
	want := []string{
		fmt.Sprintf("GenBuffer %d", ib.ID()),
		fmt.Sprintf("BindBuffer 0x%X %d", gl.ELEMENT_ARRAY_BUFFER, ib.ID()),
		fmt.Sprintf("BufferData 0x%X 24", gl.ELEMENT_ARRAY_BUFFER),
	}
	assertCalls(t, stub.Calls, want)
}

func TestBufferBindUnbindDelete(t *testing.T) {
	stub := rendertest.NewStub()
	vb := NewVertexBuffer(stub, nil)
	ib := NewIndexBuffer(stub, nil)
	vbID, ibID := vb.ID(), ib.ID()
	stub.Calls = nil

	vb.Bind()
	vb.Unbind()
	ib.Bind()
	ib.Unbind()
	vb.Delete()
	vb.Delete()
	ib.Delete()

	want := []string{
		fmt.Sprintf("BindBuffer 0x%X %d", gl.ARRAY_BUFFER, vbID),
		fmt.Sprintf("BindBuffer 0x%X 0", gl.ARRAY_BUFFER),
		fmt.Sprintf("BindBuffer 0x%X %d", gl.ELEMENT_ARRAY_BUFFER, ibID),
		fmt.Sprintf("BindBuffer 0x%X 0", gl.ELEMENT_ARRAY_BUFFER),
		fmt.Sprintf("DeleteBuffer %d", vbID),
		fmt.Sprintf("DeleteBuffer %d", ibID),
	}
	assertCalls(t, stub.Calls, want)
}

func TestVertexBufferLayout(t *testing.T) {
	var layout VertexBufferLayout
	layout.PushFloat(3).PushUint8(4).PushUint32(1)

	if layout.Stride() != 3*4+4*1+1*4 {
		t.Errorf("Expected stride 20, got %d", layout.Stride())
	}
	elements := layout.Elements()
	if len(elements) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(elements))
	}
	if !elements[1].Normalized {
		t.Error("Byte attributes should be normalized")
	}
	if elements[0].Normalized || elements[2].Normalized {
		t.Error("Float and uint attributes should not be normalized")
	}
}

func TestSizeOfType(t *testing.T) {
	tests := []struct {
		xtype uint32
		size  int32
	}{
		{gl.FLOAT, 4},
		{gl.UNSIGNED_INT, 4},
		{gl.UNSIGNED_BYTE, 1},
		{gl.DOUBLE, 0},
	}
	for _, tt := range tests {
		if got := SizeOfType(tt.xtype); got != tt.size {
			t.Errorf("SizeOfType(0x%X): expected %d, got %d", tt.xtype, tt.size, got)
		}
	}
}

func TestVertexArrayAddBuffer(t *testing.T) {
	stub := rendertest.NewStub()
	va := NewVertexArray(stub)
	vb := NewVertexBuffer(stub, make([]float32, 20))
	stub.Calls = nil

	var layout VertexBufferLayout
	layout.PushFloat(2).PushFloat(3)
	va.AddBuffer(vb, &layout)

	want := []string{
		fmt.Sprintf("BindVertexArray %d", va.ID()),
		fmt.Sprintf("BindBuffer 0x%X %d", gl.ARRAY_BUFFER, vb.ID()),
		"EnableVertexAttribArray 0",
		fmt.Sprintf("VertexAttribPointer 0 2 0x%X false 20 0", gl.FLOAT),
		"EnableVertexAttribArray 1",
		fmt.Sprintf("VertexAttribPointer 1 3 0x%X false 20 8", gl.FLOAT),
	}
	assertCalls(t, stub.Calls, want)
}

func TestVertexArrayDelete(t *testing.T) {
	stub := rendertest.NewStub()
	va := NewVertexArray(stub)
	id := va.ID()

	va.Unbind()
	va.Delete()
	va.Delete()

	if stub.Count("DeleteVertexArray") != 1 {
		t.Error("Delete should release the vertex array exactly once")
	}
	if stub.Count(fmt.Sprintf("DeleteVertexArray %d", id)) != 1 {
		t.Error("Delete should release the generated name")
	}
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d calls, got %d:\n%v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
