package engine

import "github.com/go-gl/mathgl/mgl32"

// ColorPulse bounces the red channel of the quad color between 0 and 1.
type ColorPulse struct {
	red       float32
	increment float32
	step      float32
}

func NewColorPulse(step float32) *ColorPulse {
	return &ColorPulse{increment: step, step: step}
}

func (p *ColorPulse) Red() float32 { return p.red }

// Color returns the current uniform value.
func (p *ColorPulse) Color() mgl32.Vec4 {
	return mgl32.Vec4{p.red, 0.3, 0.8, 1.0}
}

// Next advances one frame, reversing direction once red leaves [0, 1].
func (p *ColorPulse) Next() {
	if p.red > 1.0 {
		p.increment = -p.step
	} else if p.red < 0.0 {
		p.increment = p.step
	}
	p.red += p.increment
}
