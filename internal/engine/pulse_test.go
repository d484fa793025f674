package engine

import "testing"

func TestColorPulseStartsAtZero(t *testing.T) {
	pulse := NewColorPulse(0.05)

	color := pulse.Color()
	if color[0] != 0 || color[1] != 0.3 || color[2] != 0.8 || color[3] != 1 {
		t.Errorf("Unexpected initial color %v", color)
	}
}

func TestColorPulseBounces(t *testing.T) {
	pulse := NewColorPulse(0.05)

	rising := true
	reversals := 0
	prev := pulse.Red()
	for i := 0; i < 200; i++ {
		pulse.Next()
		red := pulse.Red()
		if red < -0.05-1e-4 || red > 1.05+1e-4 {
			t.Fatalf("frame %d: red %f out of range", i, red)
		}
		if (red > prev) != rising {
			rising = !rising
			reversals++
		}
		prev = red
	}

	if reversals < 3 {
		t.Errorf("Expected the red channel to bounce, got %d reversals", reversals)
	}
}

func TestColorPulseFirstSteps(t *testing.T) {
	pulse := NewColorPulse(0.25)
	want := []float32{0.25, 0.5, 0.75, 1.0, 1.25, 1.0, 0.75}

	for i, w := range want {
		pulse.Next()
		if pulse.Red() != w {
			t.Errorf("step %d: expected %g, got %g", i, w, pulse.Red())
		}
	}
}
