package renderer

import "testing"

func TestUnwindRunsInReverse(t *testing.T) {
	var order []int
	var u Unwind
	for i := 1; i <= 3; i++ {
		i := i
		u.Add(func() { order = append(order, i) })
	}

	u.Unwind()

	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("Expected [3 2 1], got %v", order)
	}
	if len(u) != 0 {
		t.Error("Unwind should leave the list empty")
	}
}

func TestUnwindDiscard(t *testing.T) {
	ran := false
	var u Unwind
	u.Add(func() { ran = true })

	u.Discard()
	u.Unwind()

	if ran {
		t.Error("Discarded cleanups should not run")
	}
}
