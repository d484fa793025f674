package renderer

// Unwind collects cleanup funcs and runs them in reverse order.
type Unwind []func()

func (u *Unwind) Add(cleanup func()) {
	*u = append(*u, cleanup)
}

func (u *Unwind) Unwind() {
	for i := len(*u) - 1; i >= 0; i-- {
		(*u)[i]()
	}
	*u = (*u)[:0]
}

// Discard forgets the collected funcs without running them, once ownership
// has passed to the caller.
func (u *Unwind) Discard() {
	*u = (*u)[:0]
}
