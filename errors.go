package lousa

// EmptyInputError reports a geometry operation that requires at least one
// point but received none. Pipeline stages never return it: they check
// lengths first and fall back to trivial results on degenerate input.
type EmptyInputError struct {
	Op string // the operation that failed, e.g. "bounding box"
}

func (e *EmptyInputError) Error() string {
	return "lousa: " + e.Op + ": empty point sequence"
}
