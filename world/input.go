package world

// Input is the host's input snapshot for one frame.
type Input struct {
	Up, Down, Left, Right bool
	// Fire is true only on the frame the fire button went down.
	Fire bool
	// Pointer is the cursor position in window pixels. It is only read when
	// PointerMoved is set.
	Pointer      Vector
	PointerMoved bool
	// Escape is true only on the frame the cancel key went down.
	Escape bool
}
