package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the frame loops drive.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}
