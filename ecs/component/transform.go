package component

// Transform is a world-space position with the origin at the screen centre
// and Y pointing up. Scale is uniform.
type Transform struct {
	X     float64
	Y     float64
	Z     float64
	Scale float64
}

var TransformComponent = NewComponent[Transform]()
