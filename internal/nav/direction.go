package nav

// Direction is the direction of a horizontal token jump.
type Direction int

const (
	Right Direction = iota
	Left
)

// Step returns the column delta of one probe step.
func (d Direction) Step() int {
	if d == Left {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
