package entity

// Mark is the token one of the two players leaves in a cell.
type Mark byte

const (
	MarkX Mark = 'X'
	MarkO Mark = 'O'
)

// Other returns the mark of the opposing player.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}

	return MarkX
}

// Cell returns the occupant a square holds once this mark is placed on it.
func (that Mark) Cell() Cell {
	return Cell(that)
}

func (that Mark) String() string {
	return string(that)
}
