package entity

// Mark is the content of a board cell: empty or one of the two player symbols.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == MarkX || that == MarkO
}
