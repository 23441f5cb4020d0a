package piece

// Kind identifies a tetromino. The zero value is an empty board cell, so a Kind doubles as the
// value stored in every board cell and in every occupied cell of a Shape.
type Kind uint8

const (
	Empty Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of non-empty kinds.
const KindCount = 7

// Kinds lists the non-empty kinds in id order.
var Kinds = [KindCount]Kind{I, J, L, O, S, T, Z}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	}
	return "Invalid"
}

// Valid reports whether k is a tetromino kind (not Empty).
func (k Kind) Valid() bool {
	return k >= I && k <= Z
}
