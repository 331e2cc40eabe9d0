package brickgame

import "fmt"

// Shape is a 4x4 piece area encoded as four rows, top to bottom. Only the
// four leftmost columns of each Row are used.
type Shape [4]Row

// Empty reports whether no cell of the shape is occupied.
func (s Shape) Empty() bool {
	return s == Shape{}
}

// Span returns the first and last occupied columns across all rows.
func (s Shape) Span() (first, last int, ok bool) {
	var union Row
	for _, r := range s {
		union |= r
	}
	return union.Span()
}

// Width returns the number of columns between the first and last occupied
// column, inclusive.
func (s Shape) Width() int {
	first, last, ok := s.Span()
	if !ok {
		return 0
	}
	return last - first + 1
}

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceJ
	PieceL
	PieceS
	PieceZ
)

// PieceTypeCount is the number of distinct piece types.
const PieceTypeCount = 7

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	default:
		return fmt.Sprintf("PieceType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the seven piece types.
func (t PieceType) Valid() bool {
	return t < PieceTypeCount
}

// TileColor is the display color of a locked or falling cell.
type TileColor uint8

const (
	TileLightBlue TileColor = iota
	TileYellow
	TilePink
	TileBlue
	TileOrange
	TileGreen
	TileRed
)

// Color returns the tile color for the piece type.
func (t PieceType) Color() TileColor {
	return TileColor(t)
}

// rotations holds every rotation state per piece type, in clockwise order.
var rotations = [PieceTypeCount][]Shape{
	PieceI: {
		{0b00000000, 0b00000000, 0b11110000, 0b00000000},
		{0b00100000, 0b00100000, 0b00100000, 0b00100000},
		{0b00000000, 0b00000000, 0b11110000, 0b00000000},
		{0b01000000, 0b01000000, 0b01000000, 0b01000000},
	},
	PieceO: {
		{0b00000000, 0b01100000, 0b01100000, 0b00000000},
	},
	PieceT: {
		{0b00000000, 0b01000000, 0b11100000, 0b00000000},
		{0b00000000, 0b01000000, 0b01100000, 0b01000000},
		{0b00000000, 0b00000000, 0b11100000, 0b01000000},
		{0b00000000, 0b01000000, 0b11000000, 0b01000000},
	},
	PieceJ: {
		{0b00000000, 0b10000000, 0b11100000, 0b00000000},
		{0b00000000, 0b01100000, 0b01000000, 0b01000000},
		{0b00000000, 0b00000000, 0b11100000, 0b00100000},
		{0b00000000, 0b01000000, 0b01000000, 0b11000000},
	},
	PieceL: {
		{0b00000000, 0b00100000, 0b11100000, 0b00000000},
		{0b00000000, 0b01000000, 0b01000000, 0b01100000},
		{0b00000000, 0b00000000, 0b11100000, 0b10000000},
		{0b00000000, 0b11000000, 0b01000000, 0b01000000},
	},
	PieceS: {
		{0b00000000, 0b01100000, 0b11000000, 0b00000000},
		{0b00000000, 0b01000000, 0b01100000, 0b00100000},
		{0b00000000, 0b00000000, 0b01100000, 0b11000000},
		{0b00000000, 0b10000000, 0b11000000, 0b01000000},
	},
	PieceZ: {
		{0b00000000, 0b11000000, 0b01100000, 0b00000000},
		{0b00000000, 0b00100000, 0b01100000, 0b01000000},
		{0b00000000, 0b00000000, 0b11000000, 0b01100000},
		{0b00000000, 0b01000000, 0b11000000, 0b10000000},
	},
}

// RotationStates returns a copy of the rotation states of t.
func RotationStates(t PieceType) []Shape {
	if !t.Valid() {
		return nil
	}
	out := make([]Shape, len(rotations[t]))
	copy(out, rotations[t])
	return out
}

// StateCount returns how many distinct rotation states t has.
func StateCount(t PieceType) int {
	if !t.Valid() {
		return 0
	}
	return len(rotations[t])
}

// ShapeOf returns the shape of t at the given rotation index, taken modulo
// the state count.
func ShapeOf(t PieceType, rotation int) Shape {
	n := StateCount(t)
	if n == 0 {
		return Shape{}
	}
	rotation %= n
	if rotation < 0 {
		rotation += n
	}
	return rotations[t][rotation]
}

// Piece is a piece type in a particular rotation. Shape is cached and is the
// only representation collision checks consult.
type Piece struct {
	Type     PieceType
	Rotation int
	Shape    Shape
}

// NewPiece returns t in its initial rotation.
func NewPiece(t PieceType) Piece {
	return Piece{Type: t, Shape: ShapeOf(t, 0)}
}

// Rotated returns the piece advanced to its next rotation state.
func (p Piece) Rotated() Piece {
	next := (p.Rotation + 1) % StateCount(p.Type)
	return Piece{Type: p.Type, Rotation: next, Shape: ShapeOf(p.Type, next)}
}

// Color returns the display color of the piece.
func (p Piece) Color() TileColor {
	return p.Type.Color()
}
