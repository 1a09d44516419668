package bricklayer

import "github.com/gamealchemy/arcade/internal/core"

// ShapeKind identifies one of the seven tetromino shapes.
// ShapeNone marks an empty board cell.
type ShapeKind uint8

const (
	ShapeNone ShapeKind = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shapes lists the playable kinds in spawn-selection order.
var Shapes = []ShapeKind{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the classic one-letter shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "."
	}
}

// Color returns the render color for a shape.
func (k ShapeKind) Color() core.Color {
	switch k {
	case ShapeI:
		return core.ColorBrightCyan
	case ShapeJ:
		return core.ColorBrightBlue
	case ShapeL:
		return core.ColorOrange
	case ShapeO:
		return core.ColorBrightYellow
	case ShapeS:
		return core.ColorBrightGreen
	case ShapeT:
		return core.ColorBrightMagenta
	case ShapeZ:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	Row, Col int
}

// baseOffsets defines each shape in its spawn orientation.
var baseOffsets = map[ShapeKind][]Offset{
	ShapeI: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
	ShapeJ: {{-1, -1}, {0, -1}, {1, -1}, {1, 0}},
	ShapeL: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
	ShapeO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	ShapeS: {{0, 0}, {0, 1}, {1, -1}, {1, 0}},
	ShapeT: {{-1, 0}, {0, -1}, {0, 0}, {0, 1}},
	ShapeZ: {{0, -1}, {0, 0}, {1, 0}, {1, 1}},
}

// rotationTable holds the distinct orientations of every shape,
// precomputed by repeated 90° rotation with duplicate elimination
// (O has 1 entry, I/S/Z have 2, the rest 4).
var rotationTable = buildRotationTable()

func rot90(blocks []Offset) []Offset {
	out := make([]Offset, len(blocks))
	for i, b := range blocks {
		out[i] = Offset{Row: -b.Col, Col: b.Row}
	}
	return out
}

// canonical produces an order-independent key for a cell set.
func canonical(blocks []Offset) [8]int {
	sorted := make([]Offset, len(blocks))
	copy(sorted, blocks)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0; j-- {
			a, b := sorted[j-1], sorted[j]
			if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
				sorted[j-1], sorted[j] = b, a
			} else {
				break
			}
		}
	}
	var key [8]int
	for i, b := range sorted {
		key[i*2] = b.Row
		key[i*2+1] = b.Col
	}
	return key
}

func buildRotationTable() map[ShapeKind][][]Offset {
	table := make(map[ShapeKind][][]Offset, len(baseOffsets))
	for kind, base := range baseOffsets {
		seen := make(map[[8]int]bool)
		cur := base
		var seq [][]Offset
		for i := 0; i < 4; i++ {
			key := canonical(cur)
			if !seen[key] {
				seq = append(seq, cur)
				seen[key] = true
			}
			cur = rot90(cur)
		}
		table[kind] = seq
	}
	return table
}

// Rotations returns the orientation list for a shape.
func Rotations(kind ShapeKind) [][]Offset {
	return rotationTable[kind]
}

// Piece is the active falling piece: a shape, an orientation index,
// and the anchor cell its offsets are relative to.
type Piece struct {
	Kind ShapeKind
	Rot  int
	Row  int
	Col  int
}

// Cells returns the board coordinates the piece occupies.
func (p Piece) Cells() []Offset {
	offs := rotationTable[p.Kind][p.Rot]
	out := make([]Offset, len(offs))
	for i, o := range offs {
		out[i] = Offset{Row: p.Row + o.Row, Col: p.Col + o.Col}
	}
	return out
}
