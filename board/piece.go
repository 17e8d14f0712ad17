package board

// PieceKind is one of the six chess piece kinds.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
var kindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// Letter returns the uppercase piece letter used in position files and
// move notation.
func (k PieceKind) Letter() byte {
	return kindLetters[k]
}

func (k PieceKind) String() string {
	return kindNames[k]
}

// KindFromLetter maps an uppercase piece letter back to its kind.
func KindFromLetter(letter byte) (PieceKind, bool) {
	for k, l := range kindLetters {
		if l == letter {
			return PieceKind(k), true
		}
	}
	return 0, false
}

// A Piece is a single piece of a given kind and color. The board owns
// placement; a piece only records the cell it currently occupies, and that
// field is maintained exclusively by Board mutators so that
// piece.Cell() == c exactly when board.Get(c) returns the piece.
type Piece struct {
	kind  PieceKind
	white bool
	cell  Cell
}

// NewPiece creates an unplaced piece.
func NewPiece(kind PieceKind, white bool) *Piece {
	return &Piece{kind: kind, white: white, cell: NoCell}
}

func (p *Piece) Kind() PieceKind {
	return p.kind
}

func (p *Piece) IsWhite() bool {
	return p.white
}

// Cell returns the cell this piece occupies, or NoCell if it is not on
// a board.
func (p *Piece) Cell() Cell {
	return p.cell
}

// Letter returns the piece letter, uppercase for White and lowercase for
// Black, matching the position text format.
func (p *Piece) Letter() byte {
	l := p.kind.Letter()
	if !p.white {
		l += 'a' - 'A'
	}
	return l
}

func (p *Piece) String() string {
	color := "black"
	if p.white {
		color = "white"
	}
	return color + " " + p.kind.String() + "@" + p.cell.String()
}
