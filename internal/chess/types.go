// Package chess provides core chess types and the board state.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank the colour's king and rooks start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank the colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Direction()
}

// LastRank returns the rank on which the colour's pawns promote.
func (c Colour) LastRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every piece kind in value order.
var Kinds = []Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionKinds are the kinds a pawn may promote to.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return ' '
	}
}

// IsMinor reports whether the kind is a knight or bishop.
func (k Kind) IsMinor() bool {
	return k == Knight || k == Bishop
}

// CanPromoteTo reports whether a pawn may become this kind.
func (k Kind) CanPromoteTo() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a kind and colour pair. The zero value is no piece.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty occupant.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p is no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is of the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l |= 0x20
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "None"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// NoSquare is the "not found" sentinel.
var NoSquare = Square{File: -1, Rank: -1}

// Sq creates a square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether both components lie on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by df files and dr ranks. The result may be off-board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns the coordinate in algebraic form, or "-" when off-board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}
