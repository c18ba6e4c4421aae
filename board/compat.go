package board

import (
	"errors"
	"strings"
)

// Startpos is the FEN string for the standard initial chess position.
const Startpos = FENStartPos

// NullMove is the sentinel value for "no move".
const NullMove Move = 0

// IsCapture reports whether m captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != NoPiece || m.Flags() == FlagEnPassant
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool { return m.Flags() == FlagEnPassant }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// ParseMove converts a UCI move string (e.g. "e2e4", "e7e8q", "0000") into a
// Move by matching it against the legal moves of b.
func ParseMove(b *Board, movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if movestr == "0000" {
		return NullMove, nil
	}
	if len(movestr) < 4 || len(movestr) > 5 {
		return NullMove, errors.New("invalid move length")
	}
	from, err := algebraicToIndex(movestr[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := algebraicToIndex(movestr[2:4])
	if err != nil {
		return NullMove, err
	}
	var promoType PieceType
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promoType = PieceTypeQueen
		case 'r':
			promoType = PieceTypeRook
		case 'b':
			promoType = PieceTypeBishop
		case 'n':
			promoType = PieceTypeKnight
		default:
			return NullMove, errors.New("invalid promotion piece")
		}
	}
	for _, cand := range b.GenerateMoves() {
		if int(cand.From()) == from && int(cand.To()) == to {
			if promoType == PieceTypeNone || cand.PromotionPieceType() == promoType {
				return cand, nil
			}
		}
	}
	return NullMove, errors.New("move is not legal in the current position")
}

func algebraicToIndex(alg string) (int, error) {
	if len(alg) != 2 {
		return 0, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errors.New("invalid algebraic square")
	}
	return int(file-'a') + int(rank-'1')*8, nil
}
