package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every legal move for the given colour, ordered by
// origin square (rank then file) and then destination.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		moves = appendLegalMovesFrom(moves, board, colour, from)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return appendLegalMovesFrom(nil, board, piece.Colour, from)
}

// appendLegalMovesFrom probes every destination square for the piece on
// from and appends the legal ones.
func appendLegalMovesFrom(moves []chess.Move, board *chess.Board, colour chess.Colour, from chess.Square) []chess.Move {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			m := chess.NewMove(colour, from, chess.Sq(file, rank))
			if IsLegal(board, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Occupied(colour) {
		for rank := 0; rank < chess.BoardSize; rank++ {
			for file := 0; file < chess.BoardSize; file++ {
				if IsLegal(board, chess.NewMove(colour, from, chess.Sq(file, rank))) {
					return true
				}
			}
		}
	}
	return false
}

// leavesKingInCheck plays m on a copy of the board and reports whether the
// mover's king is attacked afterwards.
func leavesKingInCheck(board *chess.Board, m chess.Move) bool {
	testBoard := board.Copy()
	applyMove(testBoard, m, nil)
	return IsInCheck(testBoard, m.Colour)
}
