package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// knightShape accepts the (1,2) and (2,1) jumps.
func knightShape(_ *chess.Board, m chess.Move) bool {
	colDiff := abs(m.FileDelta())
	rankDiff := abs(m.RankDelta())
	return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)
}

// bishopShape accepts unobstructed diagonal moves.
func bishopShape(board *chess.Board, m chess.Move) bool {
	if abs(m.FileDelta()) != abs(m.RankDelta()) {
		return false
	}
	return isPathClear(board, m.From, m.To)
}

// rookShape accepts unobstructed moves along a rank or file.
func rookShape(board *chess.Board, m chess.Move) bool {
	if m.FileDelta() != 0 && m.RankDelta() != 0 {
		return false
	}
	return isPathClear(board, m.From, m.To)
}

// queenShape accepts anything a rook or bishop could do.
func queenShape(board *chess.Board, m chess.Move) bool {
	return rookShape(board, m) || bishopShape(board, m)
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	colDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	for sq := from.Offset(colDir, rankDir); sq != to; sq = sq.Offset(colDir, rankDir) {
		if !sq.Valid() {
			return false
		}
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}

	return true
}
