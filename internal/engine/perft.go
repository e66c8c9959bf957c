package engine

import (
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree below board to the
// given depth, with the side to move taken from board.ToMove. A pawn move
// to the last rank counts once for each promotion piece, so counts agree
// with standard perft tables.
func Perft(board *chess.Board, depth int) uint64 {
	return perft(board, depth, nil)
}

// PerftCached is Perft taking the counts of positions already searched
// from table and adding the ones it computes.
func PerftCached(board *chess.Board, depth int, table *hashing.ThreadSafeNodeTable) uint64 {
	return perft(board, depth, table)
}

// noPromotion is the single choice of a move that does not promote.
var noPromotion = []chess.PieceType{chess.Empty}

// promotionChoices returns the pieces m may promote to, or noPromotion.
func promotionChoices(board *chess.Board, m chess.Move) []chess.PieceType {
	if IsPromotion(board, m) {
		return PromotionPieces[:]
	}
	return noPromotion
}

func perft(board *chess.Board, depth int, table *hashing.ThreadSafeNodeTable) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		var nodes uint64
		for _, m := range moves {
			nodes += uint64(len(promotionChoices(board, m)))
		}
		return nodes
	}

	var hash uint64
	if table != nil {
		hash = hashing.GenerateZobristHash(board)
		if nodes, ok := table.Lookup(hash, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		for _, p := range promotionChoices(board, m) {
			child := board.Copy()
			applyMove(child, m, PromoteTo(p))
			nodes += perft(child, depth-1, table)
		}
	}

	if table != nil {
		table.Store(hash, depth, nodes)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's coordinate text with a promotion letter where there is one, e.g.
// "e2e4" or "b7a8n". Root moves are spread over workers goroutines;
// workers < 1 uses one per CPU.
func PerftDivide(board *chess.Board, depth, workers int) map[string]uint64 {
	return PerftDivideCached(board, depth, workers, nil)
}

// PerftDivideCached is PerftDivide with the workers sharing table. A nil
// table disables caching.
func PerftDivideCached(board *chess.Board, depth, workers int, table *hashing.ThreadSafeNodeTable) map[string]uint64 {
	divide := make(map[string]uint64)
	if depth <= 0 {
		return divide
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		return perftItem(item, table)
	}
	pool := worker.NewPool(process, worker.WithWorkers(workers))
	pool.Start()

	go func() {
		i := 0
		for _, m := range LegalMoves(board, board.ToMove) {
			for _, p := range promotionChoices(board, m) {
				pool.Submit(worker.WorkItem{Board: board.Copy(), Move: m, Promotion: p, Depth: depth - 1, Index: i})
				i++
			}
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		divide[divideKey(result.Move, result.Promotion)] = result.Nodes
	}
	return divide
}

// perftItem plays the item's move on its private board and counts below it.
func perftItem(item worker.WorkItem, table *hashing.ThreadSafeNodeTable) worker.ProcessResult {
	applyMove(item.Board, item.Move, PromoteTo(item.Promotion))
	return worker.ProcessResult{
		Move:      item.Move,
		Promotion: item.Promotion,
		Index:     item.Index,
		Nodes:     perft(item.Board, item.Depth, table),
	}
}

// divideKey names a root move in coordinate form, e.g. "e7e8q".
func divideKey(m chess.Move, promotion chess.PieceType) string {
	if !promotion.IsPromotion() {
		return m.String()
	}
	return m.String() + string(chess.Piece{Type: promotion, Colour: chess.Black}.Letter())
}
