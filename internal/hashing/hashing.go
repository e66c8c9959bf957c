// Package hashing provides position keys and a cache of move-tree counts
// keyed by position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys, indexed [colour][piece type][moved][file][rank]. The moved
// flag is part of the key because it decides castling rights.
var (
	pieceKeys     [2][chess.NumPieceTypes][2][chess.BoardSize][chess.BoardSize]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	// Fixed seed so keys are the same in every run.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for m := range pieceKeys[c][p] {
				for f := range pieceKeys[c][p][m] {
					for r := range pieceKeys[c][p][m][f] {
						pieceKeys[c][p][m][f][r] = rnd.Uint64()
					}
				}
			}
		}
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	blackToMove = rnd.Uint64()
}

// GenerateZobristHash returns the Zobrist key of a position: the pieces
// with their moved flags, the side to move and the en passant file.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := board.Squares[f][r]
			if p.IsEmpty() {
				continue
			}
			moved := 0
			if p.Moved {
				moved = 1
			}
			hash ^= pieceKeys[colourIndex(p.Colour)][p.Type][moved][f][r]
		}
	}
	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	if board.EnPassant {
		hash ^= enPassantKeys[board.EPSquare.File]
	}
	return hash
}

func colourIndex(c chess.Colour) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// nodeKey identifies a count: the position and the depth searched below it.
type nodeKey struct {
	hash  uint64
	depth int
}

// NodeTable caches leaf counts of move trees by position and depth.
type NodeTable struct {
	entries map[nodeKey]uint64
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
}

// NewNodeTable creates an empty table. maxCapacity of 0 means unlimited.
func NewNodeTable(maxCapacity int) *NodeTable {
	return &NodeTable{
		entries:     make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the count stored for a position searched to depth.
func (t *NodeTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[nodeKey{hash, depth}]
	if ok {
		t.hits++
	}
	return nodes, ok
}

// Store records a count. Nothing is stored once the table is full.
func (t *NodeTable) Store(hash uint64, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[nodeKey{hash, depth}] = nodes
}

// IsFull returns true if the table has reached its capacity limit.
func (t *NodeTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored counts.
func (t *NodeTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *NodeTable) Hits() int {
	return t.hits
}
