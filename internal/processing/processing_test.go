package processing

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithLog(io.Discard).WithOutput(io.Discard).Build()
}

func TestReadMoves(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "e2e4 e7e5\ng1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"numbered", "1. e2e4 e7e5 2. g1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"black to start", "1... e7e5", []string{"e7e5"}},
		{"result", "1. f2f3 e7e5 2. g2g4 d8h4 0-1", []string{"f2f3", "e7e5", "g2g4", "d8h4"}},
		{"empty", "  \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadMoves(strings.NewReader(tt.input))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsMoveNumber(t *testing.T) {
	tests := map[string]bool{
		"1.":    true,
		"23...": true,
		"1":     false,
		".":     false,
		"e2e4":  false,
		"a.":    false,
	}
	for token, want := range tests {
		if got := isMoveNumber(token); got != want {
			t.Errorf("isMoveNumber(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestReplayMoves(t *testing.T) {
	session, result := ReplayMoves(quietConfig(), []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertTrue(t, result.Valid, "fool's mate should replay")
	testutil.AssertEqual(t, session.PlyCount(), 4)
	testutil.AssertEqual(t, session.Status(), chess.Checkmate)
}

func TestReplayMoves_Errors(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		wantPly int
		wantErr error
	}{
		{"legal", []string{"e2e4", "e7e5", "g1f3"}, 0, nil},
		{"illegal", []string{"e2e4", "e7e4"}, 2, chesserrors.ErrIllegalMove},
		{"unreadable", []string{"e2e4", "castle"}, 2, chesserrors.ErrInvalidMoveText},
		{"after mate", []string{"f2f3", "e7e5", "g2g4", "d8h4", "a2a3"}, 5, chesserrors.ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, result := ReplayMoves(quietConfig(), tt.moves)
			if tt.wantErr == nil {
				testutil.AssertTrue(t, result.Valid, "moves should be valid")
				testutil.AssertEqual(t, session.PlyCount(), len(tt.moves))
				return
			}
			testutil.AssertFalse(t, result.Valid, "moves should be invalid")
			testutil.AssertEqual(t, result.ErrorPly, tt.wantPly)
			testutil.AssertEqual(t, session.PlyCount(), tt.wantPly-1, "plies kept")
			if !errors.Is(result.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", result.Err, tt.wantErr)
			}
			testutil.AssertContains(t, result.ErrorMsg, tt.moves[tt.wantPly-1])
		})
	}
}

func TestAnalyzeGame(t *testing.T) {
	moves := []string{
		"e2e4", "d7d5", "e4e5", "f7f5", "e5f6", "g8f6", // en passant
		"g1f3", "b8c6", "f1b5", "c8d7", "e1g1", // castling
		"d8", // stops here
	}
	session, result := ReplayMoves(quietConfig(), moves)
	testutil.AssertFalse(t, result.Valid, "last move is unreadable")

	analysis := AnalyzeGame(session)
	testutil.AssertEqual(t, analysis.PlyCount, 11)
	testutil.AssertTrue(t, analysis.HasEnPassant, "HasEnPassant")
	testutil.AssertTrue(t, analysis.HasCastling, "HasCastling")
	testutil.AssertFalse(t, analysis.UnderpromotionFound(), "UnderpromotionFound")
	testutil.AssertEqual(t, analysis.CaptureCount, 2)
	testutil.AssertEqual(t, analysis.CheckCount, 0)
	testutil.AssertEqual(t, analysis.DistinctPositions, 12)
	testutil.AssertEqual(t, analysis.Status, chess.Ongoing)
	testutil.AssertEqual(t, analysis.FinalBoard, session.Board())
}

func TestAnalyzeGame_UnderpromotionAndChecks(t *testing.T) {
	moves := []string{"b2b4", "a7a5", "b4a5", "b7b6", "a5b6", "c8b7", "b6c7", "d8c8", "c7b8n"}
	session, result := ReplayMoves(quietConfig(), moves)
	testutil.AssertTrue(t, result.Valid, result.ErrorMsg)

	analysis := AnalyzeGame(session)
	testutil.AssertTrue(t, analysis.UnderpromotionFound(), "UnderpromotionFound")
	testutil.AssertEqual(t, analysis.CaptureCount, 4)

	session, _ = ReplayMoves(quietConfig(), []string{"e2e4", "f7f6", "d1h5"})
	testutil.AssertEqual(t, AnalyzeGame(session).CheckCount, 1)
}

func TestAnalyzeGame_Repetition(t *testing.T) {
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6"}
	session, _ := ReplayMoves(quietConfig(), moves)
	// Only the position after 1... Nf6 recurs. Once the knights have moved,
	// the start squares no longer give the same positions.
	testutil.AssertEqual(t, AnalyzeGame(session).DistinctPositions, 6)
}
