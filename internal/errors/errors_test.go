package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrWrongSide", ErrWrongSide, ErrWrongSide},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidMoveText", ErrInvalidMoveText, ErrInvalidMoveText},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrNothingToUndo", ErrNothingToUndo, ErrNothingToUndo},
		{"ErrUndoRequested", ErrUndoRequested, ErrUndoRequested},
		{"ErrResigned", ErrResigned, ErrResigned},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrGameOver) {
		t.Error("errors.Is(ErrIllegalMove, ErrGameOver) = true, want false")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				PlyNum:   12,
				Side:     "Black",
				MoveText: "e8g8",
			},
			contains: []string{"ply 12", "black", "e8g8", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{MoveText: "a1a2"},
			contains: []string{"a1a2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		PlyNum:   3,
		MoveText: "e1c1",
	}

	wrapped := fmt.Errorf("turn failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.PlyNum != 3 {
		t.Errorf("extracted.PlyNum = %d, want 3", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestNotationError_Error verifies NotationError formatting
func TestNotationError_Error(t *testing.T) {
	err := &NotationError{
		Err:      ErrInvalidSquare,
		Input:    "z9",
		Column:   1,
		Expected: "file a-h",
		Got:      "'z'",
	}

	msg := err.Error()
	for _, s := range []string{"z9", "column 1", "expected file a-h", "invalid square"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("NotationError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("errors.Is(err, ErrInvalidSquare) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidMoveText, "reading white's move")

	if !errors.Is(wrapped, ErrInvalidMoveText) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "reading white's move") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of game %s", 15, "abc")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
