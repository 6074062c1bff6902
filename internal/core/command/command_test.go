package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/diceroll/internal/core/dice"
	apperrors "github.com/louisbranch/diceroll/internal/platform/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{line: "help", want: Command{Kind: KindHelp}},
		{line: "  HELP  ", want: Command{Kind: KindHelp}},
		{line: "exit", want: Command{Kind: KindQuit}},
		{line: "quit\n", want: Command{Kind: KindQuit}},
		{line: "Quit", want: Command{Kind: KindQuit}},
		{line: "EXIT", want: Command{Kind: KindQuit}},
		{line: "1d20", want: Roll(dice.Expression{Count: 1, Sides: 20})},
		{line: "2d8+5", want: Roll(dice.Expression{Count: 2, Sides: 8, Modifier: 5})},
		{line: "4D6-1", want: Roll(dice.Expression{Count: 4, Sides: 6, Modifier: -1})},
		{line: " d12 ", want: Roll(dice.Expression{Count: 1, Sides: 12})},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Parse(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		line     string
		wantCode apperrors.Code
	}{
		{line: "banana", wantCode: apperrors.CodeExpressionMalformed},
		{line: "", wantCode: apperrors.CodeExpressionMalformed},
		{line: "helpme", wantCode: apperrors.CodeExpressionMalformed},
		{line: "quit now", wantCode: apperrors.CodeExpressionMalformed},
		{line: "2dx", wantCode: apperrors.CodeExpressionBadToken},
		{line: "  2DX ", wantCode: apperrors.CodeExpressionBadToken},
		{line: "0d6", wantCode: apperrors.CodeDiceInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Parse(tt.line)
			if got.Kind != KindInvalid {
				t.Fatalf("Parse(%q).Kind = %s, want %s", tt.line, got.Kind, KindInvalid)
			}
			var parseErr *dice.ParseError
			if !errors.As(got.Err, &parseErr) {
				t.Fatalf("Parse(%q).Err = %v, want *dice.ParseError", tt.line, got.Err)
			}
			if parseErr.Code() != tt.wantCode {
				t.Fatalf("code = %s, want %s", parseErr.Code(), tt.wantCode)
			}
			if parseErr.Line != tt.line {
				t.Fatalf("Line = %q, want the line as typed %q", parseErr.Line, tt.line)
			}
			if got.Expression != (dice.Expression{}) {
				t.Fatalf("expected empty expression on invalid input, got %+v", got.Expression)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindUnspecified: "Unspecified",
		KindRoll:        "Roll",
		KindHelp:        "Help",
		KindQuit:        "Quit",
		KindInvalid:     "Invalid",
		Kind(99):        "Unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
