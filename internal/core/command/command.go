// Package command classifies one line of terminal input.
//
// Parse never performs side effects: reserved words become Help or Quit
// commands, everything else is handed to the dice expression parser. The
// caller decides what to print and when to stop.
package command

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/louisbranch/diceroll/internal/core/dice"
)

// Kind identifies the variant of a Command.
type Kind int

const (
	KindUnspecified Kind = iota
	KindRoll
	KindHelp
	KindQuit
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "Unspecified"
	case KindRoll:
		return "Roll"
	case KindHelp:
		return "Help"
	case KindQuit:
		return "Quit"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Reserved words, matched after trimming and case folding.
const (
	WordHelp = "help"
	WordExit = "exit"
	WordQuit = "quit"
)

// Command is the parsed form of one input line.
type Command struct {
	Kind Kind
	// Expression is set when Kind is KindRoll.
	Expression dice.Expression
	// Err is set when Kind is KindInvalid.
	Err error
}

// Parse classifies line. Surrounding whitespace and letter case are ignored.
func Parse(line string) Command {
	text := cases.Fold().String(strings.TrimSpace(line))

	switch text {
	case WordHelp:
		return Command{Kind: KindHelp}
	case WordExit, WordQuit:
		return Command{Kind: KindQuit}
	}

	expr, err := dice.ParseExpression(line)
	if err != nil {
		return Command{Kind: KindInvalid, Err: err}
	}
	return Roll(expr)
}

// Roll returns a roll command for expr.
func Roll(expr dice.Expression) Command {
	return Command{Kind: KindRoll, Expression: expr}
}
