package roller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/diceroll/internal/core/dice"
)

// Terminal texts.
const (
	PromptText   = "Roll the dice:"
	BadInputText = "Bad input, try again."
)

const helpRule = "----------------------------------------------------"

// HelpText is printed for the help command.
var HelpText = strings.Join([]string{
	helpRule,
	"",
	"Roll dice with any of the following command formats:",
	"xdx",
	"xdx+x",
	"xdx-x",
	"",
	"Examples:",
	"1d20",
	"2d8+5",
	"4d6-1",
	"",
	`Type "exit" or "quit" to terminate the program.`,
	helpRule,
}, "\n")

func writePrompt(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", PromptText)
}

func writeEcho(w io.Writer, line string) {
	fmt.Fprintln(w, strings.TrimRight(line, "\r\n"))
}

func writeHelp(w io.Writer) {
	fmt.Fprintln(w, HelpText)
}

func writeBadInput(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", BadInputText)
}

func writeSingleRoll(w io.Writer, result dice.RollResult) {
	fmt.Fprintf(w, "\nResult: %d\nModifier: %d\nSum: %d\n", result.Values[0], result.Modifier, result.Total)
}

func writeMultiRoll(w io.Writer, result dice.RollResult) {
	fmt.Fprintf(w, "\nResults: [%s]\nModifier: %d\nSum: %d\n", joinValues(result.Values), result.Modifier, result.Total)
}

func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
