// Package roller runs the interactive read-parse-roll-print loop.
package roller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/diceroll/internal/core/command"
	"github.com/louisbranch/diceroll/internal/core/dice"
	apperrors "github.com/louisbranch/diceroll/internal/platform/errors"
	"github.com/louisbranch/diceroll/internal/platform/otel"
	"github.com/louisbranch/diceroll/internal/random"
)

// ErrInputClosed indicates the input stream ended before a quit command.
var ErrInputClosed = apperrors.New(apperrors.CodeInputClosed, "input closed")

// Run prompts on out, reads one line at a time from in, and answers each
// line until the user quits.
//
// Run returns nil when the user types "exit" or "quit". Bad input is
// reported on out and never ends the loop. A failure to read in (including
// end of input), to write out, or to roll is returned; callers treat it as
// fatal.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, src random.Source) error {
	if in == nil {
		return errors.New("input is required")
	}
	if out == nil {
		return errors.New("output is required")
	}
	if src == nil {
		return errors.New("random source is required")
	}

	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)
	l := &loop{
		out:     writer,
		src:     src,
		limits:  cfg.Limits(),
		echo:    cfg.Echo == EchoAlways,
		verbose: cfg.Verbose,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		writePrompt(writer)
		if err := flush(writer); err != nil {
			return err
		}

		line, err := readLine(reader)
		if err != nil {
			return err
		}

		quit, err := l.evaluate(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return flush(writer)
		}
	}
}

// loop holds what evaluate needs across lines.
type loop struct {
	out     io.Writer
	src     random.Source
	limits  dice.Limits
	echo    bool
	verbose bool
}

// evaluate answers a single line and reports whether the loop should stop.
// Recoverable failures are reported as bad input; any other failure is
// returned and ends the loop.
func (l *loop) evaluate(ctx context.Context, line string) (bool, error) {
	cmd := command.Parse(line)

	_, span := otel.Tracer().Start(ctx, "diceroll.command",
		trace.WithAttributes(attribute.String("diceroll.command.kind", cmd.Kind.String())),
	)
	defer span.End()

	if cmd.Kind == command.KindQuit {
		return true, nil
	}
	if l.echo {
		writeEcho(l.out, line)
	}

	switch cmd.Kind {
	case command.KindHelp:
		writeHelp(l.out)
		return false, nil

	case command.KindRoll:
		expr := cmd.Expression
		span.SetAttributes(
			attribute.Int("diceroll.dice.count", expr.Count),
			attribute.Int("diceroll.dice.sides", expr.Sides),
			attribute.Int("diceroll.dice.modifier", expr.Modifier),
		)
		if err := expr.Check(l.limits); err != nil {
			return false, l.reject(span, line, err)
		}

		result, err := dice.Roll(l.src, expr)
		if err != nil {
			return false, l.reject(span, line, err)
		}
		span.SetAttributes(attribute.Int("diceroll.roll.total", result.Total))

		if expr.Count == 1 {
			writeSingleRoll(l.out, result)
		} else {
			writeMultiRoll(l.out, result)
		}
		return false, nil

	default:
		return false, l.reject(span, line, cmd.Err)
	}
}

// reject records err on span. Recoverable errors are reported as bad input
// and swallowed; anything else is returned.
func (l *loop) reject(span trace.Span, line string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
	if !apperrors.IsRecoverable(err) {
		return fmt.Errorf("evaluate %q: %w", strings.TrimSpace(line), err)
	}
	if l.verbose {
		log.Printf("rejected input %q: %v", strings.TrimSpace(line), err)
	}
	writeBadInput(l.out)
	return nil
}

// readLine returns the next line including its newline, if any. A final
// line without a newline is still returned; only a read that yields nothing
// reports end of input.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return "", apperrors.Wrap(apperrors.CodeInputClosed, "read input", err)
}

func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "write output", err)
	}
	return nil
}
