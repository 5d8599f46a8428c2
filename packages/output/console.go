package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/softcheck/packages/soft"
)

// Formatter renders the failures captured by a soft-assertion session.
type Formatter interface {
	FormatFailures(failures []soft.CapturedFailure)
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatFailures prints one line per captured failure in sequence order,
// with multi-line messages indented under their entry.
func (f *ConsoleFormatter) FormatFailures(failures []soft.CapturedFailure) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if len(failures) == 0 {
		fmt.Fprintf(f.writer, "%s %s\n", green("✓"), "all assertions passed")
		return
	}

	fmt.Fprintf(f.writer, "%s\n\n", bold(fmt.Sprintf("%d assertion failure(s)", len(failures))))
	for _, failure := range failures {
		head, rest := splitMessage(failure.Message)
		fmt.Fprintf(f.writer, "  %s %s %s\n", red("✗"), cyan(fmt.Sprintf("#%d", failure.Seq+1)), head)
		for _, line := range rest {
			fmt.Fprintf(f.writer, "      %s\n", line)
		}
		if f.verbose && failure.Err != nil {
			if cause := errors.Unwrap(failure.Err); cause != nil {
				fmt.Fprintf(f.writer, "      %s %v\n", red("→"), cause)
			}
		}
	}
	fmt.Fprintf(f.writer, "\n%s %s\n", red("✗"), fmt.Sprintf("%d failed", len(failures)))
}

// FormatError prints the result of AssertAll: the full failure report for an
// AggregateError, a plain error line otherwise.
func (f *ConsoleFormatter) FormatError(err error) {
	if err == nil {
		f.FormatFailures(nil)
		return
	}
	var agg *soft.AggregateError
	if errors.As(err, &agg) {
		f.FormatFailures(agg.Failures)
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func splitMessage(msg string) (string, []string) {
	lines := strings.Split(msg, "\n")
	return lines[0], lines[1:]
}
