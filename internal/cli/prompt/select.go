// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jthorne/matter/internal/errors"
)

// Sentinel errors for value selection.
var (
	ErrNoOptions          = errors.New("no options to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Interactive reports whether stdin is a terminal, i.e. whether the fuzzy
// picker can run. Non-interactive callers get the numbered prompt instead.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Selector handles numbered multi-selection prompts over plain stdio.
// It is the fallback used when the fuzzy picker cannot run.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectValues prompts the user to choose one or more options by number,
// comma-separated.
//
// Returns:
//   - ErrNoOptions if the list is empty
//   - ErrSelectionCancelled on EOF or empty input
//   - ErrInvalidSelection if any number is malformed or out of range
//   - the selected values, in the order given by the user, otherwise
func (s *Selector) SelectValues(label string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	fmt.Fprintf(s.writer, "%s:\n", label)
	for i, option := range options {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, option)
	}
	fmt.Fprintf(s.writer, "Select (comma-separated): ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrSelectionCancelled
	}

	var selected []string
	seen := map[int]bool{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", part)
		}
		if n < 1 || n > len(options) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(options))
		}
		if !seen[n] {
			seen[n] = true
			selected = append(selected, options[n-1])
		}
	}

	return selected, nil
}
