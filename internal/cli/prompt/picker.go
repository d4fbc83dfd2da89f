package prompt

import (
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/jthorne/matter/internal/errors"
)

// PickValues runs the fuzzy finder for multi-selection over options.
// Tab marks items, enter confirms. Aborting returns ErrSelectionCancelled.
func PickValues(header string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	idxs, err := fuzzyfinder.FindMulti(
		options,
		func(i int) string {
			return options[i]
		},
		fuzzyfinder.WithHeader(header),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "running picker")
	}

	selected := make([]string, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, options[i])
	}
	return selected, nil
}
