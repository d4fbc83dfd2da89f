package commands

import (
	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/cli/prompt"
	"github.com/jthorne/matter/internal/document"
	"github.com/jthorne/matter/internal/errors"
	"github.com/jthorne/matter/internal/front"
)

// runTaxonomy inserts values into the tags or categories list. Values come
// from the positional arguments, or interactively from the configured
// vocabulary when no arguments are given.
func runTaxonomy(cmd *cobra.Command, values []string, key string) error {
	doc, err := resolveDoc(cmd, nil)
	if err != nil || doc == nil {
		return err
	}

	if len(values) == 0 {
		values, err = pickFromVocabulary(cmd, doc, key)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
	}

	engine := newEngine()
	switch key {
	case front.KeyTags:
		err = engine.InsertTags(doc, values)
	default:
		err = engine.InsertCategories(doc, values)
	}
	if err != nil {
		return err
	}

	if err := flush(cmd, doc); err != nil {
		return err
	}

	notef(cmd, doc, "Updated %s of %s.", key, describe(doc))
	return nil
}

// pickFromVocabulary prompts for values from the configured vocabulary.
// Returns no values (and no error) when there is nothing to pick or the
// user cancels.
func pickFromVocabulary(cmd *cobra.Command, doc *document.Document, key string) ([]string, error) {
	var vocabulary []string
	if key == front.KeyTags {
		vocabulary = cfg.Taxonomy.Tags
	} else {
		vocabulary = cfg.Taxonomy.Categories
	}

	if len(vocabulary) == 0 {
		notef(cmd, doc, "No %s vocabulary configured; pass values as arguments.", key)
		return nil, nil
	}

	// Filter mode owns stdin, so there is nothing to prompt on.
	if doc.Path == "" {
		return nil, errors.NewUserError(
			errors.Newf("cannot prompt for %s in filter mode", key),
			"Pass values as arguments")
	}

	var values []string
	var err error
	if prompt.Interactive() {
		values, err = prompt.PickValues("Select "+key, vocabulary)
	} else {
		values, err = prompt.NewSelectorWithIO(cmd.InOrStdin(), cmd.OutOrStdout()).
			SelectValues("Select "+key, vocabulary)
	}

	if err != nil {
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			notef(cmd, doc, "Cancelled.")
			return nil, nil
		}
		return nil, err
	}
	return values, nil
}
