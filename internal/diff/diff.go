package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/termfolio/internal/convert"
	"github.com/gerunddev/termfolio/internal/render"
)

// Options controls how a diff is produced
type Options struct {
	Plain bool   // skip terminal rendering
	Theme string // site theme used for rendering
	Width int
}

// Unified returns a unified diff between the Jekyll source and its converted form
func Unified(name, source string, conv *convert.JekyllConverter) string {
	converted := conv.Convert(source)
	if converted == source {
		return ""
	}

	edits := myers.ComputeEdits(span.URIFromPath(name), source, converted)
	return fmt.Sprint(gotextdiff.ToUnified(name, name+" (converted)", source, edits))
}

// Generate reads the post at path and diffs it against its conversion.
// The diff is wrapped in a diff code fence and rendered for the terminal
// unless opts.Plain is set. Rendering failures fall back to the plain fence.
func Generate(path string, conv *convert.JekyllConverter, opts Options) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read post: %w", err)
	}

	unified := Unified(filepath.Base(path), string(source), conv)
	if unified == "" {
		return "", nil
	}

	if opts.Plain {
		return unified, nil
	}

	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	rendered, err := render.Terminal(diffMarkdown, opts.Theme, opts.Width)
	if err != nil {
		return diffMarkdown, nil
	}

	return rendered, nil
}
