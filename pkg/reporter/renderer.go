package reporter

import (
	"context"

	"github.com/yaklabco/richmd/pkg/richtext"
)

// Renderer writes a compiled document in one output format.
// Renderers are stateless and only handle presentation logic.
type Renderer interface {
	// Render writes the formatted document to the configured output.
	Render(ctx context.Context, doc *richtext.RichText) error
}
