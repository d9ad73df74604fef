// Package markdown renders entry descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/work/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output.
func Render(width, indentBy int, input []byte) []byte {
	value, ok := prepare(input)
	if !ok {
		return nil
	}
	renderWidth := innerWidth(width, indentBy)

	rendered := value
	if r := markdownRenderer(renderWidth); r != nil {
		formatted, err := r.Render(value)
		if err == nil {
			rendered = formatted
		}
	}
	return finish(rendered, indentBy)
}

// SafeRender is like Render but falls back to the input if the renderer panics.
func SafeRender(width, indentBy int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			value, _ := prepare(input)
			out = []byte(value)
		}
	}()
	return Render(width, indentBy, input)
}

// Plain wraps text at width without interpreting markdown.
func Plain(width, indentBy int, input []byte) []byte {
	value, ok := prepare(input)
	if !ok {
		return nil
	}
	return finish(wordwrap.String(value, innerWidth(width, indentBy)), indentBy)
}

func prepare(input []byte) (string, bool) {
	if len(input) == 0 {
		return "", false
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if internalstrings.IsBlank(value) {
		return "", false
	}
	return value, true
}

func innerWidth(width, indentBy int) int {
	if width < 1 {
		width = 1
	}
	if indentBy < 0 {
		indentBy = 0
	}
	if width-indentBy < 1 {
		return 1
	}
	return width - indentBy
}

func finish(rendered string, indentBy int) []byte {
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	rendered = internalstrings.TrimLeadingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	if indentBy <= 0 {
		return []byte(rendered)
	}
	return []byte(indent.String(rendered, uint(indentBy)))
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	style.Document.Margin = uintPtr(0)
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func uintPtr(v uint) *uint {
	return &v
}
