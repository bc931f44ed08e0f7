// Package term renders boards as text frames for headless runs.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
)

const (
	cellAlive = "██"
	cellDead  = "  "

	// clearScreen homes the cursor and erases the display.
	clearScreen = "\033[H\033[2J"
)

// Renderer writes boards to a terminal.
type Renderer struct {
	w     io.Writer
	clear bool
	buf   strings.Builder
}

// NewRenderer returns a Renderer writing to w. When clear is set every frame
// starts by erasing the screen.
func NewRenderer(w io.Writer, clear bool) *Renderer {
	return &Renderer{w: w, clear: clear}
}

// Frame writes one status line followed by the board.
func (r *Renderer) Frame(g *core.Grid, params []core.Parameter) error {
	r.buf.Reset()
	if r.clear {
		r.buf.WriteString(clearScreen)
	}
	r.buf.WriteString(StatusLine(params))
	r.buf.WriteByte('\n')
	writeBoard(&r.buf, g)
	if _, err := io.WriteString(r.w, r.buf.String()); err != nil {
		return errors.Wrap(err, "[Frame] failed to write frame")
	}
	return nil
}

// StatusLine joins parameters as "Label: value" pairs.
func StatusLine(params []core.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Label, p.Value))
	}
	return strings.Join(parts, " | ")
}

func writeBoard(b *strings.Builder, g *core.Grid) {
	for i := 0; i < g.Rows; i++ {
		for k := 0; k < g.Cols; k++ {
			if g.Alive(i, k) {
				b.WriteString(cellAlive)
			} else {
				b.WriteString(cellDead)
			}
		}
		b.WriteByte('\n')
	}
}
