package local

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// progressInterval is how often the indicator advances while polling.
const progressInterval = 100 * time.Millisecond

// progress is a cyclical liveness indicator rendered on one line.
type progress struct {
	w      io.Writer
	frames []string
	step   int
	paint  *color.Color
}

func newProgress(w io.Writer) *progress {
	return &progress{
		w:      w,
		frames: []string{"|", "/", "-", "\\"},
		paint:  color.New(color.FgCyan),
	}
}

// advance redraws the indicator with the next frame.
func (p *progress) advance() {
	p.paint.Fprintf(p.w, "\r%s", p.frames[p.step%len(p.frames)])
	p.step++
}

// clear erases the indicator line.
func (p *progress) clear() {
	fmt.Fprint(p.w, "\r \r")
}
