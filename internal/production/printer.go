// Package production renders computed results for the console.
package production

import (
	"fmt"
	"io"
)

// Result is the pair of values the demo reports.
type Result struct {
	Zero bool   `yaml:"zero"`
	X    uint16 `yaml:"x"`
}

// Printer writes one result line per call.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// format returns the line for r without the trailing newline.
func format(r Result) string {
	return fmt.Sprintf("%t %d", r.Zero, r.X)
}

// Print writes r as "<bool> <uint16>\n".
func (p *Printer) Print(r Result) error {
	if _, err := io.WriteString(p.w, format(r)+"\n"); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
