package util

import (
	"fmt"

	"github.com/gosuri/uilive"
)

// TerminalPrinter renders a single terminal line that is rewritten in
// place, used for per-episode training progress.
type TerminalPrinter struct {
	writer *uilive.Writer
}

func NewTerminalPrinter() *TerminalPrinter {
	writer := uilive.New()
	writer.Start()
	return &TerminalPrinter{
		writer: writer,
	}
}

// Write replaces the current line with out.
func (p *TerminalPrinter) Write(out string) {
	fmt.Fprintln(p.writer, out)
	p.writer.Flush()
}

// Stop releases the terminal, leaving the last line in place.
func (p *TerminalPrinter) Stop() {
	p.writer.Stop()
}
