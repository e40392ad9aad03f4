package main

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressReporter bridges pool completion events to a terminal progress bar.
// The bar is created on the first event because the item total is not known
// until the parallel phase starts.
type progressReporter struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

func newProgressReporter(w io.Writer) *progressReporter {
	return &progressReporter{writer: w}
}

func (p *progressReporter) update(done, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.writer),
			progressbar.OptionSetDescription("Checking assets"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("assets"),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}

func (p *progressReporter) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
