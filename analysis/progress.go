package analysis

import (
	"fmt"

	"github.com/P1NHE4D/it3105-project01/core"
	"github.com/P1NHE4D/it3105-project01/util"
)

// ProgressReporter mirrors training progress as a single terminal line that
// is rewritten after every episode.
type ProgressReporter struct {
	printer *util.TerminalPrinter
	total   int
}

var _ core.Reporter = &ProgressReporter{}

func NewProgressReporter(totalEpisodes int) *ProgressReporter {
	return &ProgressReporter{
		printer: util.NewTerminalPrinter(),
		total:   totalEpisodes,
	}
}

func (p *ProgressReporter) Report(stats core.EpisodeStats) {
	p.printer.Write(fmt.Sprintf(
		"Episode %d/%d [epsilon: %.3f] [steps: (curr:%d min:%d avg:%.3f)] [states: %d]",
		stats.Episode+1, p.total, stats.Epsilon, stats.Steps, stats.MinSteps, stats.AvgSteps, stats.SeenStates,
	))
}

// Stop releases the terminal, keeping the last progress line.
func (p *ProgressReporter) Stop() {
	p.printer.Stop()
}
