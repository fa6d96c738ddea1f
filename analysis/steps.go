package analysis

import (
	"github.com/P1NHE4D/it3105-project01/core"
	"github.com/P1NHE4D/it3105-project01/util"
)

// StepsDataSet holds per-episode training diagnostics, one entry per
// completed episode.
type StepsDataSet struct {
	Episodes   []int
	Steps      []int
	Epsilons   []float64
	SeenStates []int
}

func (d *StepsDataSet) Copy() *StepsDataSet {
	return &StepsDataSet{
		Episodes:   util.CopyIntSlice(d.Episodes),
		Steps:      util.CopyIntSlice(d.Steps),
		Epsilons:   util.CopyFloatSlice(d.Epsilons),
		SeenStates: util.CopyIntSlice(d.SeenStates),
	}
}

// StepsAnalyzer accumulates the step count, exploration rate and seen-state
// count of every episode into a dataset.
type StepsAnalyzer struct {
	dataset *StepsDataSet
}

var _ core.Analyzer = &StepsAnalyzer{}

func NewStepsAnalyzer() *StepsAnalyzer {
	return &StepsAnalyzer{
		dataset: emptyStepsDataSet(),
	}
}

func (s *StepsAnalyzer) Analyze(stats core.EpisodeStats) {
	s.dataset.Episodes = append(s.dataset.Episodes, stats.Episode)
	s.dataset.Steps = append(s.dataset.Steps, stats.Steps)
	s.dataset.Epsilons = append(s.dataset.Epsilons, stats.Epsilon)
	s.dataset.SeenStates = append(s.dataset.SeenStates, stats.SeenStates)
}

func (s *StepsAnalyzer) DataSet() core.DataSet {
	return s.dataset.Copy()
}

func (s *StepsAnalyzer) Reset() {
	s.dataset = emptyStepsDataSet()
}

func emptyStepsDataSet() *StepsDataSet {
	return &StepsDataSet{
		Episodes:   make([]int, 0),
		Steps:      make([]int, 0),
		Epsilons:   make([]float64, 0),
		SeenStates: make([]int, 0),
	}
}
