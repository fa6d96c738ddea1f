package analysis

import (
	"testing"

	"github.com/P1NHE4D/it3105-project01/core"
)

func TestStepsAnalyzerAccumulates(t *testing.T) {
	analyzer := NewStepsAnalyzer()
	for i := 0; i < 3; i++ {
		analyzer.Analyze(core.EpisodeStats{
			Episode:    i,
			Steps:      10 - i,
			Epsilon:    0.5,
			SeenStates: i + 1,
		})
	}

	dataset := analyzer.DataSet().(*StepsDataSet)
	if len(dataset.Episodes) != 3 {
		t.Fatalf("dataset has %d entries, want 3", len(dataset.Episodes))
	}
	if dataset.Steps[0] != 10 || dataset.Steps[2] != 8 {
		t.Errorf("steps not recorded in order: %v", dataset.Steps)
	}
	if dataset.SeenStates[2] != 3 {
		t.Errorf("seen states not recorded: %v", dataset.SeenStates)
	}

	// the returned dataset is a copy
	dataset.Steps[0] = 99
	fresh := analyzer.DataSet().(*StepsDataSet)
	if fresh.Steps[0] != 10 {
		t.Errorf("DataSet leaked internal state: %v", fresh.Steps)
	}

	analyzer.Reset()
	if len(analyzer.DataSet().(*StepsDataSet).Episodes) != 0 {
		t.Error("Reset did not clear the dataset")
	}
}
