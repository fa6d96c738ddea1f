package cmd

import (
	"path/filepath"

	"github.com/P1NHE4D/it3105-project01/analysis"
	"github.com/P1NHE4D/it3105-project01/core"
	"github.com/P1NHE4D/it3105-project01/domains/gridworld"
	"github.com/P1NHE4D/it3105-project01/util"
	"github.com/spf13/cobra"
)

func GridWorldCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gridworld",
		Short: "Train a policy on the example grid world domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := TrainingConfig()

			acm, err := core.NewACM(config)
			if err != nil {
				return err
			}

			stepsAnalyzer := analysis.NewStepsAnalyzer()
			acm.AddAnalyzer(stepsAnalyzer)

			if config.Verbose {
				reporter := analysis.NewProgressReporter(config.Episodes)
				acm.SetReporter(reporter)
				defer reporter.Stop()
			}

			domain := gridworld.New(gridworld.DefaultConfig())
			if err := acm.Fit(domain); err != nil {
				return err
			}

			dataset := stepsAnalyzer.DataSet().(*analysis.StepsDataSet)
			if err := util.SaveJson(filepath.Join(savePath, "steps.json"), dataset); err != nil {
				return err
			}
			if config.Visualise {
				if err := analysis.PlotSteps(dataset, filepath.Join(savePath, "steps.png")); err != nil {
					return err
				}
			}

			return analysis.ExportTables(savePath, acm)
		},
	}
}
