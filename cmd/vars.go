package cmd

import (
	"github.com/P1NHE4D/it3105-project01/core"
	"github.com/spf13/cobra"
)

var (
	defaults *core.Config = core.DefaultConfig()

	savePath     string
	episodes     int
	steps        int
	criticType   string
	criticNNDims []int
	actorLR      float64
	criticLR     float64
	decay        float64
	discount     float64
	epsilon      float64
	epsilonDecay float64
	visualise    bool
	verbose      bool
	seed         uint64
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", "results", "Path to save datasets and learned tables")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", defaults.Episodes, "Number of training episodes")
	cmd.PersistentFlags().IntVar(&steps, "steps", defaults.Steps, "Maximum steps per episode")
	cmd.PersistentFlags().StringVar(&criticType, "critic", defaults.CriticType, "Critic variant (table or nn)")
	cmd.PersistentFlags().IntSliceVar(&criticNNDims, "critic-nn-dims", defaults.CriticNNDims, "Layer dims of the nn critic")
	cmd.PersistentFlags().Float64Var(&actorLR, "actor-lr", defaults.ActorLR, "Actor learning rate")
	cmd.PersistentFlags().Float64Var(&criticLR, "critic-lr", defaults.CriticLR, "Critic learning rate")
	cmd.PersistentFlags().Float64Var(&decay, "decay", defaults.Decay, "Eligibility trace decay factor")
	cmd.PersistentFlags().Float64Var(&discount, "discount", defaults.Discount, "Reward discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", defaults.Epsilon, "Initial exploration probability")
	cmd.PersistentFlags().Float64Var(&epsilonDecay, "epsilon-decay", defaults.EpsilonDecay, "Per-episode epsilon decay")
	cmd.PersistentFlags().BoolVar(&visualise, "visualise", defaults.Visualise, "Render the domain on the first and last episode and plot the learning curve")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", defaults.Verbose, "Print per-episode progress")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", defaults.Seed, "Seed of the run's random source")
}

// TrainingConfig collects the parsed flags into a Config.
func TrainingConfig() *core.Config {
	return &core.Config{
		Episodes:     episodes,
		Steps:        steps,
		CriticType:   criticType,
		CriticNNDims: criticNNDims,
		ActorLR:      actorLR,
		CriticLR:     criticLR,
		Decay:        decay,
		Discount:     discount,
		Epsilon:      epsilon,
		EpsilonDecay: epsilonDecay,
		Visualise:    visualise,
		Verbose:      verbose,
		Seed:         seed,
	}
}
