package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "acm",
		Short:        "Tabular actor-critic trainer with eligibility traces",
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(
		GridWorldCommand(),
	)

	return cmd
}
