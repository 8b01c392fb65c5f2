package cli

import "github.com/spf13/cobra"

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume-analyzer",
		Short: "Resume analysis and skill assessment backend",
	}

	cmd.AddCommand(NewServeCmd())
	return cmd
}
