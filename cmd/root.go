package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sortcell",
		Short:         "sortcell: pick-and-sort workcell controller",
		Long:          "sortcell loads containers from a dispensing table onto a line-following carrier, delivers each batch to its destination bin and returns the carrier home.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newHomeCmd(app),
		newProfileCmd(app),
		newLayoutCmd(app),
	)

	return rootCmd
}
