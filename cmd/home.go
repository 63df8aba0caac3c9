package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bnema/sortcell/internal/adapters/workcell/sim"
	"github.com/spf13/cobra"
)

var simHomePosition = sim.DefaultConfig().TrackLength

func newHomeCmd(app *app) *cobra.Command {
	var (
		useSim bool
		from   float64
	)

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Return the carrier to its home position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !useSim {
				return errNoHardwareDriver
			}

			logger, err := app.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cell, err := app.newSimWorkcell(ctx, logger, workcellOptions{Start: from})
			if err != nil {
				return err
			}

			ticks, err := runHoming(ctx, cmd.OutOrStdout(), from, cell)
			if err != nil {
				return fmt.Errorf("return home: %w", err)
			}

			state := cell.cell.Snapshot()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "carrier at home (position %.3f, %d line ticks, %s elapsed)\n",
				state.Position, ticks, cell.cell.Clock().Elapsed())
			return err
		},
	}

	cmd.Flags().BoolVar(&useSim, "sim", true, "drive the in-process simulated workcell")
	cmd.Flags().Float64Var(&from, "from", 3.0, "track position the simulated carrier starts from")

	return cmd
}
