package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/bnema/sortcell/internal/application"
	"github.com/spf13/cobra"
)

type runOutput struct {
	Summary application.RunSummary    `json:"summary"`
	Batches []application.BatchReport `json:"batches"`
}

func newRunCmd(app *app) *cobra.Command {
	var (
		useSim bool
		cycles int
		seed   uint64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the load, deliver and return cycle",
		Long:  "run homes the carrier, then loads batches from the dispensing table and delivers each one to its bin. With --cycles 0 it runs until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !useSim {
				return errNoHardwareDriver
			}
			if cycles < 0 {
				return fmt.Errorf("--cycles must not be negative, got %d", cycles)
			}

			logger, err := app.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			runID := app.newRunID()
			runLogger := logger.With("run_id", runID)

			cell, err := app.newSimWorkcell(ctx, runLogger, workcellOptions{Start: simHomePosition, Seed: seed})
			if err != nil {
				return err
			}

			var (
				batches []application.BatchReport
				summary application.RunSummary
			)
			onBatch := func(report application.BatchReport) {
				batches = append(batches, report)
				if asJSON {
					return
				}
				if rendered, err := app.batchRenderer(report, cell.layout.Limits); err == nil {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				} else {
					runLogger.Warn("render batch report failed", "cycle", report.Cycle, "error", err)
				}
			}

			err = application.RunSupervised(ctx, cell.keepAlive, func(ctx context.Context) error {
				var runErr error
				summary, runErr = cell.cycle.Run(ctx, application.RunOptions{RunID: runID, Cycles: cycles, OnBatch: onBatch})
				return runErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				if batches == nil {
					batches = []application.BatchReport{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runOutput{Summary: summary, Batches: batches})
			}

			rendered, err := app.runRenderer(summary, nil, cell.layout.Limits)
			if err != nil {
				return fmt.Errorf("render run summary: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&useSim, "sim", true, "drive the in-process simulated workcell")
	cmd.Flags().IntVar(&cycles, "cycles", 3, "number of deliveries before stopping (0 runs until interrupted)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the container stream for a reproducible run (0 picks at random)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the run summary and batch reports as JSON")

	return cmd
}
