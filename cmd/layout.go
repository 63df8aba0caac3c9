package cmd

import (
	"fmt"

	reportadapter "github.com/bnema/sortcell/internal/adapters/render/report"
	"github.com/bnema/sortcell/internal/domain"
	"github.com/spf13/cobra"
)

func newLayoutCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect the workcell calibration",
	}

	cmd.AddCommand(newLayoutShowCmd(app), newLayoutInitCmd(app))

	return cmd
}

func newLayoutShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render the calibration in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := app.layouts.Load(cmd.Context())
			if err != nil {
				return err
			}

			source := ""
			if app.layouts.Exists() {
				source = app.layouts.Path()
			}

			rendered, err := reportadapter.RenderLayout(layout, source)
			if err != nil {
				return fmt.Errorf("render layout: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newLayoutInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default calibration to the layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.layouts.Exists() && !force {
				return fmt.Errorf("layout file %s already exists (use --force to overwrite)", app.layouts.Path())
			}

			if err := app.layouts.Save(cmd.Context(), domain.DefaultLayout()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", app.layouts.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing layout file")

	return cmd
}
