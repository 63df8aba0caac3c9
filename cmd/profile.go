package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	fileprofile "github.com/bnema/sortcell/internal/adapters/profile/file"
	reportadapter "github.com/bnema/sortcell/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and manage hopper dump profiles",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileImportCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Render a dump profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.settings.ProfileName
			if len(args) == 1 {
				name = args[0]
			}

			profile, err := app.profiles.Load(cmd.Context(), name)
			if err != nil {
				return err
			}
			if err := profile.Validate(); err != nil {
				return err
			}

			rendered, err := reportadapter.RenderProfile(profile)
			if err != nil {
				return fmt.Errorf("render profile: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newProfileImportCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a recorded profile and store it in the profile directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = filepath.Base(args[0])
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open profile: %w", err)
			}
			defer file.Close()

			profile, err := fileprofile.Parse(name, file)
			if err != nil {
				return err
			}
			if err := app.profileFiles.Save(cmd.Context(), name, profile); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d points, %s)\n", name, len(profile.Points), profile.Duration())
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name to store under (defaults to the file name)")

	return cmd
}
