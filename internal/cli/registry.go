package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/adapter-deploy/internal/cli/render"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// NewRegistryCmd creates the registry command
func NewRegistryCmd() *cobra.Command {
	var (
		chainID uint64
		format  string
	)

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Show the adapters recorded in the registry",
		Example: `  adapter-deploy registry
  adapter-deploy registry --chain-id 56
  adapter-deploy registry --format yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !render.IsRegistryFormat(format) {
				return fmt.Errorf("unknown format %q (expected one of %v)", format, render.RegistryFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowRegistry.Run(cmd.Context(), usecase.ShowRegistryParams{ChainID: chainID})
			if err != nil {
				return err
			}

			renderer := render.NewRegistryRenderer(cmd.OutOrStdout())
			return renderer.RenderRegistry(result, format)
		},
	}

	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "Only show adapters for this chain ID")
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatTable, "Output format (table, json, yaml)")

	return cmd
}
