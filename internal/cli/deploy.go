package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/adapter-deploy/internal/app"
	"github.com/trebuchet-org/adapter-deploy/internal/cli/render"
	"github.com/trebuchet-org/adapter-deploy/internal/domain"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the Pancakeswap V2 adapter and record its address",
		Long: `Deploy the PancakeswapAdapter contract with its fixed constructor arguments
("Pancakeswap V2", router 0x02a84c1b3BBD7401a5f7fa98a384EBC70bB5749E, fee 25,
swap gas estimate 215000) and append the address to the registry file under the
network's chain ID.

If the registry file does not exist the command exits without doing anything.
The contract artifact is read from Foundry's out directory, so run 'forge build' first.`,
		Example: `  adapter-deploy deploy --network bsc
  adapter-deploy deploy -n bsc-testnet --dry-run
  ADAPTER_DEPLOY_PRIVATE_KEY=0x... adapter-deploy deploy -n bsc --yes --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// No registry, no deployment: check before asking for a network
			exists, err := app.Registry.Exists(ctx)
			if err != nil {
				return err
			}
			if !exists {
				app.Log.Debug("registry file not found, nothing to deploy", "path", app.Registry.Path())
				return nil
			}

			network, err := resolveNetwork(ctx, app)
			if err != nil {
				return err
			}

			params := usecase.DeployAdapterParams{
				Network: network,
				Adapter: domain.PancakeswapV2Adapter(),
				DryRun:  app.Config.DryRun,
			}
			if !app.Config.Yes && !app.Config.NonInteractive {
				params.Confirm = confirmDeployment
			}

			result, err := app.DeployAdapter.Run(ctx, params)
			if err != nil {
				return err
			}
			if result.Skipped {
				return nil
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			return renderer.RenderDeployResult(result)
		},
	}

	cmd.Flags().Bool("dry-run", false, "Predict the adapter address without sending a transaction or writing the registry")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().Uint64("chain-id", 0, "Expected chain ID (must match the RPC endpoint)")
	cmd.Flags().String("artifact", "", "Path to the contract artifact JSON (default: found in the Foundry out directory)")

	return cmd
}

// resolveNetwork resolves the --network name, prompting for one when none was given.
// The RPC is only contacted here, once the registry is known to exist.
func resolveNetwork(ctx context.Context, app *app.App) (domain.NetworkContext, error) {
	name := app.Config.NetworkName
	if name == "" {
		var err error
		name, err = app.NetworkSelector.SelectNetwork(ctx, app.NetworkResolver.GetNetworks(ctx), "Select network")
		if err != nil {
			return domain.NetworkContext{}, err
		}
	}

	network, err := app.NetworkResolver.ResolveNetwork(ctx, name)
	if err != nil {
		return domain.NetworkContext{}, fmt.Errorf("failed to resolve network %s: %w", name, err)
	}

	networkCtx := network.Context()
	if app.Config.ChainID != 0 {
		networkCtx.ChainID = app.Config.ChainID
	}
	return networkCtx, nil
}

func confirmDeployment(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Deploy %s to %s (chain %d)", adapter.Label, network.Name, network.ChainID),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
