package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/adapter-deploy/internal/app"
	"github.com/trebuchet-org/adapter-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"network":         "network",
	"registry":        "registry",
	"timeout":         "timeout",
	"chain-id":        "chain_id",
	"dry-run":         "dry_run",
	"yes":             "yes",
	"artifact":        "artifact",
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adapter-deploy",
		Short: "Deploy exchange adapters and record them in the adapter registry",
		Long: `adapter-deploy deploys the Pancakeswap V2 exchange adapter to an EVM network
and appends its address to exchange_adapters.json under the network's chain ID.

When the registry file does not exist nothing is deployed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			bindFlags(v, cmd)

			// Without a terminal there is nobody to answer prompts
			interactive := isInteractive(v)
			if !interactive {
				v.Set("non_interactive", true)
			}
			sink := progress.New(interactive)

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., bsc, bsc-testnet)")
	rootCmd.PersistentFlags().String("registry", "", "Registry file (default: exchange_adapters.json)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Maximum time to wait for the deployment to be mined (0 waits forever)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	registryCmd := NewRegistryCmd()
	registryCmd.GroupID = "main"
	rootCmd.AddCommand(registryCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindFlags copies every changed flag into viper, so flags override env and config file
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return
		}
		v.Set(key, f.Value.String())
	})
}

// isInteractive reports whether prompts and spinners may be used
func isInteractive(v *viper.Viper) bool {
	if v.GetBool("non_interactive") {
		return false
	}
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
