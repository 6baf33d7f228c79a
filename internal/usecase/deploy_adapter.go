package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/adapter-deploy/internal/domain"
)

// DeployAdapterParams contains parameters for deploying an exchange adapter
type DeployAdapterParams struct {
	Network domain.NetworkContext
	Adapter domain.AdapterSpec
	DryRun  bool
	// Confirm, when set, is asked before broadcasting. Returning false cancels the run.
	Confirm func(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (bool, error)
}

// DeployAdapterResult contains the result of a deployment run
type DeployAdapterResult struct {
	// Skipped is set when the registry file does not exist; nothing was deployed or written
	Skipped bool
	// Cancelled is set when the confirmation was declined
	Cancelled    bool
	RegistryPath string
	Network      domain.NetworkContext
	Adapter      domain.AdapterSpec
	Deployment   *domain.DeployResult
	// Registry is the registry as written (or as it would be written on a dry run)
	Registry *domain.Registry
	DryRun   bool
}

// DeployAdapter deploys an adapter contract and records its address in the registry
type DeployAdapter struct {
	store    RegistryStore
	deployer ContractDeployer
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployAdapter creates a new DeployAdapter use case
func NewDeployAdapter(
	store RegistryStore,
	deployer ContractDeployer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployAdapter {
	return &DeployAdapter{
		store:    store,
		deployer: deployer,
		progress: progress,
		log:      log.With("component", "DeployAdapter"),
	}
}

// Run executes the use case
func (uc *DeployAdapter) Run(ctx context.Context, params DeployAdapterParams) (*DeployAdapterResult, error) {
	result := &DeployAdapterResult{
		RegistryPath: uc.store.Path(),
		Network:      params.Network,
		Adapter:      params.Adapter,
		DryRun:       params.DryRun,
	}

	uc.stage(ctx, StageChecking, "Checking registry "+result.RegistryPath, false)
	exists, err := uc.store.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check registry: %w", err)
	}
	if !exists {
		uc.log.Debug("registry file missing, nothing to do", "path", result.RegistryPath)
		uc.stage(ctx, StageSkipped, "Registry file not found", false)
		result.Skipped = true
		return result, nil
	}

	if params.Confirm != nil && !params.DryRun {
		ok, err := params.Confirm(ctx, params.Network, params.Adapter)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			uc.stage(ctx, StageSkipped, "Deployment cancelled", false)
			result.Cancelled = true
			return result, nil
		}
	}

	uc.stage(ctx, StageDeploying, fmt.Sprintf("Deploying %s on chain %d", params.Adapter.Label, params.Network.ChainID), true)
	var deployment *domain.DeployResult
	if params.DryRun {
		deployment, err = uc.deployer.Predict(ctx, params.Network, params.Adapter)
	} else {
		deployment, err = uc.deployer.Deploy(ctx, params.Network, params.Adapter)
	}
	if err != nil {
		uc.stage(ctx, StageFailed, "Deployment failed", false)
		return nil, fmt.Errorf("failed to deploy %s: %w", params.Adapter.Contract, err)
	}
	result.Deployment = deployment
	uc.log.Info("adapter deployed",
		"contract", params.Adapter.Contract,
		"address", deployment.Address,
		"chainId", params.Network.ChainID,
		"tx", deployment.TxHash,
		"dryRun", params.DryRun,
	)

	// Read the file again rather than reusing anything from the existence check
	uc.stage(ctx, StageRecording, "Recording address in "+result.RegistryPath, false)
	registry, err := uc.store.Load(ctx)
	if err != nil {
		uc.stage(ctx, StageFailed, "Could not read registry", false)
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	if err := registry.Append(params.Network.ChainID, deployment.Address); err != nil {
		uc.stage(ctx, StageFailed, "Could not record address", false)
		return nil, fmt.Errorf("failed to record %s: %w", deployment.Address, err)
	}
	result.Registry = registry

	if !params.DryRun {
		if err := uc.store.Save(ctx, registry); err != nil {
			uc.stage(ctx, StageFailed, "Could not write registry", false)
			return nil, fmt.Errorf("failed to save registry: %w", err)
		}
	}

	uc.stage(ctx, StageCompleted, "Done", false)
	return result, nil
}

func (uc *DeployAdapter) stage(ctx context.Context, stage ExecutionStage, message string, spinner bool) {
	uc.log.Debug("stage", "stage", stage, "message", message)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   string(stage),
		Message: message,
		Spinner: spinner,
	})
}
