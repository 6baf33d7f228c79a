package usecase

import (
	"context"

	"github.com/trebuchet-org/adapter-deploy/internal/domain"
)

// RegistryStore handles persistence of the adapter registry file
type RegistryStore interface {
	Path() string
	Exists(ctx context.Context) (bool, error)
	Load(ctx context.Context) (*domain.Registry, error)
	Save(ctx context.Context, registry *domain.Registry) error
}

// ContractDeployer deploys a contract and blocks until its address is final
type ContractDeployer interface {
	Deploy(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (*domain.DeployResult, error)
	// Predict returns the address the next deployment would get, without broadcasting
	Predict(ctx context.Context, network domain.NetworkContext, adapter domain.AdapterSpec) (*domain.DeployResult, error)
}

// NetworkResolver resolves network names from foundry.toml
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, name string) (*domain.Network, error)
}

// NetworkSelector picks a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []string, prompt string) (string, error)
}

// Progress tracking interfaces

// ExecutionStage is a step of the deployment run
type ExecutionStage string

const (
	StageChecking  ExecutionStage = "checking"
	StageDeploying ExecutionStage = "deploying"
	StageRecording ExecutionStage = "recording"
	StageSkipped   ExecutionStage = "skipped"
	StageCompleted ExecutionStage = "completed"
	StageFailed    ExecutionStage = "failed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
