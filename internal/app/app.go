package app

import (
	"log/slog"

	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	NetworkSelector usecase.NetworkSelector
	NetworkResolver usecase.NetworkResolver
	Registry        usecase.RegistryStore

	// Use cases
	DeployAdapter *usecase.DeployAdapter
	ListNetworks  *usecase.ListNetworks
	ShowRegistry  *usecase.ShowRegistry
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.NetworkSelector,
	resolver usecase.NetworkResolver,
	registry usecase.RegistryStore,
	deployAdapter *usecase.DeployAdapter,
	listNetworks *usecase.ListNetworks,
	showRegistry *usecase.ShowRegistry,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		NetworkSelector: selector,
		NetworkResolver: resolver,
		Registry:        registry,
		DeployAdapter:   deployAdapter,
		ListNetworks:    listNetworks,
		ShowRegistry:    showRegistry,
	}, nil
}
