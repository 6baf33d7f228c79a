//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters"
	"github.com/trebuchet-org/adapter-deploy/internal/config"
	"github.com/trebuchet-org/adapter-deploy/internal/logging"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployAdapter,
		usecase.NewListNetworks,
		usecase.NewShowRegistry,

		// App
		NewApp,
	)
	return nil, nil
}
