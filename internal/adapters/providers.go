package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/artifacts"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/blockchain"
	internalconfig "github.com/trebuchet-org/adapter-deploy/internal/adapters/config"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/registry"
	"github.com/trebuchet-org/adapter-deploy/internal/config"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	registry.NewFileStoreFromConfig,
	wire.Bind(new(usecase.RegistryStore), new(*registry.FileStore)),

	artifacts.NewLoaderFromConfig,
)

// BlockchainSet provides go-ethereum based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDeployerAdapter,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.DeployerAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	BlockchainSet,
	InteractiveSet,
	ConfigSet,
)
