package usecase

import (
	"context"

	"github.com/trebuchet-org/adapter-deploy/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Currently no parameters, but we keep the struct for future extensibility
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	ChainID uint64
	// Deployed is the number of adapters recorded for this chain
	Deployed int
	Error    error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	store    RegistryStore
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, store RegistryStore) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		store:    store,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	// Deployment counts are informational; a missing or broken registry just leaves them at zero
	var counts *domain.Registry
	if exists, err := uc.store.Exists(ctx); err == nil && exists {
		if registry, err := uc.store.Load(ctx); err == nil {
			counts = registry
		}
	}

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = info.ChainID
			status.Deployed = len(counts.Addresses(info.ChainID))
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
