package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/adapter-deploy/internal/domain"
)

// ShowRegistryParams contains parameters for showing the registry
type ShowRegistryParams struct {
	// ChainID limits the result to one chain, 0 for all
	ChainID uint64
}

// RegistryEntry is the list of adapters recorded for one registry key
type RegistryEntry struct {
	Key       string
	ChainID   uint64 // 0 for non-numeric keys
	Addresses []string
}

// ShowRegistryResult contains the registry contents
type ShowRegistryResult struct {
	Path     string
	Exists   bool
	Registry *domain.Registry
	Entries  []RegistryEntry
	Total    int
}

// ShowRegistry is a use case for reading the adapter registry
type ShowRegistry struct {
	store RegistryStore
}

// NewShowRegistry creates a new ShowRegistry use case
func NewShowRegistry(store RegistryStore) *ShowRegistry {
	return &ShowRegistry{store: store}
}

// Run executes the use case
func (uc *ShowRegistry) Run(ctx context.Context, params ShowRegistryParams) (*ShowRegistryResult, error) {
	result := &ShowRegistryResult{
		Path:     uc.store.Path(),
		Registry: domain.NewRegistry(),
	}

	exists, err := uc.store.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check registry: %w", err)
	}
	if !exists {
		return result, nil
	}
	result.Exists = true

	registry, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	if params.ChainID != 0 {
		registry = registry.Filter(params.ChainID)
	}
	result.Registry = registry

	chainIDs := make(map[string]uint64)
	for _, id := range registry.ChainIDs() {
		chainIDs[domain.ChainKey(id)] = id
	}
	for _, key := range registry.Keys() {
		result.Entries = append(result.Entries, RegistryEntry{
			Key:       key,
			ChainID:   chainIDs[key],
			Addresses: registry.List(key),
		})
	}
	result.Total = registry.Total()

	return result, nil
}
