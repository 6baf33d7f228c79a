package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/adapter-deploy/internal/adapters/registry"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

func TestShowRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("missing registry", func(t *testing.T) {
		uc := usecase.NewShowRegistry(registry.NewFileStore(setupRegistry(t, "")))

		result, err := uc.Run(ctx, usecase.ShowRegistryParams{})
		require.NoError(t, err)
		assert.False(t, result.Exists)
		assert.Empty(t, result.Entries)
	})

	t.Run("all chains in key order", func(t *testing.T) {
		path := setupRegistry(t, `{"56": ["0xC"], "1": ["0xA", "0xB"], "local": []}`)
		uc := usecase.NewShowRegistry(registry.NewFileStore(path))

		result, err := uc.Run(ctx, usecase.ShowRegistryParams{})
		require.NoError(t, err)
		assert.True(t, result.Exists)
		assert.Equal(t, 3, result.Total)
		require.Len(t, result.Entries, 3)
		assert.Equal(t, usecase.RegistryEntry{Key: "1", ChainID: 1, Addresses: []string{"0xA", "0xB"}}, result.Entries[0])
		assert.Equal(t, usecase.RegistryEntry{Key: "56", ChainID: 56, Addresses: []string{"0xC"}}, result.Entries[1])
		assert.Equal(t, "local", result.Entries[2].Key)
		assert.Zero(t, result.Entries[2].ChainID)
	})

	t.Run("filtered by chain", func(t *testing.T) {
		path := setupRegistry(t, `{"56": ["0xC"], "1": ["0xA"]}`)
		uc := usecase.NewShowRegistry(registry.NewFileStore(path))

		result, err := uc.Run(ctx, usecase.ShowRegistryParams{ChainID: 56})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, []string{"0xC"}, result.Entries[0].Addresses)
		assert.Equal(t, 1, result.Total)
	})
}
