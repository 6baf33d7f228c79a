package interactive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
)

func TestSelectNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("single network is returned without a prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		name, err := s.SelectNetwork(ctx, []string{"bsc"}, "Network")
		require.NoError(t, err)
		assert.Equal(t, "bsc", name)
	})

	t.Run("no networks", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectNetwork(ctx, nil, "Network")
		assert.ErrorContains(t, err, "no networks configured")
	})

	t.Run("non-interactive refuses to prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectNetwork(ctx, []string{"bsc", "mainnet"}, "Network")
		assert.ErrorContains(t, err, "non-interactive")
	})
}

func TestFuzzySearch(t *testing.T) {
	items := []string{"bsc", "bsc-testnet", "mainnet", "polygon"}
	search := createFuzzySearchFunc(items)

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{"", 2, true},
		{"BSC", 0, true},
		{"bsct", 1, true},
		{"mnt", 2, true},
		{"bsc", 3, false},
		{"xyz", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+items[tt.index], func(t *testing.T) {
			assert.Equal(t, tt.want, search(tt.input, tt.index))
		})
	}
}
