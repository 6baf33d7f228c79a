package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders the list of networks with their adapter counts
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in foundry.toml [rpc_endpoints]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		if network.Error != nil {
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", network.Name, network.Error)
			continue
		}
		fmt.Fprintf(r.out, "  ✅ %s - Chain ID: %d", network.Name, network.ChainID)
		if network.Deployed > 0 {
			fmt.Fprintf(r.out, " - %s", plural(network.Deployed, "adapter"))
		}
		fmt.Fprintln(r.out)
	}

	return nil
}
