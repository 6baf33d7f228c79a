package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// DeployRenderer renders the outcome of a deployment run
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderDeployResult renders a deployment, a dry run or a cancelled run
func (r *DeployRenderer) RenderDeployResult(result *usecase.DeployAdapterResult) error {
	switch {
	case result.Skipped:
		return nil
	case result.Cancelled:
		fmt.Fprintln(r.out, FormatWarning("Deployment cancelled"))
		return nil
	}

	d := result.Deployment
	if result.DryRun {
		fmt.Fprintln(r.out, color.New(color.FgYellow, color.Bold).Sprintf("🔍 Dry run: %s was not deployed", result.Adapter.Contract))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s (%s)", result.Adapter.Contract, result.Adapter.Label)))
	}
	fmt.Fprintln(r.out)

	network := fmt.Sprintf("chain %d", result.Network.ChainID)
	if result.Network.Name != "" {
		network = fmt.Sprintf("%s (chain %d)", result.Network.Name, result.Network.ChainID)
	}
	r.field("Network", chainColor.Sprint(network))

	if result.DryRun {
		r.field("Address", addressColor.Sprint(d.Address)+labelColor.Sprint(" (predicted)"))
	} else {
		r.field("Address", addressColor.Sprint(d.Address))
		r.field("Transaction", d.TxHash)
		if d.BlockNumber != nil {
			r.field("Block", d.BlockNumber.String())
		}
		r.field("Gas used", fmt.Sprintf("%d", d.GasUsed))
	}
	if d.Deployer != "" {
		r.field("Deployer", d.Deployer)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Constructor arguments:")
	for _, arg := range result.Adapter.Args {
		r.field(arg.Name, arg.Value)
	}

	fmt.Fprintln(r.out)
	count := len(result.Registry.Addresses(result.Network.ChainID))
	if result.DryRun {
		fmt.Fprintf(r.out, "Registry %s not written (would hold %s for chain %d)\n",
			result.RegistryPath, plural(count, "adapter"), result.Network.ChainID)
	} else {
		fmt.Fprintf(r.out, "Registry %s updated (%s for chain %d)\n",
			result.RegistryPath, plural(count, "adapter"), result.Network.ChainID)
	}
	return nil
}

func (r *DeployRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelColor.Sprintf("%-16s", label+":"), value)
}
