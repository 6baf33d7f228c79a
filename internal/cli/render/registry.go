package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Registry output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// RegistryFormats lists the supported registry output formats
var RegistryFormats = []string{FormatTable, FormatJSON, FormatYAML}

// IsRegistryFormat reports whether format is supported
func IsRegistryFormat(format string) bool {
	return slices.Contains(RegistryFormats, format)
}

// RegistryRenderer renders the adapter registry
type RegistryRenderer struct {
	out io.Writer
}

// NewRegistryRenderer creates a new registry renderer
func NewRegistryRenderer(out io.Writer) *RegistryRenderer {
	return &RegistryRenderer{out: out}
}

// RenderRegistry renders the registry in the given format
func (r *RegistryRenderer) RenderRegistry(result *usecase.ShowRegistryResult, format string) error {
	switch format {
	case FormatJSON:
		return r.renderJSON(result)
	case FormatYAML:
		return r.renderYAML(result)
	case FormatTable, "":
		return r.renderTable(result)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderJSON prints the registry exactly as it is stored on disk
func (r *RegistryRenderer) renderJSON(result *usecase.ShowRegistryResult) error {
	data, err := result.Registry.Encode()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

// renderYAML keeps the registry key order by building the node tree by hand
func (r *RegistryRenderer) renderYAML(result *usecase.ShowRegistryResult) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range result.Entries {
		addresses := &yaml.Node{Kind: yaml.SequenceNode}
		for _, addr := range entry.Addresses {
			addresses.Content = append(addresses.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: addr,
				Style: yaml.DoubleQuotedStyle,
			})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key, Style: yaml.DoubleQuotedStyle},
			addresses,
		)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func (r *RegistryRenderer) renderTable(result *usecase.ShowRegistryResult) error {
	if !result.Exists {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("No registry file at %s", result.Path)))
		return nil
	}
	if result.Total == 0 {
		fmt.Fprintf(r.out, "No adapters recorded in %s\n", result.Path)
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignLeft},
	})
	t.AppendHeader(table.Row{"Chain", "#", "Address"})

	for _, entry := range result.Entries {
		for i, addr := range entry.Addresses {
			chain := ""
			if i == 0 {
				chain = chainColor.Sprint(entry.Key)
			}
			t.AppendRow(table.Row{chain, i + 1, addressColor.Sprint(addr)})
		}
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s across %s in %s\n",
		plural(result.Total, "adapter"), plural(len(result.Entries), "chain"), result.Path)
	return nil
}
