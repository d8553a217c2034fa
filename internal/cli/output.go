package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validateOutputFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use table, json or yaml)", format)
	}
}

// printer renders a value as a table, JSON or YAML
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), format: outputFormat}
}

// print writes v in the selected format; table draws the human view of v
func (p *printer) print(v any, table func(w io.Writer)) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return writeYAML(p.out, v)
	default:
		tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

// writeYAML goes through JSON so that field names and value formats match the API
func writeYAML(out io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("failed to convert output: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles the JSON source carries
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
