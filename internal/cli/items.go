package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockpile/internal/catalog"
)

// catalogView is the JSON form of the item catalog.
type catalogView struct {
	DefaultMaxStack uint            `json:"default_max_stack"`
	Strict          bool            `json:"strict"`
	Items           []catalog.Entry `json:"items"`
}

func newItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the item catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entries := a.catalog.Entries()

			if a.flags.jsonMode {
				data, err := json.MarshalIndent(catalogView{
					DefaultMaxStack: a.catalog.DefaultMax(),
					Strict:          a.catalog.Strict(),
					Items:           entries,
				}, "", "  ")
				if err != nil {
					return sysError(fmt.Errorf("marshal catalog: %w", err))
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMAX STACK")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%d\n", e.Name, e.MaxStack)
			}
			if !a.catalog.Strict() {
				fmt.Fprintf(tw, "*\t%d\n", a.catalog.DefaultMax())
			}
			return tw.Flush()
		},
	}
}
