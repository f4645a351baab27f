package cli

import (
	"fmt"

	"github.com/mesh-intelligence/records/pkg/types"
	"github.com/spf13/cobra"
)

// itemInfo describes one item for "records items --json".
type itemInfo struct {
	Item  string `json:"item"`
	Index int    `json:"index"`
}

func newItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the record items and their indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.jsonMode {
				infos := make([]itemInfo, 0, types.ItemCount)
				for _, it := range types.Items() {
					infos = append(infos, itemInfo{Item: it.String(), Index: it.Index()})
				}
				if err := writeJSON(out, infos); err != nil {
					return sysError(err)
				}
				return nil
			}
			for _, it := range types.Items() {
				fmt.Fprintf(out, "%d\t%s\n", it.Index(), it)
			}
			return nil
		},
	}
}
