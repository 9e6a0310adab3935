package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/qharbor/sync-agent/internal/backends"
	"github.com/qharbor/sync-agent/internal/backends/registry"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the supported sync source backends",
	RunE: func(_ *cobra.Command, _ []string) error {
		syncs, _ := registry.Mapping()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tAGENT\tSINGLE SCOPE\tLIVE SYNC")
		for _, t := range backends.Types() {
			source := syncs[t]()
			fmt.Fprintf(w, "%s\t%s\t%t\t%t\n",
				t, source.AgentName(), source.SingleScope(), source.LiveSync())
		}
		return w.Flush()
	},
}
