package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qharbor/sync-agent/internal/snapshot"
)

var extractCmd = &cobra.Command{
	Use:   "extract <snapshot.json>",
	Short: "Extract normalized labels and attributes from a station snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		// #nosec G304 -- the snapshot path is given by the operator
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read snapshot file: %w", err)
		}

		var snap map[string]any
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to parse snapshot file: %w", err)
		}

		labels, attrs, err := snapshot.Extract(snap)
		if err != nil {
			return err
		}

		output, err := json.MarshalIndent(map[string]any{
			"labels":     labels,
			"attributes": attrs,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format metadata: %w", err)
		}
		fmt.Println(string(output))
		return nil
	},
}
