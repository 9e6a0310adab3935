package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qharbor/sync-agent/internal/config"
	"github.com/qharbor/sync-agent/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the sync state of all configured sources",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	if err := statusCmd.MarkFlagRequired("config"); err != nil {
		zap.L().Error("Failed to mark config flag as required", zap.Error(err))
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	statePath := cfg.StatePath
	if statePath == "" {
		statePath = "./state"
	}
	persistence := status.NewFilePersistence(statePath)

	states, err := persistence.LoadAllStates(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load source states: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tTYPE\tSTATUS\tLAST SYNC\tSYNCED\tFAILED")
	for _, src := range cfg.Sources {
		state, ok := states[src.Name]
		if !ok {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\n", src.Name, src.Type)
			continue
		}
		lastSync := "-"
		if !state.LastSync.IsZero() {
			lastSync = state.LastSync.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			src.Name, src.Type, state.Status, lastSync, state.ItemsSynced, state.ItemsFailed)
	}
	return w.Flush()
}
