// Package app provides the commands of the QH sync agent.
package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/qharbor/sync-agent/internal/versions"
)

var rootCmd = &cobra.Command{
	Use:               "qh-sync-agent",
	DisableAutoGenTag: true,
	Short:             "QH experiment-data synchronization agent",
	Long: `QH sync agent keeps laboratory measurement data in sync with a data server.
It watches configured data sources (Quantify, QCoDeS, core-tools, or plain
file trees) and maintains the per-dataset metadata files that describe what
was synchronized.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			zap.L().Error("Error displaying help", zap.Error(err))
		}
	},
}

// NewRootCmd creates a new root command for the sync agent.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	if err != nil {
		zap.L().Error("Error binding debug flag", zap.Error(err))
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(datasetInfoCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(statusCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := versions.GetVersionInfo()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			zap.L().Error("Error retrieving format flag", zap.Error(err))
			return
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				zap.L().Error("Error formatting version info as JSON", zap.Error(err))
				return
			}
			fmt.Println(string(output))
		} else {
			zap.L().Info("qh-sync-agent version",
				zap.String("version", info.Version),
				zap.String("commit", info.Commit),
				zap.String("built", info.BuildDate),
				zap.String("go", info.GoVersion),
				zap.String("platform", info.Platform))
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "", "Output format (json)")
}
