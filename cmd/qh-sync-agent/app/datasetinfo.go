package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qharbor/sync-agent/internal/dataset"
)

var datasetInfoCmd = &cobra.Command{
	Use:   "dataset-info <path>",
	Short: "Generate a dataset info file for a dataset directory",
	Long: `Generate a dataset info file (` + dataset.DatasetInfoFile + `) in the given
dataset directory. The directory is created when it does not exist yet.
Attribute values are parsed as integers or floats when possible and stored
as strings otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runDatasetInfo,
}

func init() {
	datasetInfoCmd.Flags().String("name", "", "Dataset name")
	datasetInfoCmd.Flags().String("creation", "", "Creation time (RFC 3339, e.g. 2026-01-02T15:04:05Z)")
	datasetInfoCmd.Flags().String("description", "", "Dataset description")
	datasetInfoCmd.Flags().StringSlice("attribute", nil, "Dataset attribute as key=value (repeatable)")
	datasetInfoCmd.Flags().StringSlice("keyword", nil, "Dataset keyword (repeatable)")
	datasetInfoCmd.Flags().StringSlice("skip", nil, "File or folder pattern to exclude from sync (repeatable)")
}

func runDatasetInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	info := dataset.Info{}
	info.Name, _ = cmd.Flags().GetString("name")
	info.Description, _ = cmd.Flags().GetString("description")
	info.Keywords, _ = cmd.Flags().GetStringSlice("keyword")
	info.Skip, _ = cmd.Flags().GetStringSlice("skip")

	if creation, _ := cmd.Flags().GetString("creation"); creation != "" {
		t, err := time.Parse(time.RFC3339, creation)
		if err != nil {
			return fmt.Errorf("invalid creation time: %w", err)
		}
		info.Creation = &t
	}

	attrs, _ := cmd.Flags().GetStringSlice("attribute")
	if len(attrs) > 0 {
		info.Attributes = make(map[string]any, len(attrs))
		for _, attr := range attrs {
			key, value, ok := strings.Cut(attr, "=")
			if !ok {
				return fmt.Errorf("invalid attribute %q: expected key=value", attr)
			}
			info.Attributes[key] = parseScalar(value)
		}
	}

	if err := dataset.GenerateInfo(path, info); err != nil {
		return err
	}

	zap.L().Info("Dataset info file written",
		zap.String("path", path),
		zap.String("file", dataset.DatasetInfoFile))
	return nil
}

// parseScalar narrows a flag value to int or float when it parses as one.
func parseScalar(value string) any {
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
