// Package main is the entry point for the QH sync agent.
package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/qharbor/sync-agent/cmd/qh-sync-agent/app"
	"github.com/qharbor/sync-agent/internal/config"
	"github.com/qharbor/sync-agent/internal/logging"
)

// debugEnabled reads the QH_SYNC_DEBUG environment variable.
func debugEnabled() bool {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v.GetBool("DEBUG")
}

func main() {
	if err := logging.Initialize(debugEnabled()); err != nil {
		os.Exit(1)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
