package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/keylint-dev/keylint/internal/collector"
	"github.com/keylint-dev/keylint/internal/config"
	"github.com/keylint-dev/keylint/internal/fileutil"
	"github.com/keylint-dev/keylint/internal/languages"
	"github.com/keylint-dev/keylint/internal/lister"
)

const configFileName = config.FileName

// RunKeys collects and prints the used translation keys.
func RunKeys(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	resolver, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}

	registry := languages.NewDefaultRegistry()

	extensions, err := cmd.Flags().GetStringSlice("ext")
	if err != nil {
		return fmt.Errorf("failed to read --ext flag: %w", err)
	}
	if len(extensions) == 0 {
		extensions = registry.SupportedExtensions()
		sort.Strings(extensions)
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	logger.Debug("collecting keys", "patterns", patterns, "extensions", extensions)

	c := collector.New(lister.New(root, resolver.IgnoreRules()), resolver, registry)
	keys := fileutil.SortedUnique(c.CollectKeysFromFiles(patterns, extensions))
	logger.Debug("collection finished", "keys", len(keys))

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to read --json flag: %w", err)
	}
	if asJSON {
		return fileutil.PrintJSON(cmd.OutOrStdout(), keys)
	}
	for _, key := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}

// loadConfig loads an explicit --config path, or discovers the default
// file under root. Only the explicit path surfaces load errors.
func loadConfig(cmd *cobra.Command, root string) (*config.Resolver, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read --config flag: %w", err)
	}
	if path == "" {
		return config.Discover(root), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return config.NewResolver(cfg, root), nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: false,
	})
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
