// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/briefmergeproj/briefmerge-mcp/internal/config"
)

type rootOptions struct {
	configPath string
	threshold  float64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "briefmerge",
		Short: "Resolve bidder document lists from tender brief notes",
		Long: "briefmerge extracts the ordered document list for a bidder from brief-note text,\n" +
			"fuzzy-matches each name against uploaded file identifiers, and builds the\n" +
			"table-of-contents layout for the merged deliverable.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default: $BRIEFMERGE_CONFIG)")
	cmd.PersistentFlags().Float64Var(&opts.threshold, "threshold", 0, "match confidence threshold in (0,1] (overrides config)")

	cmd.AddCommand(newServeCmd(), newResolveCmd(opts), newBiddersCmd())
	return cmd
}

// loadConfig resolves settings in precedence order: flags, environment,
// config file, defaults. A .env file in the working directory is honored.
func (o *rootOptions) loadConfig() (config.Config, error) {
	_ = godotenv.Load()

	path := o.configPath
	if path == "" {
		path = os.Getenv("BRIEFMERGE_CONFIG")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if env := os.Getenv("BRIEFMERGE_THRESHOLD"); env != "" && o.threshold == 0 {
		v, err := strconv.ParseFloat(env, 64)
		if err != nil {
			return config.Config{}, fmt.Errorf("BRIEFMERGE_THRESHOLD %q: %w", env, err)
		}
		cfg.Threshold = v
	}
	if o.threshold != 0 {
		cfg.Threshold = o.threshold
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
