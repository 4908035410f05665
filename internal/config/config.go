// SPDX-License-Identifier: Apache-2.0

// Package config holds the tunable resolution settings. Brief-note wording
// conventions vary by organisation, so the threshold, punctuation set, and
// heading keywords are file-configurable rather than baked in.
package config

import (
	"bytes"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"

	"github.com/briefmergeproj/briefmerge-mcp/internal/briefnote"
	"github.com/briefmergeproj/briefmerge-mcp/internal/match"
	"github.com/briefmergeproj/briefmerge-mcp/internal/textnorm"
)

// Config is the complete tunable surface of the resolver.
type Config struct {
	// Threshold is the minimum confidence for a name match, in [0,1].
	Threshold float64 `json:"threshold" yaml:"threshold"`
	// Punctuation is the character set stripped during normalization.
	Punctuation string `json:"punctuation" yaml:"punctuation"`
	// HeadingKeywords mark bidder section headings ("bidder" matches
	// lines like "BIDDER: Acme").
	HeadingKeywords []string `json:"headingKeywords" yaml:"headingKeywords"`
}

// schema constrains a decoded Config. Validation happens through CUE so the
// constraints stay declarative and in one place.
const schema = `
threshold:       number & >=0 & <=1
punctuation:     string
headingKeywords: [...string & !=""] & [_, ...]
`

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Threshold:       match.DefaultThreshold,
		Punctuation:     textnorm.DefaultPunctuation,
		HeadingKeywords: briefnote.DefaultHeadingKeywords,
	}
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate unifies the config with the CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	sv := ctx.CompileString(schema)
	if err := sv.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	unified := sv.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
