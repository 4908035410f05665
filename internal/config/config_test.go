// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefmergeproj/briefmerge-mcp/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "briefmerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.5, cfg.Threshold)
	assert.NotEmpty(t, cfg.Punctuation)
	assert.Contains(t, cfg.HeadingKeywords, "bidder")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg config.Config)
	}{
		{
			name: "overrides merge over defaults",
			yaml: "threshold: 0.7\nheadingKeywords: [contractor]\n",
			validate: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 0.7, cfg.Threshold)
				assert.Equal(t, []string{"contractor"}, cfg.HeadingKeywords)
				assert.Equal(t, config.Default().Punctuation, cfg.Punctuation)
			},
		},
		{
			name: "empty file keeps defaults",
			yaml: "",
			validate: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, config.Default(), cfg)
			},
		},
		{
			name:        "threshold above one rejected",
			yaml:        "threshold: 1.2\n",
			wantErr:     true,
			errContains: "invalid configuration",
		},
		{
			name:        "negative threshold rejected",
			yaml:        "threshold: -0.1\n",
			wantErr:     true,
			errContains: "invalid configuration",
		},
		{
			name:        "empty heading keyword rejected",
			yaml:        `headingKeywords: ["bidder", ""]`,
			wantErr:     true,
			errContains: "invalid configuration",
		},
		{
			name:        "empty keyword list rejected",
			yaml:        "headingKeywords: []\n",
			wantErr:     true,
			errContains: "invalid configuration",
		},
		{
			name:    "malformed yaml",
			yaml:    "threshold: [not a number\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
