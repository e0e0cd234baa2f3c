package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMCPFlags(t *testing.T) {
	fs, configPath := SetupMCPFlags()
	require.NoError(t, fs.Parse([]string{"--config", "restshape.yaml"}))
	assert.Equal(t, "restshape.yaml", *configPath)
}

func TestHandleMCP_Help(t *testing.T) {
	assert.NoError(t, HandleMCP([]string{"--help"}))
}

func TestHandleMCP_BadConfig(t *testing.T) {
	err := HandleMCP([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
