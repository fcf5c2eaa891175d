package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Structure(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
	assert.Equal(t, "serve", mcpServeCmd.Use)

	var found bool
	for _, cmd := range mcpCmd.Commands() {
		if cmd == mcpServeCmd {
			found = true
		}
	}
	assert.True(t, found, "serve should be registered under mcp")
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_Long(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "lookup_substrings")
	assert.Contains(t, mcpServeCmd.Long, "yomu://dictionaries")
}

func TestMCPServeCmd_NoService(t *testing.T) {
	prev := lookupService
	lookupService = nil
	defer func() { lookupService = prev }()

	_, err := execute(t, "mcp", "serve")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lookup service not configured")
}
