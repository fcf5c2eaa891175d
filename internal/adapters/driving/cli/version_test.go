package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	prev := version
	defer func() { version = prev }()
	version = "0.4.0"

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "yomu version 0.4.0")
}
