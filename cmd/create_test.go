package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCreateCmd verifies the create command and its flags.
func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.NotNil(t, cmd.RunE)

	force := cmd.Flags().Lookup("force")
	require.NotNil(t, force, "--force flag should exist")
	assert.Equal(t, "f", force.Shorthand)
	assert.Equal(t, "false", force.DefValue)
}

// TestGetReseedCmd verifies the reseed command.
func TestGetReseedCmd(t *testing.T) {
	cmd := getReseedCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "reseed", cmd.Use)
	assert.Contains(t, cmd.Long, "18")
	assert.NotNil(t, cmd.RunE)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"  YES  \n", true},
		{"Y", true},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}

	for _, v := range tests {
		out := new(bytes.Buffer)
		got, err := confirm(strings.NewReader(v.input), out, "Continue?")
		require.NoError(t, err)
		assert.Equal(t, v.want, got, v.input)
		assert.Contains(t, out.String(), "Continue? (yes/no)")
	}
}
