package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/gnames/pokedb/internal/iofs"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd verifies the root command and its subcommands.
func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "pokedb", cmd.Use)
	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)

	var names []string
	for _, v := range cmd.Commands() {
		names = append(names, v.Name())
	}
	for _, v := range []string{"create", "reseed", "populate", "analyze"} {
		assert.Contains(t, names, v)
	}
}

// TestGetRootCmd_Version verifies version output with long and
// short flags.
func TestGetRootCmd_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			cmd := getRootCmd()
			cmd.Version = "version: v1.2.3\nbuild:   abc123"

			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetArgs([]string{flag})

			require.NoError(t, cmd.Execute())
			out := buf.String()
			assert.Contains(t, out, "v1.2.3")
			assert.Contains(t, out, "abc123")
			assert.NotContains(t, out, "pokedb version")
		})
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := buf.String()
	assert.Contains(t, help, "pokedb")
	assert.Contains(t, help, "PostgreSQL")
	assert.Contains(t, help, "populate")
}

// TestGetRootCmd_InvalidCommand verifies error on invalid command.
func TestGetRootCmd_InvalidCommand(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"nonexistent-command"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

// TestInitConfig verifies that the config file is read and
// environment variables override it.
func TestInitConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	t.Run("file", func(t *testing.T) {
		res, err := initConfig(home)
		require.NoError(t, err)
		assert.Equal(t, "localhost", res.Database.Host)
		assert.Equal(t, 251, res.Ingest.Total)
		assert.Equal(t, config.DefaultBaseURL, res.API.BaseURL)
	})

	t.Run("env", func(t *testing.T) {
		url := "postgres://u:p@db:5432/pokemon"
		t.Setenv("DATABASE_URL", url)
		t.Setenv("POKEMON_API_BASE_URL", "http://localhost:8080/pokemon/")
		t.Setenv("POKEDB_REPORT_BINS", "30")
		t.Setenv("POKEDB_LOG_LEVEL", "debug")

		res, err := initConfig(home)
		require.NoError(t, err)
		assert.Equal(t, url, res.Database.URL)
		assert.Equal(t, "http://localhost:8080/pokemon/", res.API.BaseURL)
		assert.Equal(t, 30, res.Report.Bins)
		assert.Equal(t, "debug", res.Log.Level)
	})

	t.Run("catalog size env", func(t *testing.T) {
		t.Setenv("TOTAL_POKEMON", "151")

		res, err := initConfig(home)
		require.NoError(t, err)
		assert.Equal(t, 151, res.Ingest.Total)

		t.Setenv("POKEDB_INGEST_TOTAL", "386")
		res, err = initConfig(home)
		require.NoError(t, err)
		assert.Equal(t, 386, res.Ingest.Total)
	})

	t.Run("prefixed env wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://generic/db")
		t.Setenv("POKEDB_DATABASE_URL", "postgres://pokedb/db")

		res, err := initConfig(home)
		require.NoError(t, err)
		assert.Equal(t, "postgres://pokedb/db", res.Database.URL)
	})
}

func TestInitConfigMissingFile(t *testing.T) {
	_, err := initConfig(t.TempDir())
	assert.Error(t, err)
}

// TestInitConfig_ToOptions verifies values read by viper survive
// conversion to options.
func TestInitConfig_ToOptions(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))

	custom := []byte(`database:
  host: db.example.org
  port: 6543
ingest:
  total: 151
report:
  format: yaml
`)
	require.NoError(t, os.WriteFile(config.ConfigFilePath(home), custom, 0644))

	v, err := initConfig(home)
	require.NoError(t, err)

	c := config.New()
	c.Update(v.ToOptions())
	assert.Equal(t, "db.example.org", c.Database.Host)
	assert.Equal(t, 6543, c.Database.Port)
	assert.Equal(t, 151, c.Ingest.Total)
	assert.Equal(t, "yaml", c.Report.Format)
	assert.Equal(t, "postgres", c.Database.User, "defaults are kept")
	assert.NoError(t, c.Validate())
}
