package cli

import (
	"testing"

	"github.com/eleven-am/crudgen/internal/render"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1", cfg.Version)
	assert.True(t, cfg.Schema.StrictMode)
	assert.Equal(t, "public", cfg.Database.Schema)
	assert.Equal(t, "catalog", cfg.Database.Inspector)
	assert.Equal(t, render.DefaultOptions(), cfg.RenderOptions())
}

func TestLoadConfig(t *testing.T) {
	t.Run("no config anywhere", func(t *testing.T) {
		t.Setenv(ConfigEnv, "")

		cfg, err := LoadConfig(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("explicit path keeps defaults for missing keys", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/project/custom.yaml", []byte(`version: "1"
package:
  suffix: _api
naming:
  create_prefix: p_
`), 0644))

		cfg, err := LoadConfig(fs, "/project/custom.yaml")
		require.NoError(t, err)

		opts := cfg.RenderOptions()
		assert.Equal(t, "_api", opts.PackageSuffix)
		assert.Equal(t, "p_", opts.CreatePrefix)
		assert.Equal(t, "u_", opts.UpdatePrefix)
		assert.Equal(t, "gid_", opts.GetByIDPrefix)
		assert.True(t, cfg.Schema.StrictMode)
		assert.Equal(t, "public", cfg.Database.Schema)
	})

	t.Run("strict mode can be turned off", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("schema:\n  strict_mode: false\n"), 0644))

		cfg, err := LoadConfig(fs, "/c.yaml")
		require.NoError(t, err)
		assert.False(t, cfg.Schema.StrictMode)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		_, err := LoadConfig(afero.NewMemMapFs(), "/custom/missing.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("schema: [unclosed"), 0644))

		_, err := LoadConfig(fs, "/bad.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestGetConfigPath(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		files []string
		want  string
	}{
		{name: "environment wins", env: "/etc/crudgen.yaml", files: []string{"crudgen.yaml"}, want: "/etc/crudgen.yaml"},
		{name: "crudgen.yaml", files: []string{"crudgen.yaml", ".crudgen.yml"}, want: "crudgen.yaml"},
		{name: "hidden yml", files: []string{".crudgen.yml"}, want: ".crudgen.yml"},
		{name: "nothing found", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigEnv, tt.env)

			fs := afero.NewMemMapFs()
			for _, f := range tt.files {
				require.NoError(t, afero.WriteFile(fs, f, []byte("version: \"1\"\n"), 0644))
			}

			assert.Equal(t, tt.want, GetConfigPath(fs))
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg := DefaultConfig()
	cfg.Package.Suffix = "_pkg"
	cfg.Database.URL = "postgres://localhost:5432/shop"

	require.NoError(t, SaveConfig(fs, cfg, "/project/config/crudgen.yaml"))

	loaded, err := LoadConfig(fs, "/project/config/crudgen.yaml")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
