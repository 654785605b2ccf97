package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eleven-am/crudgen/internal/render"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable pointing at a config file
const ConfigEnv = "CRUDGEN_CONFIG"

var configLocations = []string{"crudgen.yaml", "crudgen.yml", ".crudgen.yaml", ".crudgen.yml"}

// CrudgenConfig represents the crudgen.yaml configuration structure
type CrudgenConfig struct {
	Version string `yaml:"version"`

	Package struct {
		Suffix string `yaml:"suffix"`
	} `yaml:"package"`

	Naming struct {
		CreatePrefix  string `yaml:"create_prefix"`
		UpdatePrefix  string `yaml:"update_prefix"`
		DeletePrefix  string `yaml:"delete_prefix"`
		GetByIDPrefix string `yaml:"get_by_id_prefix"`
	} `yaml:"naming"`

	Schema struct {
		StrictMode bool `yaml:"strict_mode"`
	} `yaml:"schema"`

	Database struct {
		URL            string `yaml:"url"`
		Schema         string `yaml:"schema"`
		Inspector      string `yaml:"inspector"`
		MaxConnections int    `yaml:"max_connections"`
	} `yaml:"database"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *CrudgenConfig {
	opts := render.DefaultOptions()

	config := &CrudgenConfig{Version: "1"}
	config.Package.Suffix = opts.PackageSuffix
	config.Naming.CreatePrefix = opts.CreatePrefix
	config.Naming.UpdatePrefix = opts.UpdatePrefix
	config.Naming.DeletePrefix = opts.DeletePrefix
	config.Naming.GetByIDPrefix = opts.GetByIDPrefix
	config.Schema.StrictMode = true
	config.Database.Schema = "public"
	config.Database.Inspector = "catalog"
	config.Database.MaxConnections = 2

	return config
}

// RenderOptions returns the naming options for the renderer.
func (c *CrudgenConfig) RenderOptions() render.Options {
	return render.Options{
		PackageSuffix: c.Package.Suffix,
		CreatePrefix:  c.Naming.CreatePrefix,
		UpdatePrefix:  c.Naming.UpdatePrefix,
		DeletePrefix:  c.Naming.DeletePrefix,
		GetByIDPrefix: c.Naming.GetByIDPrefix,
	}
}

// LoadConfig reads the config file at path, or the first config found by
// GetConfigPath when path is empty. It returns nil, nil when there is none.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(fs afero.Fs, path string) (*CrudgenConfig, error) {
	if path == "" {
		path = GetConfigPath(fs)
		if path == "" {
			return nil, nil
		}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Database.Schema == "" {
		config.Database.Schema = "public"
	}
	if config.Database.MaxConnections == 0 {
		config.Database.MaxConnections = 2
	}

	return config, nil
}

// GetConfigPath returns $CRUDGEN_CONFIG or the first default location that exists.
func GetConfigPath(fs afero.Fs) string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}

	for _, loc := range configLocations {
		if exists, _ := afero.Exists(fs, loc); exists {
			return loc
		}
	}

	return ""
}

func SaveConfig(fs afero.Fs, config *CrudgenConfig, path string) error {
	if path == "" {
		path = configLocations[0]
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
