package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/almanac/pkg/adapters/fs"
	"github.com/aretw0/almanac/pkg/outline"
)

// ConfigFile is the optional per-graph configuration file, read from the
// graph root.
const ConfigFile = ".almanac.yaml"

// ErrInvalidConfig is returned when the config file cannot be decoded.
var ErrInvalidConfig = errors.New("invalid config file")

// Config is the content of ConfigFile. Empty fields keep the Logseq defaults.
type Config struct {
	Journals  string `yaml:"journals,omitempty"`
	Pages     string `yaml:"pages,omitempty"`
	Extension string `yaml:"extension,omitempty"`
	Bullet    string `yaml:"bullet,omitempty"`
	Separator string `yaml:"separator,omitempty"`
	Commit    bool   `yaml:"commit,omitempty"`
}

// LoadConfig reads ConfigFile from root. A missing file yields the zero Config.
func LoadConfig(root string) (Config, error) {
	path := filepath.Join(root, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Save writes cfg to ConfigFile under root.
func (c Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(filepath.Join(root, ConfigFile), data, 0644)
}

func (c Config) validate() error {
	for name, dir := range map[string]string{"journals": c.Journals, "pages": c.Pages} {
		if filepath.IsAbs(dir) {
			return fmt.Errorf("%s must be relative to the graph root: %s", name, dir)
		}
	}
	if c.Extension != "" && c.Extension[0] != '.' {
		return fmt.Errorf("extension must start with a dot: %s", c.Extension)
	}
	return nil
}

// Syntax returns the outline syntax, falling back to outline.DefaultSyntax.
func (c Config) Syntax() outline.Syntax {
	s := outline.DefaultSyntax
	if c.Bullet != "" {
		s.Bullet = c.Bullet
	}
	if c.Separator != "" {
		s.Separator = c.Separator
	}
	return s
}

// fsConfig maps c onto the filesystem adapter configuration.
func (c Config) fsConfig(root string) fs.Config {
	return fs.Config{
		Root:        root,
		JournalsDir: c.Journals,
		PagesDir:    c.Pages,
		Extension:   c.Extension,
		Syntax:      c.Syntax(),
	}
}
