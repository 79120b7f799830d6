package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"regexviz/internal/render"
)

const DefaultPath = ".regexviz.yaml"

// Config holds the output settings shared by every subcommand. Command-line
// flags override these values.
type Config struct {
	Format       string `yaml:"format"`
	RankDir      string `yaml:"rankdir"`
	EpsilonLabel string `yaml:"epsilon_label"`
	OutDir       string `yaml:"out_dir"`
	Image        string `yaml:"image,omitempty"`
}

func Default() Config {
	return Config{
		Format:       string(render.FormatDOT),
		RankDir:      render.DefaultRankDir,
		EpsilonLabel: render.DefaultEpsilonLabel,
		OutDir:       ".",
	}
}

// Load reads the configuration at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	switch c.RankDir {
	case "", "LR", "RL", "TB", "BT":
	default:
		return fmt.Errorf("invalid rankdir %q", c.RankDir)
	}
	return nil
}

func (c Config) DOTOptions() render.DOTOptions {
	return render.DOTOptions{RankDir: c.RankDir, EpsilonLabel: c.EpsilonLabel}
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath
	}
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
