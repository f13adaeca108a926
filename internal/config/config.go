package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duskhall/engine/internal/data"
)

// Content holds all configuration for a content load: where template files
// come from and which files belong to each category.
type Content struct {
	// Source selects the fetcher: "dir" (filesystem) or "database".
	Source string `yaml:"source"`

	// DataDir is the content root for the "dir" source.
	DataDir string `yaml:"data_dir"`

	Database DatabaseConfig `yaml:"database"`

	Files ContentFiles `yaml:"files"`
}

// ContentFiles lists the content files per category. Order across
// categories is fixed by the loader; order within a category does not
// matter.
type ContentFiles struct {
	Render   []string `yaml:"render"`
	Stats    []string `yaml:"stats"`
	AI       []string `yaml:"ai"`
	Health   []string `yaml:"health"`
	Races    []string `yaml:"races"`
	Classes  []string `yaml:"classes"`
	Items    []string `yaml:"items"`
	Entities []string `yaml:"entities"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the
// database-backed content source.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultContent returns a Content config with sensible defaults.
func DefaultContent() Content {
	return Content{
		Source:  "dir",
		DataDir: "data",
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "duskhall",
			DBName:  "duskhall",
			SSLMode: "disable",
		},
		Files: ContentFiles{
			Render:   []string{"render_templates.json"},
			Stats:    []string{"stats_templates.json"},
			AI:       []string{"ai_templates.json"},
			Health:   []string{"health_templates.json"},
			Races:    []string{"races.json"},
			Classes:  []string{"classes.json"},
			Items:    []string{"items.json"},
			Entities: []string{"entities.json"},
		},
	}
}

// LoadContent reads a YAML content config. Missing keys keep their
// defaults.
func LoadContent(path string) (Content, error) {
	cfg := DefaultContent()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Manifest converts the file lists into the loader's manifest.
func (c Content) Manifest() data.Manifest {
	return data.Manifest{
		RenderFiles: c.Files.Render,
		StatsFiles:  c.Files.Stats,
		AIFiles:     c.Files.AI,
		HealthFiles: c.Files.Health,
		RaceFiles:   c.Files.Races,
		ClassFiles:  c.Files.Classes,
		ItemFiles:   c.Files.Items,
		EntityFiles: c.Files.Entities,
	}
}
