package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings file names, in lookup order.
const (
	YAMLFile = "config.yaml"
	TOMLFile = "config.toml"
)

// ErrInvalidSettings is returned when a settings file cannot be parsed or
// holds out of range values.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are user defaults applied before command line flags.
type Settings struct {
	Cow     string   `yaml:"cow"     toml:"cow"`
	Width   int      `yaml:"width"   toml:"width"`
	Eyes    string   `yaml:"eyes"    toml:"eyes"`
	Tongue  string   `yaml:"tongue"  toml:"tongue"`
	Think   bool     `yaml:"think"   toml:"think"`
	NoWrap  bool     `yaml:"nowrap"  toml:"nowrap"`
	CowPath []string `yaml:"cowpath" toml:"cowpath"` // extra cowfile directories, searched first
}

// Defaults returns the settings used when no file overrides them.
func Defaults() Settings {
	return Settings{
		Cow:    "default",
		Width:  40,
		Eyes:   "default",
		Tongue: " ",
	}
}

// Load reads the settings file in dir, preferring config.yaml over
// config.toml. Fields missing from the file keep their defaults. When
// neither file exists the defaults are returned with an empty path.
func Load(dir string) (Settings, string, error) {
	settings := Defaults()
	if dir == "" {
		return settings, "", nil
	}

	decoders := []struct {
		name      string
		unmarshal func([]byte, any) error
	}{
		{YAMLFile, yaml.Unmarshal},
		{TOMLFile, toml.Unmarshal},
	}

	for _, dec := range decoders {
		path := filepath.Join(dir, dec.name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return settings, path, fmt.Errorf("reading settings %s: %w", path, err)
		}

		if err := dec.unmarshal(data, &settings); err != nil {
			return Defaults(), path, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, path, err)
		}
		if err := settings.validate(); err != nil {
			return Defaults(), path, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, path, err)
		}
		return settings, path, nil
	}

	return settings, "", nil
}

// validate checks value ranges the decoders cannot express.
func (s Settings) validate() error {
	if s.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", s.Width)
	}
	if s.Cow == "" {
		return errors.New("cow must not be empty")
	}
	return nil
}
