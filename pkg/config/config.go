package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/lumberjack"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/palette"
	"github.com/matzehuels/chromatic/pkg/search"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.toml"

// Config is the effective chromatic configuration.
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Palette PaletteConfig `toml:"palette"`
	Log     LogConfig     `toml:"log"`
}

// SearchConfig holds defaults for the search commands.
type SearchConfig struct {
	Strategy   string `toml:"strategy"`
	K          int    `toml:"k"`
	Iterations int    `toml:"iterations"`
	MaxK       int    `toml:"max_k"`
	ForceValid bool   `toml:"force_valid"`
	Seed       uint64 `toml:"seed"`
}

// PaletteConfig overrides the built-in master palette.
type PaletteConfig struct {
	Colors []string `toml:"colors,omitempty"`
}

// LogConfig routes log output to a rotating file.
type LogConfig struct {
	File    string `toml:"file,omitempty"`
	MaxSize int    `toml:"max_size"` // megabytes
	MaxAge  int    `toml:"max_age"`  // days
	Verbose bool   `toml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Strategy:   string(search.LasVegas),
			K:          3,
			Iterations: 1000,
			MaxK:       10,
			ForceValid: true,
		},
		Log: LogConfig{
			MaxSize: 10,
			MaxAge:  28,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/chromatic/config.toml, falling back to
// ~/.config/chromatic/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "chromatic", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "locate home directory")
	}
	return filepath.Join(home, ".config", "chromatic", FileName), nil
}

// Load reads the file at path over the defaults. An empty path selects
// [DefaultPath]. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses TOML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "decode config")
	}
	return cfg, cfg.Validate()
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// WriteFile writes cfg to path, creating parent directories. An existing file
// is left alone unless overwrite is set.
func (c Config) WriteFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return cerrors.New(cerrors.ErrCodeInvalidConfig, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate rejects values the search engine would refuse.
func (c Config) Validate() error {
	s := c.Search
	if _, err := search.ParseStrategy(s.Strategy); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "search.strategy")
	}
	if s.K < 1 || s.K > palette.MaxSize {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "search.k must be in [1, %d], got %d", palette.MaxSize, s.K)
	}
	if s.Iterations < 1 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "search.iterations must be >= 1, got %d", s.Iterations)
	}
	if s.MaxK < s.K || s.MaxK > palette.MaxSize {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "search.max_k must be in [k=%d, %d], got %d", s.K, palette.MaxSize, s.MaxK)
	}
	if _, err := c.MasterPalette(); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "palette.colors")
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidConfig, "log.max_size and log.max_age must be >= 0")
	}
	return nil
}

// MasterPalette returns the configured master palette, or [palette.Master] when
// none is set.
func (c Config) MasterPalette() (palette.Palette, error) {
	if len(c.Palette.Colors) == 0 {
		return palette.Master, nil
	}
	return palette.FromColors(c.Palette.Colors...)
}

// Writer returns a rotating file writer, or nil when no file is configured.
func (c LogConfig) Writer() io.WriteCloser {
	if c.File == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename: c.File,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
}
