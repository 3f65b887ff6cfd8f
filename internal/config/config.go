package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Flast/msgviewer/internal/msgpack"
)

// Config is the msgviewer run configuration, loadable from a TOML file.
// Zero values fall back to defaults; Validate rejects anything the
// decoder or renderer cannot honor.
type Config struct {
	// Encoding is the text convention for str payloads: "utf-8" or
	// "latin-1". The format does not distinguish them, so the choice
	// stays explicit here rather than being a silent default.
	Encoding string `toml:"encoding"`

	// MaxInputBytes bounds the input size before decode is invoked.
	// The decoder itself imposes no limit.
	MaxInputBytes int64 `toml:"max_input_bytes"`

	// Strict turns reserved (0xc1) tags into a failure at the CLI
	// boundary. The decoder always renders them as placeholders.
	Strict bool `toml:"strict"`

	Output OutputConfig `toml:"output"`
}

type OutputConfig struct {
	Format  string `toml:"format"` // "text" or "json"
	Offsets bool   `toml:"offsets"`
}

func Default() Config {
	return Config{
		Encoding:      "utf-8",
		MaxInputBytes: 64 * 1024 * 1024,
		Output: OutputConfig{
			Format:  "text",
			Offsets: true,
		},
	}
}

// Load reads a TOML config file, fills unset fields with defaults, and
// validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	if err := loadToml(path, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Encoding == "" {
		cfg.Encoding = def.Encoding
	}
	if cfg.MaxInputBytes == 0 {
		cfg.MaxInputBytes = def.MaxInputBytes
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
}

func Validate(cfg Config) error {
	if _, err := msgpack.ParseEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("config invalid encoding: %w", err)
	}
	if cfg.MaxInputBytes <= 0 {
		return fmt.Errorf("config max_input_bytes must be positive, got %d", cfg.MaxInputBytes)
	}
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config unknown output format: %s", cfg.Output.Format)
	}
	return nil
}

// DecodeOptions resolves the configured text convention. Call after
// Validate; an unknown encoding falls back to UTF-8 here.
func (c Config) DecodeOptions() msgpack.Options {
	enc, _ := msgpack.ParseEncoding(c.Encoding)
	return msgpack.Options{Encoding: enc}
}
