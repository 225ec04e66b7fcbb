// Package presetcfg loads named canon.Options presets from a viper
// instance: a mapstructure-tagged tree with viper-seeded defaults,
// unmarshaled once into a package-global and resolved by preset name.
package presetcfg

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Neumenon/glyph/internal/glyph/canon"
	"github.com/Neumenon/glyph/internal/glyph/obslog"
)

// PresetCfg is the mapstructure shape of one named preset entry.
type PresetCfg struct {
	AutoTabular  bool   `mapstructure:"auto_tabular"`
	MinRows      int    `mapstructure:"min_rows"`
	MaxCols      int    `mapstructure:"max_cols"`
	AllowMissing bool   `mapstructure:"allow_missing"`
	NullStyle    string `mapstructure:"null_style"`
}

// Config is the top-level mapstructure shape: a map of preset name to
// PresetCfg, plus which preset is active by default.
type Config struct {
	Default string               `mapstructure:"default"`
	Presets map[string]PresetCfg `mapstructure:"presets"`
}

var cfg *Config

// Load populates the global preset config from v, seeding the three
// built-in presets ("default", "llm", "no-tabular") as viper defaults so
// a caller who sets nothing still gets a usable Config.
func Load(v *viper.Viper) error {
	v.SetDefault("default", "default")
	v.SetDefault("presets.default.auto_tabular", true)
	v.SetDefault("presets.default.min_rows", 3)
	v.SetDefault("presets.default.max_cols", 20)
	v.SetDefault("presets.default.allow_missing", true)
	v.SetDefault("presets.default.null_style", "symbol")

	v.SetDefault("presets.llm.auto_tabular", true)
	v.SetDefault("presets.llm.min_rows", 3)
	v.SetDefault("presets.llm.max_cols", 20)
	v.SetDefault("presets.llm.allow_missing", true)
	v.SetDefault("presets.llm.null_style", "underscore")

	v.SetDefault("presets.no-tabular.auto_tabular", false)
	v.SetDefault("presets.no-tabular.min_rows", 3)
	v.SetDefault("presets.no-tabular.max_cols", 20)
	v.SetDefault("presets.no-tabular.allow_missing", true)
	v.SetDefault("presets.no-tabular.null_style", "symbol")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal preset config: %w", err)
	}
	cfg = &c
	obslog.L().Debugw("Preset config loaded",
		"default", c.Default,
		"presets", len(c.Presets))
	return nil
}

// Get returns the global preset config, initializing an empty one if Load
// was never called.
func Get() *Config {
	if cfg == nil {
		cfg = &Config{Presets: map[string]PresetCfg{}}
	}
	return cfg
}

// Options resolves a named preset to a canon.Options bundle. An unknown
// name returns an error naming it.
func Options(name string) (canon.Options, error) {
	c := Get()
	p, ok := c.Presets[name]
	if !ok {
		return canon.Options{}, fmt.Errorf("presetcfg: unknown preset %q", name)
	}
	return toOptions(p)
}

// Default resolves the config's declared default preset.
func Default() (canon.Options, error) {
	c := Get()
	name := c.Default
	if name == "" {
		name = "default"
	}
	return Options(name)
}

func toOptions(p PresetCfg) (canon.Options, error) {
	var style canon.NullStyle
	switch p.NullStyle {
	case "symbol", "":
		style = canon.NullSymbol
	case "underscore":
		style = canon.NullUnderscore
	default:
		return canon.Options{}, fmt.Errorf("presetcfg: unknown null_style %q", p.NullStyle)
	}
	return canon.Options{
		AutoTabular:  p.AutoTabular,
		MinRows:      p.MinRows,
		MaxCols:      p.MaxCols,
		AllowMissing: p.AllowMissing,
		NullStyle:    style,
	}, nil
}
