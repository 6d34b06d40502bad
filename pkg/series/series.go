// Package series holds the fixed inputs of the trie article series: the
// post word lists, the hero and tile palettes, the background grid shape
// and the output directory.
//
// The data lives in series.toml, embedded into the binary and decoded once
// on first use. It is read-only for the lifetime of the process; nothing
// reads environment variables or files at runtime.
package series

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/theme"
)

//go:embed series.toml
var defaultTOML []byte

// Post is one article in the series and the words its hero image shows.
type Post struct {
	Slug  string   `toml:"slug"`
	Words []string `toml:"words"`
}

// Grid is the shape of the background tile.
type Grid struct {
	Columns int     `toml:"columns"`
	Rows    int     `toml:"rows"`
	Padding float64 `toml:"padding"` // Outer margin on every side
	Gap     float64 `toml:"gap"`     // Space between neighbouring cells
}

// Config is the complete, validated series description.
type Config struct {
	OutputDir    string        `toml:"output_dir"`
	Posts        []Post        `toml:"posts"`
	HeroPalettes []theme.Theme `toml:"hero_palettes"`
	TilePalettes []theme.Theme `toml:"tile_palettes"`
	Background   Grid          `toml:"background"`
}

// Default returns the embedded series configuration. It is decoded and
// validated on the first call; later calls return the same value.
var Default = sync.OnceValues(func() (*Config, error) {
	return Parse(defaultTOML)
})

// Parse decodes and validates a series configuration. Unknown keys are
// rejected so typos in the TOML do not silently drop data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode series")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants the generators rely on.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output_dir is required")
	}
	if len(c.Posts) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one post is required")
	}

	seen := make(map[string]bool, len(c.Posts))
	for _, p := range c.Posts {
		if err := errors.ValidateName("slug", p.Slug); err != nil {
			return err
		}
		if seen[p.Slug] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate post slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if len(p.Words) == 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "post %q has no words", p.Slug)
		}
	}

	if err := validatePalettes("hero_palettes", c.HeroPalettes, true); err != nil {
		return err
	}
	if err := validatePalettes("tile_palettes", c.TilePalettes, false); err != nil {
		return err
	}

	if c.Background.Columns <= 0 || c.Background.Rows <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "background grid must have positive columns and rows, got %dx%d",
			c.Background.Columns, c.Background.Rows)
	}
	if c.Background.Padding < 0 || c.Background.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "background padding and gap cannot be negative")
	}
	return nil
}

func validatePalettes(key string, palettes []theme.Theme, canvas bool) error {
	if len(palettes) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: at least one palette is required", key)
	}
	seen := make(map[string]bool, len(palettes))
	for _, th := range palettes {
		if err := th.Validate(canvas); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", key)
		}
		if seen[th.Variant] {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: duplicate variant %q", key, th.Variant)
		}
		seen[th.Variant] = true
	}
	return nil
}

// Post returns the post with the given slug.
func (c *Config) Post(slug string) (Post, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// HeroTheme returns the hero palette for variant.
func (c *Config) HeroTheme(variant string) (theme.Theme, bool) {
	return find(c.HeroPalettes, variant)
}

// TileTheme returns the background tile palette for variant.
func (c *Config) TileTheme(variant string) (theme.Theme, bool) {
	return find(c.TilePalettes, variant)
}

// WordSets returns every post's word list in series order.
func (c *Config) WordSets() [][]string {
	sets := make([][]string, len(c.Posts))
	for i, p := range c.Posts {
		sets[i] = p.Words
	}
	return sets
}

func find(palettes []theme.Theme, variant string) (theme.Theme, bool) {
	for _, th := range palettes {
		if th.Variant == variant {
			return th, true
		}
	}
	return theme.Theme{}, false
}
