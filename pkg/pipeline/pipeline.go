// Package pipeline turns the series configuration into image files.
//
// This package implements the words → trie → layout → render → write flow
// shared by the CLI commands and the preview server, so both produce the
// same bytes for the same image.
//
// # Targets
//
//   - heroes: one SVG per post and hero palette, <slug>-<variant>.svg
//   - background: one composite tile per tile palette, trie-bg-<variant>.svg
//   - cards: one PNG per post and hero palette, <slug>-<variant>.png
//
// # Usage
//
// Generate files:
//
//	cfg, err := series.Default()
//	runner := pipeline.NewRunner(cfg, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Targets: []string{pipeline.TargetHeroes, pipeline.TargetBackground},
//	})
//
// Render a single image in memory:
//
//	svg, err := runner.RenderHero(ctx, "trie-what-is-a-trie", "dark")
//
// Targets run sequentially in the order given. A failure stops the run;
// files written before it stay on disk.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/trieviz/pkg/output"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultCardScale is the default PNG scale for social cards.
const DefaultCardScale = 2.0

// Target names.
const (
	TargetHeroes     = "heroes"
	TargetBackground = "background"
	TargetCards      = "cards"
)

// Artifact kinds reported to hooks and in results.
const (
	KindHero       = "hero"
	KindBackground = "background"
	KindCard       = "card"
	KindDOT        = "dot"
)

// ValidTargets is the set of supported targets.
var ValidTargets = map[string]bool{
	TargetHeroes:     true,
	TargetBackground: true,
	TargetCards:      true,
}

// DefaultTargets is what a bare run generates.
var DefaultTargets = []string{TargetHeroes, TargetBackground}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a generation run.
type Options struct {
	// OutputDir overrides the directory from the series configuration.
	OutputDir string

	// Targets selects what to generate, in order. Empty means DefaultTargets.
	Targets []string

	// CardScale is the PNG scale factor for cards.
	CardScale float64

	// Logger receives progress. Defaults to the runner's logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateTarget checks that a target is valid.
func ValidateTarget(target string) error {
	if !ValidTargets[target] {
		return fmt.Errorf("invalid target: %q (must be one of: heroes, background, cards)", target)
	}
	return nil
}

// ValidateAndSetDefaults checks the targets and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Targets) == 0 {
		o.Targets = DefaultTargets
	}
	for _, t := range o.Targets {
		if err := ValidateTarget(t); err != nil {
			return err
		}
	}
	if o.CardScale == 0 {
		o.CardScale = DefaultCardScale
	}
	if o.CardScale < 0 {
		return fmt.Errorf("card scale must be positive, got %v", o.CardScale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Artifact is one generated file.
type Artifact struct {
	Kind string // KindHero, KindBackground or KindCard
	Name string // "<slug>/<variant>" or "<variant>" for backgrounds
	output.Result
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dir is the directory files were written to.
	Dir string

	// Artifacts lists written files in generation order.
	Artifacts []Artifact

	// Stats contains counts and timing.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Files     int
	Unchanged int
	Bytes     int
	Duration  time.Duration
}

func (r *Result) add(a Artifact) {
	r.Artifacts = append(r.Artifacts, a)
	r.Stats.Files++
	r.Stats.Bytes += a.Bytes
	if a.Unchanged {
		r.Stats.Unchanged++
	}
}
