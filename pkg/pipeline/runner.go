package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/trieviz/pkg/compose"
	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/nodelink"
	"github.com/matzehuels/trieviz/pkg/observability"
	"github.com/matzehuels/trieviz/pkg/output"
	"github.com/matzehuels/trieviz/pkg/render"
	"github.com/matzehuels/trieviz/pkg/series"
	"github.com/matzehuels/trieviz/pkg/theme"
	"github.com/matzehuels/trieviz/pkg/trie"
)

// Runner renders and writes the images of one series configuration.
//
// The Runner holds no per-run state. Multiple goroutines can safely use
// the same Runner, which the preview server relies on.
type Runner struct {
	Config *series.Config
	Logger *log.Logger
}

// NewRunner creates a runner for cfg.
// If logger is nil, the default logger is used.
func NewRunner(cfg *series.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Config: cfg, Logger: logger}
}

// Execute generates every target in opts and writes the files.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = r.Config.OutputDir
	}
	w, err := output.NewWriter(dir)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{Dir: w.Dir()}
	for _, target := range opts.Targets {
		var err error
		switch target {
		case TargetHeroes:
			err = r.writeHeroes(ctx, w, opts, result)
		case TargetBackground:
			err = r.writeBackgrounds(ctx, w, opts, result)
		case TargetCards:
			err = r.writeCards(ctx, w, opts, result)
		}
		if err != nil {
			return result, fmt.Errorf("%s: %w", target, err)
		}
	}
	result.Stats.Duration = time.Since(start)

	opts.Logger.Debug("generation complete",
		"files", result.Stats.Files,
		"unchanged", result.Stats.Unchanged,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.Duration)
	return result, nil
}

// =============================================================================
// Single-image rendering
// =============================================================================

// RenderHero renders the hero SVG of one post. Unknown slugs and variants
// fail with [errors.ErrCodeNotFound].
func (r *Runner) RenderHero(ctx context.Context, slug, variant string) ([]byte, error) {
	return r.renderHero(ctx, slug, variant, r.Logger)
}

// RenderBackground renders the background tile for one tile palette.
func (r *Runner) RenderBackground(ctx context.Context, variant string) ([]byte, error) {
	return r.renderBackground(ctx, variant, r.Logger)
}

// RenderCard renders the PNG social card of one post.
func (r *Runner) RenderCard(ctx context.Context, slug, variant string, scale float64) ([]byte, error) {
	return r.renderCard(ctx, slug, variant, scale, r.Logger)
}

// DOTOptions selects the form of [Runner.DOT] output.
type DOTOptions struct {
	SVG   bool // Render through Graphviz instead of returning DOT text
	Paths bool // Label nodes with their full prefix
}

// DOT returns the Graphviz source of a post's trie, or the SVG Graphviz
// renders from it when opts.SVG is set.
func (r *Runner) DOT(ctx context.Context, slug string, opts DOTOptions) ([]byte, error) {
	post, ok := r.Config.Post(slug)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown post %q", slug)
	}
	dotOpts := nodelink.Options{Paths: opts.Paths}
	if len(r.Config.HeroPalettes) > 0 {
		dotOpts.Accent = r.Config.HeroPalettes[0].Accent
	}
	dot := nodelink.ToDOT(trie.Build(post.Words), dotOpts)
	if !opts.SVG {
		return []byte(dot), nil
	}

	return instrument(ctx, KindDOT, slug, func() ([]byte, error) {
		return nodelink.RenderSVG(dot)
	})
}

func (r *Runner) renderHero(ctx context.Context, slug, variant string, logger *log.Logger) ([]byte, error) {
	post, th, err := r.lookupHero(slug, variant)
	if err != nil {
		return nil, err
	}
	name := slug + "/" + variant
	return instrument(ctx, KindHero, name, func() ([]byte, error) {
		tree := buildTree(logger, name, post.Words, render.HeroStyle())
		return render.RenderHero(tree, th), nil
	})
}

func (r *Runner) renderCard(ctx context.Context, slug, variant string, scale float64, logger *log.Logger) ([]byte, error) {
	post, th, err := r.lookupHero(slug, variant)
	if err != nil {
		return nil, err
	}
	name := slug + "/" + variant
	return instrument(ctx, KindCard, name, func() ([]byte, error) {
		tree := buildTree(logger, name, post.Words, render.HeroStyle())
		return render.RenderCard(tree, th, render.WithScale(scale))
	})
}

func (r *Runner) renderBackground(ctx context.Context, variant string, logger *log.Logger) ([]byte, error) {
	th, ok := r.Config.TileTheme(variant)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown tile variant %q", variant)
	}
	return instrument(ctx, KindBackground, variant, func() ([]byte, error) {
		sets := r.Config.WordSets()
		trees := make([]layout.Tree, len(sets))
		for i, words := range sets {
			trees[i] = buildTree(logger, r.Config.Posts[i].Slug, words, render.TileStyle())
		}
		g := r.Config.Background
		return render.RenderTile(trees, th, compose.Grid{
			Columns: g.Columns,
			Rows:    g.Rows,
			Padding: g.Padding,
			Gap:     g.Gap,
		})
	})
}

func (r *Runner) lookupHero(slug, variant string) (series.Post, theme.Theme, error) {
	post, ok := r.Config.Post(slug)
	if !ok {
		return series.Post{}, theme.Theme{}, errors.New(errors.ErrCodeNotFound, "unknown post %q", slug)
	}
	th, ok := r.Config.HeroTheme(variant)
	if !ok {
		return series.Post{}, theme.Theme{}, errors.New(errors.ErrCodeNotFound, "unknown hero variant %q", variant)
	}
	return post, th, nil
}

// =============================================================================
// Writing targets
// =============================================================================

func (r *Runner) writeHeroes(ctx context.Context, w *output.Writer, opts Options, result *Result) error {
	for _, post := range r.Config.Posts {
		for _, th := range r.Config.HeroPalettes {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.renderHero(ctx, post.Slug, th.Variant, opts.Logger)
			if err != nil {
				return err
			}
			if err := write(ctx, w, opts.Logger, result, KindHero, post.Slug+"/"+th.Variant,
				output.HeroFilename(post.Slug, th.Variant), data); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) writeBackgrounds(ctx context.Context, w *output.Writer, opts Options, result *Result) error {
	for _, th := range r.Config.TilePalettes {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := r.renderBackground(ctx, th.Variant, opts.Logger)
		if err != nil {
			return err
		}
		if err := write(ctx, w, opts.Logger, result, KindBackground, th.Variant,
			output.BackgroundFilename(th.Variant), data); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) writeCards(ctx context.Context, w *output.Writer, opts Options, result *Result) error {
	for _, post := range r.Config.Posts {
		for _, th := range r.Config.HeroPalettes {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.renderCard(ctx, post.Slug, th.Variant, opts.CardScale, opts.Logger)
			if err != nil {
				return err
			}
			if err := write(ctx, w, opts.Logger, result, KindCard, post.Slug+"/"+th.Variant,
				output.CardFilename(post.Slug, th.Variant), data); err != nil {
				return err
			}
		}
	}
	return nil
}

func write(ctx context.Context, w *output.Writer, logger *log.Logger, result *Result, kind, name, filename string, data []byte) error {
	res, err := w.Write(filename, data)
	if err != nil {
		return err
	}
	observability.Pipeline().OnWrite(ctx, res.Path, res.Bytes, res.Unchanged)
	logger.Info("wrote file",
		"path", res.Path,
		"bytes", res.Bytes,
		"digest", res.Digest[:12],
		"unchanged", res.Unchanged)
	result.add(Artifact{Kind: kind, Name: name, Result: res})
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// buildTree lays out the trie of words with the spacing of st and logs
// its shape at debug level.
func buildTree(logger *log.Logger, name string, words []string, st render.Style) layout.Tree {
	root := trie.Build(words)
	t := layout.Build(root, st.NodeSpacing, st.LevelHeight)
	logger.Debug("laid out trie",
		"name", name,
		"nodes", t.NodeCount(),
		"leaves", t.LeafCount(),
		"depth", root.Depth(),
		"width", t.Bounds.Width(),
		"height", t.Bounds.Height())
	return t
}

// instrument wraps a render with the pipeline hooks.
func instrument(ctx context.Context, kind, name string, fn func() ([]byte, error)) ([]byte, error) {
	observability.Pipeline().OnRenderStart(ctx, kind, name)
	start := time.Now()
	data, err := fn()
	observability.Pipeline().OnRenderComplete(ctx, kind, name, len(data), time.Since(start), err)
	return data, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
