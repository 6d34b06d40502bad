package cli

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/trieviz/pkg/buildinfo"
	"github.com/matzehuels/trieviz/pkg/cache"
	trierr "github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/observability"
	"github.com/matzehuels/trieviz/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown after the context ends.
const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview every image from a local HTTP server",
		Long: `Serve an index page showing every hero image, social card and
background tile. Images are rendered on first request and kept in memory;
pass --no-cache to render on every request. Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			var store cache.Cache = cache.NewMemoryCache()
			if noCache {
				store = cache.NewNullCache()
			}
			defer store.Close()
			return serve(cmd.Context(), addr, newPreviewHandler(runner, store, c.Logger), c.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "render every request instead of caching images")

	return cmd
}

// serve runs handler on addr until ctx is cancelled.
func serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	printInfo("Serving previews at %s", StyleLink.Render("http://"+ln.Addr().String()+"/"))
	printDetail("Press Ctrl+C to stop")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// =============================================================================
// Handlers
// =============================================================================

type previewServer struct {
	runner *pipeline.Runner
	cache  cache.Cache
	logger *log.Logger
}

// newPreviewHandler routes preview requests to runner, keeping rendered
// images in store.
func newPreviewHandler(runner *pipeline.Runner, store cache.Cache, logger *log.Logger) http.Handler {
	s := &previewServer{runner: runner, cache: store, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.index)
	r.Get("/heroes/{slug}/{variant}.svg", s.hero)
	r.Get("/cards/{slug}/{variant}.png", s.card)
	r.Get("/background/{variant}.svg", s.background)
	r.Get("/dot/{slug}.svg", s.dot)

	return r
}

func (s *previewServer) hero(w http.ResponseWriter, r *http.Request) {
	slug, variant := chi.URLParam(r, "slug"), chi.URLParam(r, "variant")
	s.serveImage(w, r, "image/svg+xml", cache.Key(pipeline.KindHero, slug, variant), func() ([]byte, error) {
		return s.runner.RenderHero(r.Context(), slug, variant)
	})
}

func (s *previewServer) card(w http.ResponseWriter, r *http.Request) {
	slug, variant := chi.URLParam(r, "slug"), chi.URLParam(r, "variant")
	s.serveImage(w, r, "image/png", cache.Key(pipeline.KindCard, slug, variant), func() ([]byte, error) {
		return s.runner.RenderCard(r.Context(), slug, variant, pipeline.DefaultCardScale)
	})
}

func (s *previewServer) background(w http.ResponseWriter, r *http.Request) {
	variant := chi.URLParam(r, "variant")
	s.serveImage(w, r, "image/svg+xml", cache.Key(pipeline.KindBackground, variant), func() ([]byte, error) {
		return s.runner.RenderBackground(r.Context(), variant)
	})
}

func (s *previewServer) dot(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	s.serveImage(w, r, "image/svg+xml", cache.Key(pipeline.KindDOT, slug), func() ([]byte, error) {
		return s.runner.DOT(r.Context(), slug, pipeline.DOTOptions{SVG: true})
	})
}

// serveImage answers with the cached or freshly rendered image. The body
// hash is sent as ETag so unchanged images revalidate with 304.
func (s *previewServer) serveImage(w http.ResponseWriter, r *http.Request, contentType, key string, render func() ([]byte, error)) {
	data, err := cache.GetOrRender(r.Context(), s.cache, key, 0, render)
	if err != nil {
		status := http.StatusInternalServerError
		if trierr.Is(err, trierr.ErrCodeNotFound) {
			status = http.StatusNotFound
		} else {
			s.logger.Error("render failed", "path", r.URL.Path, "err", err)
		}
		http.Error(w, trierr.UserMessage(err), status)
		return
	}

	etag := `"` + cache.Hash(data)[:16] + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

// instrument reports each request to the HTTP hooks and the debug log.
func (s *previewServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", d)
	})
}

// =============================================================================
// Index Page
// =============================================================================

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>trieviz preview</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 2rem; background: #f4f4f4; }
  section { margin-bottom: 2.5rem; }
  .row { display: flex; flex-wrap: wrap; gap: 1rem; align-items: flex-start; }
  img { max-width: 100%; border: 1px solid #ddd; }
  .tile { width: 100%; height: 360px; border: 1px solid #ddd; }
  code { color: #555; }
</style>
</head>
<body>
<h1>trieviz preview</h1>
{{range .Posts}}
<section>
  <h2><code>{{.Slug}}</code> <small><a href="/dot/{{.Slug}}.svg">dot</a></small></h2>
  <div class="row">
  {{$slug := .Slug}}{{range $.Heroes}}
    <a href="/cards/{{$slug}}/{{.}}.png"><img src="/heroes/{{$slug}}/{{.}}.svg" alt="{{$slug}} {{.}}"></a>
  {{end}}
  </div>
</section>
{{end}}
<section>
  <h2>Background</h2>
  {{range .Tiles}}
  <h3>{{.}}</h3>
  <div class="tile" style="background-image: url('/background/{{.}}.svg')"></div>
  {{end}}
</section>
<footer><code>trieviz {{.Version}}</code></footer>
</body>
</html>
`))

type indexPost struct {
	Slug string
}

type indexData struct {
	Posts   []indexPost
	Heroes  []string
	Tiles   []string
	Version string
}

func (s *previewServer) index(w http.ResponseWriter, r *http.Request) {
	cfg := s.runner.Config
	data := indexData{Version: buildinfo.String()}
	for _, p := range cfg.Posts {
		data.Posts = append(data.Posts, indexPost{Slug: p.Slug})
	}
	for _, th := range cfg.HeroPalettes {
		data.Heroes = append(data.Heroes, th.Variant)
	}
	for _, th := range cfg.TilePalettes {
		data.Tiles = append(data.Tiles, th.Variant)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("index template", "err", err)
	}
}
