package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/foldline/foldline/pkg/pipeline"
)

const defaultServeAddr = "localhost:8080"

// serveCommand creates the serve command, a local preview server that
// re-unfolds the building on every request so edits to the TOML file
// show up on refresh.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		exportDir string
	)

	cmd := &cobra.Command{
		Use:   "serve [building.toml]",
		Short: "Serve a live browser preview of the pattern",
		Long: `Serve a live browser preview of the pattern.

The serve command starts a local HTTP server that unfolds the building
on every request. Edit the TOML file and refresh the browser to see the
updated pattern.

Endpoints:
  GET  /              HTML preview page
  GET  /pattern.svg   pattern as SVG
  GET  /pattern.dxf   pattern as DXF
  GET  /pattern.json  pattern as JSON
  GET  /pattern.dot   fold connectivity graph as DOT
  POST /export        write an artifact to the export directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			if input == "" {
				return nil
			}
			return c.runServe(cmd.Context(), input, addr, exportDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&exportDir, "export-dir", "exports", "directory for exported artifacts")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input, addr, exportDir string) error {
	srv := &previewServer{
		cli:       c,
		file:      input,
		exportDir: exportDir,
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	printSuccess("Serving %s", StyleHighlight.Render(input))
	printDetail("http://%s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// previewServer holds the state shared by all preview endpoints.
type previewServer struct {
	cli       *CLI
	file      string
	exportDir string
}

// routes builds the chi router for the preview server.
func (s *previewServer) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/pattern.{format:[a-z]+}", s.handlePattern)
	r.Post("/export", s.handleExport)

	return r
}

// run executes the pipeline for one request with the given formats.
func (s *previewServer) run(ctx context.Context, formats []string) (*pipeline.Result, error) {
	runner := pipeline.NewRunner(s.cli.Logger)
	return runner.Execute(ctx, pipeline.Options{
		BuildingFile: s.file,
		Formats:      formats,
		Logger:       s.cli.Logger,
	})
}

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatDXF:  "application/dxf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexHTML, filepath.Base(s.file))
}

func (s *previewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status":"ok"}`)
}

func (s *previewServer) handlePattern(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.run(r.Context(), []string{format})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(result.Artifacts[format])
}

// handleExport renders one artifact and writes it to the export
// directory under a fresh ID, so repeated exports never clobber each
// other.
func (s *previewServer) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.run(r.Context(), []string{format})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	id := uuid.New().String()
	path := filepath.Join(s.exportDir, id+"."+format)
	if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"id":     id,
		"format": format,
		"file":   path,
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>foldline · %s</title>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; background: #f4f2ee; }
  header { padding: 0.6rem 1rem; background: #2b2b2b; color: #eee; display: flex; gap: 1rem; align-items: baseline; }
  header a { color: #9ecbff; text-decoration: none; font-size: 0.85rem; }
  main { padding: 1rem; }
  img { width: 100%%; background: white; box-shadow: 0 1px 4px rgba(0,0,0,0.2); }
</style>
</head>
<body>
<header>
  <strong>foldline</strong>
  <span>%[1]s</span>
  <a href="/pattern.dxf">dxf</a>
  <a href="/pattern.json">json</a>
  <a href="/pattern.dot">dot</a>
</header>
<main><img id="pattern" src="/pattern.svg" alt="pattern"></main>
<script>
  setInterval(function () {
    document.getElementById("pattern").src = "/pattern.svg?t=" + Date.now();
  }, 2000);
</script>
</body>
</html>
`
