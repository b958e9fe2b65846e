package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	mdpage "github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/assets"
	"github.com/alnah/go-mdpage/internal/config"
	"github.com/alnah/go-mdpage/internal/fileutil"
	"github.com/alnah/go-mdpage/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown    = errors.New("failed to read markdown")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrWriteCSS        = errors.New("failed to write stylesheet")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrBatchFailed     = errors.New("rendering failed")
)

// PageRenderer is the interface for the rendering library.
type PageRenderer interface {
	Render(ctx context.Context, input mdpage.Input) (template.HTML, error)
	StyleSheet() string
}

// Compile-time interface implementation check.
var _ PageRenderer = (*mdpage.Renderer)(nil)

// renderParams groups parameters shared across batch/file rendering.
type renderParams struct {
	renderer     PageRenderer
	imageClasses string
	page         *assets.Page // nil writes bare fragments
}

// runRender orchestrates config resolution, rendering, and output.
func runRender(ctx context.Context, args []string, flags *renderFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	renderer, err := mdpage.NewRenderer(rendererOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	if flags.output.css != "" {
		if err := fileutil.WriteFile(flags.output.css, []byte(renderer.StyleSheet())); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteCSS, err)
		}
		logger.Debug("wrote stylesheet", "path", flags.output.css, "style", cfg.Highlight.Style)
	}

	params := &renderParams{
		renderer:     renderer,
		imageClasses: cfg.Images.Classes,
	}
	if cfg.Output.Standalone {
		params.page, err = assets.NewPage(env.AssetLoader, assets.DefaultPageName)
		if err != nil {
			return fmt.Errorf("loading page template: %w", err)
		}
	}

	if isStdinInput(args) {
		return renderStream(ctx, params, cfg.Output.DefaultDir, env)
	}

	files, err := discoverAll(args, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	logger.Debug("rendering", "files", len(files), "workers", workers)

	results := renderBatch(ctx, params, files, workers, env)
	failed, firstErr := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s): %w", ErrBatchFailed, failed, len(results), firstErr)
	}
	return nil
}

// loadConfig loads the named config, falling back to MDPAGE_CONFIG and then
// to defaults when neither is set.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values (CLI wins).
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.images.classes != "" {
		cfg.Images.Classes = flags.images.classes
	}
	if flags.images.camoHost != "" {
		cfg.Images.Proxy.Host = flags.images.camoHost
	}
	if flags.images.camoKey != "" {
		cfg.Images.Proxy.Key = flags.images.camoKey
	}
	if flags.output.style != "" {
		cfg.Highlight.Style = flags.output.style
	}
	if flags.output.dir != "" {
		cfg.Output.DefaultDir = flags.output.dir
	}
	if flags.output.standalone {
		cfg.Output.Standalone = true
	}
	if flags.rawHTML {
		cfg.Markdown.RawHTML = true
	}
}

// rendererOptions translates resolved config into library options.
func rendererOptions(cfg *config.Config, logger *slog.Logger) []mdpage.Option {
	opts := []mdpage.Option{mdpage.WithLogger(logger)}
	if cfg.Images.Proxy.Host != "" {
		opts = append(opts, mdpage.WithImageProxy(cfg.Images.Proxy.Host, cfg.Images.Proxy.Key))
	}
	if cfg.Highlight.Style != "" {
		opts = append(opts, mdpage.WithHighlightStyle(cfg.Highlight.Style))
	}
	if cfg.Markdown.RawHTML {
		opts = append(opts, mdpage.WithRawHTML())
	}
	return opts
}

// newLogger returns a text logger on w: debug level when verbose, warnings otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isStdinInput reports whether args select stdin: none, or a single "-".
func isStdinInput(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

// renderStream renders stdin to stdout, or to output when it names an .html file.
func renderStream(ctx context.Context, params *renderParams, output string, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	doc, err := renderDocument(ctx, params, string(content), "")
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(output), ".html") {
		if err := fileutil.WriteFile(output, doc); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		return nil
	}

	if _, err := env.Stdout.Write(doc); err != nil {
		return fmt.Errorf("%w: stdout: %v", ErrWriteHTML, err)
	}
	return nil
}

// renderDocument renders markdown and, in standalone mode, wraps it in the
// page template titled from the first H1 or else from sourcePath.
func renderDocument(ctx context.Context, params *renderParams, markdown, sourcePath string) ([]byte, error) {
	fragment, err := params.renderer.Render(ctx, mdpage.Input{
		Markdown:     markdown,
		ImageClasses: params.imageClasses,
	})
	if err != nil {
		return nil, err
	}

	if params.page == nil {
		return []byte(fragment), nil
	}

	var sb strings.Builder
	title := documentTitle(markdown, sourcePath)
	if err := params.page.Render(&sb, title, params.renderer.StyleSheet(), fragment); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// firstHeadingPattern matches the first # heading in markdown content.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t#]*$`)

// documentTitle returns the first # heading, the file name without
// extension, or "Untitled".
func documentTitle(markdown, sourcePath string) string {
	if m := firstHeadingPattern.FindStringSubmatch(markdown); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title
		}
	}
	if sourcePath != "" {
		return strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	}
	return "Untitled"
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdpage.ErrStyleNotFound):
		return hints.ForStyleNotFound()
	case errors.Is(err, mdpage.ErrInvalidProxyHost),
		errors.Is(err, mdpage.ErrMissingProxyKey):
		return hints.ForImageProxy()
	case errors.Is(err, ErrWriteHTML), errors.Is(err, ErrWriteCSS):
		return hints.ForOutputDirectory()
	}
	return ""
}
