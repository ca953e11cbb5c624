package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/tagdoc/internal/config"
	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
	"git.home.luguber.info/inful/tagdoc/internal/input"
	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/markdown"
	"git.home.luguber.info/inful/tagdoc/internal/metrics"
	"git.home.luguber.info/inful/tagdoc/internal/pipeline"
	"git.home.luguber.info/inful/tagdoc/internal/plugin/builtin"
	"git.home.luguber.info/inful/tagdoc/internal/render"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Input       string `arg:"" help:"Class table produced by the source walker" type:"existingfile"`
	Output      string `short:"o" help:"Output directory (overrides output.directory)"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile (overrides output.metrics_file)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.MetricsFile != "" {
		cfg.Output.MetricsFile = b.MetricsFile
	}
	logger := SetupLogger(g, root, cfg)
	_, err = RunBuild(context.Background(), cfg, b.Input, logger, os.Stdout)
	return err
}

// BuildSummary reports what one build produced.
type BuildSummary struct {
	Pages           []string
	Warnings        []warnings.Warning
	ExternalClasses []string
}

// RunBuild decodes the class table at inputPath, runs the pipeline and
// writes one HTML fragment per remaining class. A summary goes to out.
func RunBuild(ctx context.Context, cfg *config.Config, inputPath string, logger *slog.Logger, out io.Writer) (*BuildSummary, error) {
	fmt.Fprintln(out, "Starting tagdoc build")

	tags, err := builtin.NewRegistry()
	if err != nil {
		return nil, tderrors.RegistryInvalid(err)
	}

	promReg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(promReg)

	w := warnings.NewLogger(logger).WithRecorder(rec)
	if err := w.Configure(cfg.Warnings); err != nil {
		return nil, tderrors.ValidationFailed("warnings", err.Error())
	}

	f, err := input.Load(inputPath)
	if err != nil {
		return nil, err
	}

	p := pipeline.NewPipeline(tags, w, cfg, pipeline.WithRecorder(rec), pipeline.WithLogger(logger))
	res, err := p.Run(ctx, f)
	if err != nil {
		return nil, tderrors.InternalError("pipeline canceled", err)
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		return nil, tderrors.OutputWrite(cfg.Output.Directory, err)
	}

	r := render.New(tags, markdown.NewFormatter(markdown.Options{
		UnsafeHTML:  cfg.Markdown.UnsafeHTML,
		Typographer: cfg.Markdown.Typographer,
		Linkify:     cfg.Markdown.Linkify,
	}))
	summary := &BuildSummary{ExternalClasses: cfg.ExternalClasses}
	for _, cls := range res.State.Table.Classes() {
		path := filepath.Join(cfg.Output.Directory, cls.Name+".html")
		if err := os.WriteFile(path, []byte(r.Page(cls)), 0o644); err != nil {
			return nil, tderrors.OutputWrite(path, err)
		}
		summary.Pages = append(summary.Pages, path)
		logger.Debug("Wrote page", logfields.Class(cls.Name), slog.String("path", path))
	}
	summary.Warnings = w.Warnings()

	if cfg.Output.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.Output.MetricsFile, promReg); err != nil {
			return nil, tderrors.OutputWrite(cfg.Output.MetricsFile, err)
		}
	}

	printSummary(out, summary)
	logger.Info("Build completed",
		logfields.Count(len(summary.Pages)),
		slog.Int("warnings", len(summary.Warnings)),
		slog.Int("overrides", len(res.State.Override.Applied)))
	return summary, nil
}

func printSummary(out io.Writer, s *BuildSummary) {
	fmt.Fprintf(out, "Wrote %d pages\n", len(s.Pages))
	if len(s.Warnings) == 0 {
		return
	}
	counts := make(map[warnings.Category]int)
	for _, wn := range s.Warnings {
		counts[wn.Category]++
	}
	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	fmt.Fprintf(out, "%d warnings:\n", len(s.Warnings))
	for _, c := range cats {
		fmt.Fprintf(out, "  %-18s %d\n", c, counts[warnings.Category(c)])
	}
}
