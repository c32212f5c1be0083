package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/fsutil"
	"github.com/nguyentantai21042004/vidkit/internal/generator"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/internal/processor"
	"github.com/nguyentantai21042004/vidkit/internal/transcriber"
	"github.com/nguyentantai21042004/vidkit/internal/ui"
	"github.com/nguyentantai21042004/vidkit/internal/watcher"
	"github.com/nguyentantai21042004/vidkit/internal/writer"
	"github.com/nguyentantai21042004/vidkit/pkg/executor"
)

type app struct {
	cfg       *config.Config
	logger    logger.Logger
	processor processor.Processor
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newApp wires every pipeline component from one configuration.
func newApp(cfg *config.Config, interactive bool) *app {
	log := logger.New(cfg.Logging.Level)

	var rep processor.Reporter
	if interactive {
		rep = ui.NewReporter(log)
	}

	exec := executor.New()
	proc := processor.New(cfg, exec,
		transcriber.New(cfg, exec, log),
		generator.New(cfg, log),
		writer.New(cfg.Output, log),
		rep, log)

	return &app{cfg: cfg, logger: log, processor: proc}
}

func runSingle(cmd *cobra.Command, opts *options, videoPath string) error {
	if !fsutil.Exists(videoPath) {
		return fmt.Errorf("file not found: %s", videoPath)
	}
	if fsutil.IsDir(videoPath) {
		return fmt.Errorf("not a video file: %s is a directory", videoPath)
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	a := newApp(cfg, true)

	job, err := processor.NewJob(videoPath, cfg.Paths.Output, opts.transcriptOnly)
	if err != nil {
		return fmt.Errorf("resolve job paths: %w", err)
	}

	res, err := a.processor.Process(cmd.Context(), job)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nDone in %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "Output: %s\n", res.OutputDir)
	fmt.Fprintf(out, "Files:\n  - %s\n", strings.Join(res.Files, "\n  - "))

	if opts.transcriptOnly {
		return nil
	}

	if opts.preview {
		for _, name := range []string{writer.YouTubeFile, writer.SocialsFile} {
			content, err := os.ReadFile(filepath.Join(res.OutputDir, name))
			if err != nil {
				a.logger.Warn(cmd.Context(), "Failed to read %s for preview: %v", name, err)
				continue
			}
			rendered, err := ui.RenderMarkdown(string(content))
			if err != nil {
				a.logger.Warn(cmd.Context(), "Failed to render %s: %v", name, err)
				continue
			}
			fmt.Fprint(out, rendered)
		}
	}

	if opts.copy {
		content, err := os.ReadFile(filepath.Join(res.OutputDir, writer.YouTubeFile))
		if err == nil {
			err = ui.CopyToClipboard(string(content))
		}
		if err != nil {
			a.logger.Warn(cmd.Context(), "Failed to copy %s: %v", writer.YouTubeFile, err)
		} else {
			fmt.Fprintf(out, "%s copied to clipboard\n", writer.YouTubeFile)
		}
	}

	return nil
}

func runWatch(cmd *cobra.Command, opts *options, dir string) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.Paths.Watch
	}
	if err := fsutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}

	a := newApp(cfg, false)
	ctx := cmd.Context()

	handler := func(ctx context.Context, path string) error {
		job, err := processor.NewJob(path, cfg.Paths.Output, opts.transcriptOnly)
		if err != nil {
			return err
		}
		_, err = a.processor.Process(ctx, job)
		return err
	}

	w, err := watcher.New(dir, handler, a.logger, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.logger.Info(ctx, "Watching %s (output: %s). Press Ctrl+C to stop", dir, cfg.Paths.Output)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info(ctx, "vidkit stopped")
	return nil
}
