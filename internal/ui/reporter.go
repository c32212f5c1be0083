package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/internal/processor"
)

// NewReporter shows a progress bar on stderr when it is a terminal and falls
// back to log lines otherwise.
func NewReporter(log logger.Logger) processor.Reporter {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return NewProgressReporter(os.Stderr, log)
	}
	return processor.NewLogReporter(log)
}

type progressReporter struct {
	mu     sync.Mutex
	w      io.Writer
	bar    *progressbar.ProgressBar
	logger logger.Logger
}

// NewProgressReporter draws one bar per job on w.
func NewProgressReporter(w io.Writer, log logger.Logger) processor.Reporter {
	return &progressReporter{w: w, logger: log}
}

func (r *progressReporter) Step(ctx context.Context, step processor.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	desc := fmt.Sprintf("[%d/%d] %s", step.Index, step.Total, step.Label)
	if r.bar == nil {
		r.bar = progressbar.NewOptions(step.Total,
			progressbar.OptionSetWriter(r.w),
			progressbar.OptionSetDescription(desc),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}
	r.bar.Describe(desc)
	r.bar.Set(step.Index - 1)
	r.logger.Debug(ctx, "%s", desc)
}

func (r *progressReporter) Done(ctx context.Context, res processor.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bar != nil {
		r.bar.Finish()
		r.bar = nil
	}
	r.logger.Info(ctx, "Processing completed in %s", res.Elapsed)
}

func (r *progressReporter) Failed(ctx context.Context, err *processor.StageError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.bar != nil {
		r.bar.Exit()
		r.bar = nil
		fmt.Fprintln(r.w)
	}
	r.logger.Error(ctx, "Job failed during %s: %v", err.Stage, err.Err)
}
