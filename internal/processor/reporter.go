package processor

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/vidkit/internal/logger"
)

type logReporter struct {
	logger logger.Logger
}

// NewLogReporter reports progress as log lines.
func NewLogReporter(log logger.Logger) Reporter {
	return &logReporter{logger: log}
}

func (r *logReporter) Step(ctx context.Context, step Step) {
	r.logger.Info(ctx, "[%d/%d] %s", step.Index, step.Total, step.Label)
}

func (r *logReporter) Done(ctx context.Context, res Result) {
	r.logger.Info(ctx, "========================================")
	r.logger.Info(ctx, "Processing completed successfully!")
	r.logger.Info(ctx, "Output directory: %s", res.OutputDir)
	r.logger.Info(ctx, "Files: %s", strings.Join(res.Files, ", "))
	r.logger.Info(ctx, "Processing time: %s", res.Elapsed)
	r.logger.Info(ctx, "========================================")
}

func (r *logReporter) Failed(ctx context.Context, err *StageError) {
	r.logger.Error(ctx, "Job failed during %s: %v", err.Stage, err.Err)
}
