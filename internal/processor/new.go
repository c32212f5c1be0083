package processor

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/fsutil"
	"github.com/nguyentantai21042004/vidkit/internal/generator"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/internal/transcriber"
	"github.com/nguyentantai21042004/vidkit/internal/writer"
	"github.com/nguyentantai21042004/vidkit/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	generator   generator.Generator
	writer      writer.Writer
	reporter    Reporter
	logger      logger.Logger
}

// New creates a Processor. A nil reporter logs steps through log.
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, gen generator.Generator, wr writer.Writer, rep Reporter, log logger.Logger) Processor {
	if rep == nil {
		rep = NewLogReporter(log)
	}
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		generator:   gen,
		writer:      wr,
		reporter:    rep,
		logger:      log,
	}
}

// NewJob builds a Job for videoPath with an absolute source path and an
// output directory derived from outRoot.
func NewJob(videoPath, outRoot string, transcriptOnly bool) (Job, error) {
	abs, err := filepath.Abs(videoPath)
	if err != nil {
		return Job{}, err
	}
	return Job{
		ID:             uuid.NewString()[:8],
		VideoPath:      abs,
		OutputDir:      fsutil.OutputDir(abs, outRoot),
		TranscriptOnly: transcriptOnly,
	}, nil
}
