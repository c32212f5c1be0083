package writer

import (
	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
)

type implWriter struct {
	cfg    config.OutputConfig
	logger logger.Logger
}

// New creates a Writer. cfg switches the optional JSON and docx artifacts.
func New(cfg config.OutputConfig, log logger.Logger) Writer {
	return &implWriter{
		cfg:    cfg,
		logger: log,
	}
}
