package transcriber

import (
	"net/http"

	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/pkg/executor"
)

type implTranscriber struct {
	backend Backend
	logger  logger.Logger
}

// New creates a Transcriber backed by the HTTP transcription service when
// one is configured and by a local whisper.cpp binary otherwise.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	var backend Backend
	if cfg.Transcription.APIURL != "" {
		backend = NewHTTPBackend(cfg.Transcription, http.DefaultClient)
	} else {
		backend = NewCLIBackend(cfg.Whisper, cfg.Transcription.Language, exec, log)
	}
	return NewWithBackend(backend, log)
}

// NewWithBackend wraps an arbitrary backend with the transcript cache.
func NewWithBackend(backend Backend, log logger.Logger) Transcriber {
	return &implTranscriber{
		backend: backend,
		logger:  log,
	}
}
