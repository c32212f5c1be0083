package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/pkg/executor"
)

type cliBackend struct {
	cfg      config.WhisperConfig
	language string
	executor executor.Executor
	logger   logger.Logger
}

// NewCLIBackend runs a local whisper.cpp build.
func NewCLIBackend(cfg config.WhisperConfig, language string, exec executor.Executor, log logger.Logger) Backend {
	return &cliBackend{
		cfg:      cfg,
		language: language,
		executor: exec,
		logger:   log,
	}
}

// Transcribe writes <audio>.txt and <audio>.srt next to the audio file and
// reads them back.
func (b *cliBackend) Transcribe(ctx context.Context, audioPath string) (Record, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	language := b.language
	if language == "" {
		language = "auto"
	}

	b.logger.Info(ctx, "Running whisper.cpp with %d threads: %s", b.cfg.Threads, audioPath)

	// -otxt/-osrt: write both plain text and SRT next to the prefix
	args := []string{
		"-m", b.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-osrt",
		"-l", language,
		"-t", strconv.Itoa(b.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := b.executor.Execute(ctx, b.cfg.BinaryPath, args...); err != nil {
		return Record{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	srtPath := outputPrefix + ".srt"
	defer b.cleanupTempFile(ctx, txtPath)
	defer b.cleanupTempFile(ctx, srtPath)

	text, err := os.ReadFile(txtPath)
	if err != nil {
		return Record{}, fmt.Errorf("read whisper text output: %w", err)
	}
	srt, err := os.ReadFile(srtPath)
	if err != nil {
		return Record{}, fmt.Errorf("read whisper srt output: %w", err)
	}

	return Record{Text: strings.TrimSpace(string(text)), Raw: string(srt)}, nil
}

func (b *cliBackend) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		b.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}
