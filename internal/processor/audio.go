package processor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/vidkit/internal/fsutil"
)

// AudioFile is the extracted audio inside a job's output directory.
const AudioFile = "audio_16k.wav"

// extractAudio converts the video's audio track to 16kHz mono WAV, the
// format the transcription backends expect.
func (p *implProcessor) extractAudio(ctx context.Context, job Job) (string, error) {
	if err := fsutil.EnsureDir(job.OutputDir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	audioPath := filepath.Join(job.OutputDir, AudioFile)

	p.logger.Info(ctx, "Extracting audio: %s", job.VideoPath)

	// -y: overwrite, -ac 1: mono, -ar 16000: 16kHz
	args := []string{
		"-y",
		"-i", job.VideoPath,
		"-ac", "1",
		"-ar", "16000",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", toolError("ffmpeg", err)
	}

	p.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
