package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/internal/schema"
)

// Process runs ExtractingAudio, Transcribing and then either
// WritingTranscript or Generating plus WritingArtifacts. The branch is fixed
// by job.TranscriptOnly before the first stage runs. Any failure ends the job
// with a *StageError naming the stage.
func (p *implProcessor) Process(ctx context.Context, job Job) (*Result, error) {
	startTime := time.Now()
	if job.ID != "" {
		ctx = logger.WithJobID(ctx, job.ID)
	}

	total := 4
	if job.TranscriptOnly {
		total = 3
	}
	index := 0
	step := func(stage Stage, label string) {
		index++
		p.reporter.Step(ctx, Step{Index: index, Total: total, Stage: stage, Label: label})
	}

	p.logger.Info(ctx, "Starting video processing: %s", job.VideoPath)

	step(StageExtractingAudio, "Extracting audio")
	audioPath, err := p.extractAudio(ctx, job)
	if err != nil {
		return nil, p.fail(ctx, StageExtractingAudio, err)
	}

	step(StageTranscribing, "Transcribing")
	rec, err := p.transcriber.Transcribe(ctx, audioPath, job.OutputDir)
	if err != nil {
		return nil, p.fail(ctx, StageTranscribing, err)
	}

	var (
		files []string
		out   *schema.Output
	)
	if job.TranscriptOnly {
		step(StageWritingTranscript, "Writing transcript")
		files, err = p.writer.WriteTranscript(ctx, job.OutputDir, rec)
		if err != nil {
			return nil, p.fail(ctx, StageWritingTranscript, err)
		}
	} else {
		step(StageGenerating, "Generating content")
		out, err = p.generator.Generate(ctx, rec.Text)
		if err != nil {
			return nil, p.fail(ctx, StageGenerating, err)
		}

		step(StageWritingArtifacts, "Writing artifacts")
		files, err = p.writer.Write(ctx, job.OutputDir, out, rec)
		if err != nil {
			return nil, p.fail(ctx, StageWritingArtifacts, err)
		}
	}

	produced := append([]string{AudioFile}, files...)
	if p.cfg.Output.RemoveAudio && p.cleanupTempFile(ctx, audioPath) {
		produced = files
	}

	if p.cfg.Paths.Archived != "" {
		if err := p.archiveSource(ctx, job.VideoPath); err != nil {
			p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}
	}

	res := Result{
		OutputDir: job.OutputDir,
		Elapsed:   time.Since(startTime),
		Files:     produced,
		Output:    out,
	}
	p.reporter.Done(ctx, res)
	return &res, nil
}

func (p *implProcessor) fail(ctx context.Context, stage Stage, err error) error {
	stageErr := &StageError{Stage: stage, Err: err}
	p.reporter.Failed(ctx, stageErr)
	return stageErr
}
