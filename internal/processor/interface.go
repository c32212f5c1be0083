package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/vidkit/internal/schema"
)

// Processor runs the video pipeline for one job at a time. It is safe for
// concurrent use by multiple jobs.
type Processor interface {
	Process(ctx context.Context, job Job) (*Result, error)
}

// Job is one video-to-artifacts run.
type Job struct {
	ID             string
	VideoPath      string
	OutputDir      string
	TranscriptOnly bool
}

// Result summarizes a successful job.
type Result struct {
	OutputDir string
	Elapsed   time.Duration
	Files     []string
	// Output is nil for transcript-only jobs.
	Output *schema.Output
}

type Stage string

const (
	StageExtractingAudio   Stage = "ExtractingAudio"
	StageTranscribing      Stage = "Transcribing"
	StageWritingTranscript Stage = "WritingTranscript"
	StageGenerating        Stage = "Generating"
	StageWritingArtifacts  Stage = "WritingArtifacts"
	StageDone              Stage = "Done"
	StageFailed            Stage = "Failed"
)

// Step is reported before a stage starts.
type Step struct {
	Index int
	Total int
	Stage Stage
	Label string
}

// Reporter observes job progress.
type Reporter interface {
	Step(ctx context.Context, step Step)
	Done(ctx context.Context, res Result)
	Failed(ctx context.Context, err *StageError)
}
