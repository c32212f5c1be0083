package transcriber

import "context"

// Cache file names inside a job's output directory. Both present means the
// job has already been transcribed.
const (
	TextFile = "transcript.txt"
	RawFile  = "original_transcript.txt"
)

// Record is a completed transcript. Raw keeps the backend's original
// rendering (SRT when the backend offers it) separate from the plain text.
type Record struct {
	Text string
	Raw  string
}

// Transcriber turns an audio file into a Record, consulting the cache in
// outputDir before calling any backend.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, outputDir string) (Record, error)
}

// Backend performs the actual speech-to-text call.
type Backend interface {
	Transcribe(ctx context.Context, audioPath string) (Record, error)
}
