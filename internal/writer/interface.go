package writer

import (
	"context"

	"github.com/nguyentantai21042004/vidkit/internal/schema"
	"github.com/nguyentantai21042004/vidkit/internal/transcriber"
)

// Artifact file names inside a job's output directory.
const (
	SRTFile        = "transcript.srt"
	TextFile       = "transcript.txt"
	YouTubeFile    = "youtube.md"
	SocialsFile    = "socials.md"
	BlogFile       = "blog.md"
	YouTubeJSON    = "youtube.json"
	SocialsJSON    = "socials.json"
	BlogDocx       = "blog.docx"
	TranscriptDocx = "transcript.docx"
)

// Writer renders job results to disk. Both methods return the names of the
// files written, in write order. A failed write stops the job; earlier files
// stay on disk.
type Writer interface {
	Write(ctx context.Context, outputDir string, out *schema.Output, rec transcriber.Record) ([]string, error)
	WriteTranscript(ctx context.Context, outputDir string, rec transcriber.Record) ([]string, error)
}
