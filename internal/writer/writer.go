package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/vidkit/internal/fsutil"
	"github.com/nguyentantai21042004/vidkit/internal/schema"
	"github.com/nguyentantai21042004/vidkit/internal/transcriber"
)

type fileWriter struct {
	dir     string
	written []string
}

func (f *fileWriter) write(name string, content []byte) error {
	if err := os.WriteFile(filepath.Join(f.dir, name), content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	f.written = append(f.written, name)
	return nil
}

func (w *implWriter) Write(ctx context.Context, outputDir string, out *schema.Output, rec transcriber.Record) ([]string, error) {
	if err := fsutil.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	fw := &fileWriter{dir: outputDir}
	if err := w.writeTranscript(fw, rec); err != nil {
		return fw.written, err
	}

	if err := fw.write(YouTubeFile, []byte(renderYouTube(out.YouTube))); err != nil {
		return fw.written, err
	}
	if err := fw.write(SocialsFile, []byte(renderSocials(out.Socials))); err != nil {
		return fw.written, err
	}
	if out.Blog != nil {
		if err := fw.write(BlogFile, []byte(out.Blog.Content)); err != nil {
			return fw.written, err
		}
	}

	if w.cfg.JSON {
		if err := writeJSON(fw, YouTubeJSON, out.YouTube); err != nil {
			return fw.written, err
		}
		if err := writeJSON(fw, SocialsJSON, out.Socials); err != nil {
			return fw.written, err
		}
	}

	if w.cfg.Docx {
		if out.Blog != nil {
			if err := markdownToDocx(out.Blog.Title, out.Blog.Content, filepath.Join(outputDir, BlogDocx)); err != nil {
				return fw.written, fmt.Errorf("write %s: %w", BlogDocx, err)
			}
			fw.written = append(fw.written, BlogDocx)
		}
		if err := w.writeTranscriptDocx(fw, rec); err != nil {
			return fw.written, err
		}
	}

	w.logger.Info(ctx, "Wrote %d files to %s", len(fw.written), outputDir)
	return fw.written, nil
}

func (w *implWriter) WriteTranscript(ctx context.Context, outputDir string, rec transcriber.Record) ([]string, error) {
	if err := fsutil.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	fw := &fileWriter{dir: outputDir}
	if err := w.writeTranscript(fw, rec); err != nil {
		return fw.written, err
	}

	if w.cfg.Docx {
		if err := w.writeTranscriptDocx(fw, rec); err != nil {
			return fw.written, err
		}
	}

	w.logger.Info(ctx, "Wrote transcript files to %s", outputDir)
	return fw.written, nil
}

func (w *implWriter) writeTranscript(fw *fileWriter, rec transcriber.Record) error {
	if err := fw.write(SRTFile, []byte(rec.Raw)); err != nil {
		return err
	}
	return fw.write(TextFile, []byte(rec.Text))
}

func (w *implWriter) writeTranscriptDocx(fw *fileWriter, rec transcriber.Record) error {
	title := filepath.Base(fw.dir)
	if err := srtToDocx(title, rec.Raw, filepath.Join(fw.dir, TranscriptDocx)); err != nil {
		return fmt.Errorf("write %s: %w", TranscriptDocx, err)
	}
	fw.written = append(fw.written, TranscriptDocx)
	return nil
}

func writeJSON(fw *fileWriter, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return fw.write(name, append(data, '\n'))
}
