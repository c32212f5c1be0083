package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/vidkit/internal/fsutil"
)

// Transcribe returns the cached transcript when both cache files are
// readable. Otherwise it calls the backend and persists the result; nothing
// is written unless the backend succeeded.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, outputDir string) (Record, error) {
	if rec, ok := readCache(outputDir); ok {
		t.logger.Info(ctx, "Using cached transcript in %s", outputDir)
		return rec, nil
	}

	t.logger.Info(ctx, "Transcribing %s", audioPath)
	rec, err := t.backend.Transcribe(ctx, audioPath)
	if err != nil {
		return Record{}, err
	}

	if err := writeCache(outputDir, rec); err != nil {
		return Record{}, err
	}

	t.logger.Info(ctx, "Transcript saved (%d characters)", len(rec.Text))
	return rec, nil
}

func readCache(dir string) (Record, bool) {
	text, err := os.ReadFile(filepath.Join(dir, TextFile))
	if err != nil {
		return Record{}, false
	}
	raw, err := os.ReadFile(filepath.Join(dir, RawFile))
	if err != nil {
		return Record{}, false
	}
	return Record{Text: string(text), Raw: string(raw)}, true
}

// writeCache stages both files under temporary names and renames them into
// place. On failure neither cache file is left behind.
func writeCache(dir string, rec Record) error {
	if err := fsutil.EnsureDir(dir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := []struct{ name, content string }{
		{TextFile, rec.Text},
		{RawFile, rec.Raw},
	}

	staged := make([]string, 0, len(files))
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()
	for _, f := range files {
		tmp, err := stageFile(dir, f.name, f.content)
		if err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := os.Rename(staged[i], filepath.Join(dir, f.name)); err != nil {
			for _, done := range files[:i] {
				os.Remove(filepath.Join(dir, done.name))
			}
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}

func stageFile(dir, name, content string) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
