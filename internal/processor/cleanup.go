package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/vidkit/internal/fsutil"
)

// archiveSource moves the source video into the archive folder.
func (p *implProcessor) archiveSource(ctx context.Context, videoPath string) error {
	if err := fsutil.EnsureDir(p.cfg.Paths.Archived); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(videoPath))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", videoPath, destPath)

	if err := os.Rename(videoPath, destPath); err != nil {
		// Rename fails across filesystems; fall back to copy and remove.
		if err := copyFile(videoPath, destPath); err != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if err := os.Remove(videoPath); err != nil {
			return fmt.Errorf("remove archived source: %w", err)
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	return out.Close()
}

// cleanupTempFile removes a file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) bool {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
		return false
	}
	p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	return true
}
