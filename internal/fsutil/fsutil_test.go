package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !Exists(nested) {
		t.Fatal("directory was not created")
	}
	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "video.mp4")
	if Exists(file) {
		t.Error("Exists() = true before file was written")
	}
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(file) {
		t.Error("Exists() = false for existing file")
	}
}

func TestIsDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "video.mp4")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{root, true},
		{file, false},
		{filepath.Join(root, "missing"), false},
	}
	for _, tt := range tests {
		if got := IsDir(tt.path); got != tt.want {
			t.Errorf("IsDir(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestBaseNameNoExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/videos/tutorial.mp4", "tutorial"},
		{"tutorial.final.mp4", "tutorial.final"},
		{"noext", "noext"},
		{"/a/b/.hidden", ""},
	}
	for _, tt := range tests {
		if got := BaseNameNoExt(tt.in); got != tt.want {
			t.Errorf("BaseNameNoExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputDirDeterministic(t *testing.T) {
	root := t.TempDir()
	a := OutputDir("/videos/tutorial.mp4", root)
	b := OutputDir("/videos/tutorial.mp4", root)
	if a != b {
		t.Fatalf("OutputDir not stable: %q vs %q", a, b)
	}
	if want := filepath.Join(root, "tutorial"); a != want {
		t.Errorf("OutputDir() = %q, want %q", a, want)
	}
	if !filepath.IsAbs(OutputDir("clip.mp4", "dist")) {
		t.Error("OutputDir() should be absolute for a relative root")
	}
}

func TestOutputDirBasenameCollision(t *testing.T) {
	root := t.TempDir()
	a := OutputDir("/camera/day1/intro.mp4", root)
	b := OutputDir("/phone/intro.mov", root)
	if a != b {
		t.Errorf("inputs sharing a basename should collide: %q vs %q", a, b)
	}
}
