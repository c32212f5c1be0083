package writer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/logger"
	"github.com/nguyentantai21042004/vidkit/internal/schema"
	"github.com/nguyentantai21042004/vidkit/internal/transcriber"
)

func sampleOutput() *schema.Output {
	return &schema.Output{
		YouTube: schema.YouTube{
			Title:       "Build a CLI in Go",
			Description: "Description text",
			Tags:        []string{"go", "cli"},
			Chapters: []schema.Chapter{
				{Start: "00:00", Title: "Intro"},
				{Start: "01:30", Title: "Setup"},
			},
		},
		Socials: schema.Socials{
			X:        schema.XPost{Main: "Main post", Thread: []string{"First", "Second"}},
			Bluesky:  schema.BlueskyPost{Post: "Sky post"},
			LinkedIn: schema.LinkedInPost{Post: "Linked post", Hashtags: []string{"golang", "dev"}},
			Reddit:   schema.RedditPost{Title: "Reddit title", Body: "Reddit body"},
		},
		Blog: &schema.Blog{Title: "Blog title", Content: "## Intro\n\nSome **bold** text.\n\n```go\nfunc main() {}\n```\n- item\n"},
	}
}

func TestRenderYouTube(t *testing.T) {
	got := renderYouTube(sampleOutput().YouTube)
	want := "# YouTube\n\n" +
		"**Title**\n\nBuild a CLI in Go\n\n" +
		"**Description**\n\nDescription text\n\n" +
		"**Tags**\n\n#go #cli\n\n" +
		"**Chapters**\n\n- 00:00 — Intro\n- 01:30 — Setup\n"
	if got != want {
		t.Errorf("renderYouTube =\n%q\nwant\n%q", got, want)
	}

	yt := sampleOutput().YouTube
	yt.Chapters = nil
	if strings.Contains(renderYouTube(yt), "Chapters") {
		t.Error("chapters section should be omitted")
	}
}

func TestRenderSocials(t *testing.T) {
	got := renderSocials(sampleOutput().Socials)
	want := "# Social Copy\n\n" +
		"## X (Tweet)\nMain post\n" +
		"\n**Thread**\n1. First\n2. Second" +
		"\n\n## Bluesky\nSky post\n\n" +
		"## LinkedIn\nLinked post\n\n#golang #dev\n\n" +
		"## Reddit\n**Title:** Reddit title\n\nReddit body\n"
	if got != want {
		t.Errorf("renderSocials =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderSocials_Order(t *testing.T) {
	s := sampleOutput().Socials
	s.X.Thread = nil
	s.LinkedIn.Hashtags = nil
	got := renderSocials(s)

	last := -1
	for _, h := range []string{"## X (Tweet)", "## Bluesky", "## LinkedIn", "## Reddit"} {
		idx := strings.Index(got, h)
		if idx <= last {
			t.Fatalf("section %q out of order in %q", h, got)
		}
		last = idx
	}
	if strings.Contains(got, "Thread") || strings.Contains(got, "#golang") {
		t.Errorf("optional sections should be omitted: %q", got)
	}
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tutorial")
	w := New(config.OutputConfig{}, logger.Discard())
	out := sampleOutput()

	files, err := w.Write(context.Background(), dir, out, transcriber.Record{Text: "hello world", Raw: "1\nhello world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{SRTFile, TextFile, YouTubeFile, SocialsFile, BlogFile}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", files, want)
	}

	if got := readFile(t, dir, SRTFile); got != "1\nhello world" {
		t.Errorf("srt = %q", got)
	}
	if got := readFile(t, dir, TextFile); got != "hello world" {
		t.Errorf("txt = %q", got)
	}
	if got := readFile(t, dir, BlogFile); got != out.Blog.Content {
		t.Errorf("blog = %q", got)
	}
	if !strings.Contains(readFile(t, dir, YouTubeFile), "Build a CLI in Go") {
		t.Error("youtube.md missing title")
	}
}

func TestWrite_NoBlog(t *testing.T) {
	dir := t.TempDir()
	out := sampleOutput()
	out.Blog = nil

	files, err := New(config.OutputConfig{Docx: true}, logger.Discard()).Write(context.Background(), dir, out, transcriber.Record{Text: "t", Raw: "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range files {
		if f == BlogFile || f == BlogDocx {
			t.Errorf("unexpected %s", f)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, BlogFile)); !os.IsNotExist(err) {
		t.Error("blog.md should not exist")
	}
}

func TestWrite_Optional(t *testing.T) {
	dir := t.TempDir()
	w := New(config.OutputConfig{JSON: true, Docx: true}, logger.Discard())

	files, err := w.Write(context.Background(), dir, sampleOutput(), transcriber.Record{
		Text: "hello world",
		Raw:  "1\n00:00:00,000 --> 00:00:01,000\nhello world\n\n2\n00:00:01,000 --> 00:00:02,000\nhello world\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{YouTubeJSON, SocialsJSON, BlogDocx, TranscriptDocx} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty (%v)", name, err)
		}
	}
	if len(files) != 9 {
		t.Errorf("files = %v", files)
	}

	var yt schema.YouTube
	if err := json.Unmarshal([]byte(readFile(t, dir, YouTubeJSON)), &yt); err != nil {
		t.Fatalf("youtube.json: %v", err)
	}
	if yt.Title != "Build a CLI in Go" || len(yt.Chapters) != 2 {
		t.Errorf("youtube.json = %+v", yt)
	}
}

func TestWriteTranscript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "job")
	files, err := New(config.OutputConfig{}, logger.Discard()).WriteTranscript(context.Background(), dir, transcriber.Record{Text: "plain", Raw: "raw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(files, ",") != SRTFile+","+TextFile {
		t.Errorf("files = %v", files)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("dir has %d entries, want 2", len(entries))
	}
}

func TestWrite_Failure(t *testing.T) {
	dir := t.TempDir()
	// A directory where a file is expected makes that single write fail.
	if err := os.Mkdir(filepath.Join(dir, SocialsFile), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := New(config.OutputConfig{}, logger.Discard()).Write(context.Background(), dir, sampleOutput(), transcriber.Record{Text: "t", Raw: "t"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), SocialsFile) {
		t.Errorf("error = %v", err)
	}
	if strings.Join(files, ",") != strings.Join([]string{SRTFile, TextFile, YouTubeFile}, ",") {
		t.Errorf("files written before failure = %v", files)
	}
	if _, err := os.Stat(filepath.Join(dir, YouTubeFile)); err != nil {
		t.Error("earlier files should stay on disk")
	}
}
