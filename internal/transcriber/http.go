package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/vidkit/internal/config"
)

// BackendError is a failed call to the transcription service.
type BackendError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *BackendError) Error() string {
	if e.Err != nil && e.StatusCode == 0 {
		return fmt.Sprintf("transcription backend: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("transcription backend returned malformed response (HTTP %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transcription backend error (HTTP %d): %s", e.StatusCode, e.Body)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

type httpBackend struct {
	cfg    config.TranscriptionConfig
	client *http.Client
}

// NewHTTPBackend talks to a whisper-style HTTP service exposing
// POST <api_url>/transcribe.
func NewHTTPBackend(cfg config.TranscriptionConfig, client *http.Client) Backend {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpBackend{cfg: cfg, client: client}
}

type transcribeResponse struct {
	Text     string `json:"text"`
	SRT      string `json:"srt"`
	Segments []struct {
		Text string `json:"text"`
	} `json:"segments"`
}

func (b *httpBackend) Transcribe(ctx context.Context, audioPath string) (Record, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return Record{}, fmt.Errorf("read audio: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return Record{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return Record{}, fmt.Errorf("write audio part: %w", err)
	}

	fields := [][2]string{{"task", b.cfg.Task}}
	if b.cfg.Language != "" {
		fields = append(fields, [2]string{"language", b.cfg.Language})
	}
	if b.cfg.WordTimestamps {
		fields = append(fields, [2]string{"word_ts", "true"})
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return Record{}, fmt.Errorf("write field %s: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return Record{}, fmt.Errorf("close multipart writer: %w", err)
	}

	url := strings.TrimRight(b.cfg.APIURL, "/") + "/transcribe"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return Record{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := b.client.Do(req)
	if err != nil {
		return Record{}, &BackendError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Record{}, &BackendError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Record{}, &BackendError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed transcribeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Record{}, &BackendError{StatusCode: resp.StatusCode, Body: string(respBody), Err: err}
	}

	if parsed.Text == "" && parsed.SRT == "" && len(parsed.Segments) == 0 {
		return Record{}, &BackendError{StatusCode: resp.StatusCode, Body: string(respBody), Err: errors.New("response has no transcript")}
	}

	raw := parsed.SRT
	if raw == "" {
		texts := make([]string, 0, len(parsed.Segments))
		for _, s := range parsed.Segments {
			texts = append(texts, s.Text)
		}
		raw = strings.Join(texts, "\n")
	}

	return Record{Text: parsed.Text, Raw: raw}, nil
}
