package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{
			name:   "valid api config",
			mutate: func(c *Config) { c.Transcription.APIURL = "http://whisper:9000" },
		},
		{
			name: "valid local whisper config",
			mutate: func(c *Config) {
				c.Whisper.BinaryPath = "./whisper-cli"
				c.Whisper.ModelPath = "models/ggml-base.bin"
			},
		},
		{
			name:    "missing transcription backend",
			mutate:  func(c *Config) {},
			wantKey: "WHISPER_API_URL",
		},
		{
			name: "local whisper without model",
			mutate: func(c *Config) {
				c.Whisper.BinaryPath = "./whisper-cli"
			},
			wantKey: "WHISPER_API_URL",
		},
		{
			name: "openai without key",
			mutate: func(c *Config) {
				c.Transcription.APIURL = "http://whisper:9000"
				c.Generation.Provider = ProviderOpenAI
			},
			wantKey: "OPENAI_API_KEY",
		},
		{
			name: "gemini without key",
			mutate: func(c *Config) {
				c.Transcription.APIURL = "http://whisper:9000"
				c.Generation.Provider = ProviderGemini
			},
			wantKey: "GEMINI_API_KEY",
		},
		{
			name: "unknown provider",
			mutate: func(c *Config) {
				c.Transcription.APIURL = "http://whisper:9000"
				c.Generation.Provider = "bard"
			},
			wantKey: "LLM_PROVIDER",
		},
		{
			name: "unknown profile",
			mutate: func(c *Config) {
				c.Transcription.APIURL = "http://whisper:9000"
				c.Generation.Profile = "podcast"
			},
			wantKey: "PIPELINE_PROFILE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("ConfigError.Key = %q, want %q", cfgErr.Key, tt.wantKey)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
transcription:
  api_url: "http://whisper:9000/"
  language: "en"

generation:
  provider: "ollama"
  ollama:
    base_url: "http://gpu-box:11434"
    model: "qwen2.5:14b"

paths:
  output: "out"
  watch: "incoming"

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithEnv(path, envMap(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcription.APIURL != "http://whisper:9000" {
		t.Errorf("APIURL = %q", cfg.Transcription.APIURL)
	}
	if cfg.Transcription.Task != "transcribe" {
		t.Errorf("Task = %q, want default transcribe", cfg.Transcription.Task)
	}
	if cfg.Generation.Ollama.BaseURL != "http://gpu-box:11434/v1" {
		t.Errorf("Ollama.BaseURL = %q", cfg.Generation.Ollama.BaseURL)
	}
	if got := cfg.Generation.ModelFor(ProviderOllama); got != "qwen2.5:14b" {
		t.Errorf("ModelFor(ollama) = %q", got)
	}
	if cfg.Paths.Output != "out" || cfg.Paths.Watch != "incoming" {
		t.Errorf("Paths = %+v", cfg.Paths)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
transcription:
  api_url: "http://from-file:9000"
paths:
  output: "from-file"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithEnv(path, envMap(map[string]string{
		"WHISPER_API_URL":     "http://from-env:9000",
		"WHISPER_API_WORD_TS": "true",
		"OUT_DIR":             "from-env",
		"OPENAI_API_KEY":      "sk-test",
		"API_BASE":            "https://proxy.example.com/",
		"LLM_PROVIDER":        "OpenAI",
		"MAX_CONCURRENT":      "3",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcription.APIURL != "http://from-env:9000" {
		t.Errorf("APIURL = %q", cfg.Transcription.APIURL)
	}
	if !cfg.Transcription.WordTimestamps {
		t.Error("WordTimestamps = false, want true")
	}
	if cfg.Paths.Output != "from-env" {
		t.Errorf("Output = %q", cfg.Paths.Output)
	}
	if cfg.Generation.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q", cfg.Generation.Provider)
	}
	if cfg.Generation.OpenAI.BaseURL != "https://proxy.example.com/v1" {
		t.Errorf("OpenAI.BaseURL = %q", cfg.Generation.OpenAI.BaseURL)
	}
	if cfg.Performance.MaxConcurrent != 3 {
		t.Errorf("MaxConcurrent = %d", cfg.Performance.MaxConcurrent)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := LoadWithEnv("", envMap(map[string]string{"WHISPER_API_URL": "http://whisper:9000"}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Paths.Output != "./dist" || cfg.Paths.Watch != "./inbox" {
		t.Errorf("default paths = %+v", cfg.Paths)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidNumber(t *testing.T) {
	_, err := LoadWithEnv("", envMap(map[string]string{
		"WHISPER_API_URL": "http://whisper:9000",
		"WHISPER_THREADS": "many",
	}))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Key != "WHISPER_THREADS" {
		t.Fatalf("error = %v, want ConfigError for WHISPER_THREADS", err)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://api.openai.com/v1", "https://api.openai.com/v1"},
		{"https://api.openai.com/v1/", "https://api.openai.com/v1"},
		{"http://localhost:11434", "http://localhost:11434/v1"},
		{"http://localhost:11434/", "http://localhost:11434/v1"},
	}
	for _, tt := range tests {
		if got := NormalizeBaseURL(tt.in); got != tt.want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveProvider(t *testing.T) {
	g := Default().Generation
	if got := g.ResolveProvider(); got != ProviderOllama {
		t.Errorf("auto without key = %q, want ollama", got)
	}
	if got := g.ModelFor(g.ResolveProvider()); got != DefaultOllamaModel {
		t.Errorf("model = %q", got)
	}

	g.OpenAI.APIKey = "sk-test"
	if got := g.ResolveProvider(); got != ProviderOpenAI {
		t.Errorf("auto with key = %q, want openai", got)
	}
	if got := g.ModelFor(g.ResolveProvider()); got != DefaultOpenAIModel {
		t.Errorf("model = %q", got)
	}

	g.Provider = ProviderGemini
	if got := g.ResolveProvider(); got != ProviderGemini {
		t.Errorf("explicit gemini = %q", got)
	}

	g.Model = "override"
	if got := g.ModelFor(ProviderGemini); got != "override" {
		t.Errorf("ModelFor with override = %q", got)
	}
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		profile   string
		wantBlog  bool
		wantNativ bool
		wantLang  string
	}{
		{ProfileFull, true, true, ""},
		{ProfileSocials, false, false, ""},
		{ProfileLocalized, true, true, "es"},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			g := GenerationConfig{Profile: tt.profile}
			p := g.ResolveProfile()
			if p.IncludeBlog != tt.wantBlog || p.NativeSchema != tt.wantNativ || p.Language != tt.wantLang {
				t.Errorf("ResolveProfile() = %+v", p)
			}
		})
	}
}

func TestLocalizedProfileSetsTranscriptionLanguage(t *testing.T) {
	cfg, err := LoadWithEnv("", envMap(map[string]string{
		"WHISPER_API_URL":  "http://whisper:9000",
		"PIPELINE_PROFILE": "localized",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Transcription.Language != "es" {
		t.Errorf("Transcription.Language = %q, want es", cfg.Transcription.Language)
	}
}
