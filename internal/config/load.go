package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the YAML file at path (skipped when path is empty), overlays the
// process environment and validates the result.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment.
func LoadWithEnv(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPath returns the first existing config file among
// $XDG_CONFIG_HOME/vidkit/config.yaml and ./config.yaml, or "".
func DefaultPath() string {
	candidates := []string{
		filepath.Join(xdg.ConfigHome, "vidkit", "config.yaml"),
		"config.yaml",
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("WHISPER_API_URL", &cfg.Transcription.APIURL)
	str("WHISPER_API_LANGUAGE", &cfg.Transcription.Language)
	str("WHISPER_API_TASK", &cfg.Transcription.Task)
	str("WHISPER_BIN", &cfg.Whisper.BinaryPath)
	str("WHISPER_MODEL", &cfg.Whisper.ModelPath)
	str("FFMPEG_BIN", &cfg.FFmpeg.BinaryPath)

	str("LLM_PROVIDER", &cfg.Generation.Provider)
	cfg.Generation.Provider = strings.ToLower(cfg.Generation.Provider)
	str("LLM_MODEL", &cfg.Generation.Model)
	str("PIPELINE_PROFILE", &cfg.Generation.Profile)
	cfg.Generation.Profile = strings.ToLower(cfg.Generation.Profile)
	str("OUTPUT_LANGUAGE", &cfg.Generation.Language)

	str("OPENAI_API_KEY", &cfg.Generation.OpenAI.APIKey)
	str("API_BASE", &cfg.Generation.OpenAI.BaseURL)
	str("OPENAI_MODEL", &cfg.Generation.OpenAI.Model)
	str("OLLAMA_API_KEY", &cfg.Generation.Ollama.APIKey)
	str("OLLAMA_API_BASE", &cfg.Generation.Ollama.BaseURL)
	str("OLLAMA_MODEL", &cfg.Generation.Ollama.Model)
	str("GEMINI_API_KEY", &cfg.Generation.Gemini.APIKey)
	str("GEMINI_MODEL", &cfg.Generation.Gemini.Model)

	str("OUT_DIR", &cfg.Paths.Output)
	str("WATCH_DIR", &cfg.Paths.Watch)
	str("ARCHIVE_DIR", &cfg.Paths.Archived)
	str("LOG_LEVEL", &cfg.Logging.Level)

	if v, ok := lookup("WHISPER_API_WORD_TS"); ok && v != "" {
		cfg.Transcription.WordTimestamps = strings.EqualFold(v, "true")
	}
	if v, ok := lookup("WHISPER_THREADS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Key: "WHISPER_THREADS", Reason: fmt.Sprintf("not a number: %q", v)}
		}
		cfg.Whisper.Threads = n
	}
	if v, ok := lookup("MAX_CONCURRENT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Key: "MAX_CONCURRENT", Reason: fmt.Sprintf("not a number: %q", v)}
		}
		cfg.Performance.MaxConcurrent = n
	}

	return nil
}
