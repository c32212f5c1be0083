package config

import (
	"fmt"
	"strings"
)

const (
	ProviderAuto   = "auto"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"

	ProfileFull      = "full"
	ProfileSocials   = "socials"
	ProfileLocalized = "localized"

	DefaultOpenAIBase  = "https://api.openai.com/v1"
	DefaultOllamaBase  = "http://localhost:11434/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOllamaModel = "llama3.1:8b-instruct"
	DefaultGeminiModel = "gemini-2.5-flash"
)

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Whisper       WhisperConfig       `yaml:"whisper"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Generation    GenerationConfig    `yaml:"generation"`
	Paths         PathsConfig         `yaml:"paths"`
	Output        OutputConfig        `yaml:"output"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

// TranscriptionConfig addresses the HTTP transcription service.
type TranscriptionConfig struct {
	APIURL         string `yaml:"api_url"`
	Language       string `yaml:"language"`
	Task           string `yaml:"task"`
	WordTimestamps bool   `yaml:"word_timestamps"`
}

// WhisperConfig addresses a local whisper.cpp build, used only when no
// transcription API URL is configured.
type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type GenerationConfig struct {
	Provider       string         `yaml:"provider"`
	Model          string         `yaml:"model"`
	Profile        string         `yaml:"profile"`
	Language       string         `yaml:"language"`
	StrictChapters bool           `yaml:"strict_chapters"`
	OpenAI         EndpointConfig `yaml:"openai"`
	Ollama         EndpointConfig `yaml:"ollama"`
	Gemini         EndpointConfig `yaml:"gemini"`
}

type EndpointConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type PathsConfig struct {
	Output   string `yaml:"output"`
	Watch    string `yaml:"watch"`
	Archived string `yaml:"archived"`
}

type OutputConfig struct {
	JSON        bool `yaml:"json"`
	Docx        bool `yaml:"docx"`
	RemoveAudio bool `yaml:"remove_audio"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Profile is the resolved pipeline variant.
type Profile struct {
	Name         string
	IncludeBlog  bool
	NativeSchema bool
	Language     string
}

// ConfigError reports a missing or invalid setting.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// Default returns the configuration used before any file or environment
// values are applied.
func Default() *Config {
	return &Config{
		Transcription: TranscriptionConfig{Task: "transcribe"},
		Whisper:       WhisperConfig{Threads: 4},
		FFmpeg:        FFmpegConfig{BinaryPath: "ffmpeg"},
		Generation: GenerationConfig{
			Provider: ProviderAuto,
			Profile:  ProfileFull,
			OpenAI:   EndpointConfig{BaseURL: DefaultOpenAIBase, Model: DefaultOpenAIModel},
			Ollama:   EndpointConfig{APIKey: "ollama", BaseURL: DefaultOllamaBase, Model: DefaultOllamaModel},
			Gemini:   EndpointConfig{Model: DefaultGeminiModel},
		},
		Paths: PathsConfig{
			Output: "./dist",
			Watch:  "./inbox",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func (c *Config) Validate() error {
	if c.Transcription.APIURL == "" && (c.Whisper.BinaryPath == "" || c.Whisper.ModelPath == "") {
		return &ConfigError{Key: "WHISPER_API_URL", Reason: "is not set (or set WHISPER_BIN and WHISPER_MODEL for a local build)"}
	}

	switch c.Generation.Provider {
	case ProviderAuto, ProviderOllama:
	case ProviderOpenAI:
		if c.Generation.OpenAI.APIKey == "" {
			return &ConfigError{Key: "OPENAI_API_KEY", Reason: "is required when LLM_PROVIDER=openai"}
		}
	case ProviderGemini:
		if c.Generation.Gemini.APIKey == "" {
			return &ConfigError{Key: "GEMINI_API_KEY", Reason: "is required when LLM_PROVIDER=gemini"}
		}
	default:
		return &ConfigError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", c.Generation.Provider)}
	}

	switch c.Generation.Profile {
	case ProfileFull, ProfileSocials, ProfileLocalized:
	default:
		return &ConfigError{Key: "PIPELINE_PROFILE", Reason: fmt.Sprintf("unknown profile %q", c.Generation.Profile)}
	}

	if c.Paths.Output == "" {
		return &ConfigError{Key: "OUT_DIR", Reason: "is empty"}
	}
	if c.Performance.MaxConcurrent < 0 {
		return &ConfigError{Key: "MAX_CONCURRENT", Reason: "must not be negative"}
	}

	if c.Transcription.Task == "" {
		c.Transcription.Task = "transcribe"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Paths.Watch == "" {
		c.Paths.Watch = "./inbox"
	}

	c.Transcription.APIURL = strings.TrimRight(c.Transcription.APIURL, "/")
	c.Generation.OpenAI.BaseURL = NormalizeBaseURL(orDefault(c.Generation.OpenAI.BaseURL, DefaultOpenAIBase))
	c.Generation.Ollama.BaseURL = NormalizeBaseURL(orDefault(c.Generation.Ollama.BaseURL, DefaultOllamaBase))
	if c.Generation.Ollama.APIKey == "" {
		c.Generation.Ollama.APIKey = "ollama"
	}

	if c.Generation.Profile == ProfileLocalized {
		if c.Generation.Language == "" {
			c.Generation.Language = "es"
		}
		if c.Transcription.Language == "" {
			c.Transcription.Language = c.Generation.Language
		}
	}

	return nil
}

// ResolveProvider maps "auto" to a concrete provider: the hosted provider
// when its API key is present, the local one otherwise.
func (g GenerationConfig) ResolveProvider() string {
	if g.Provider != ProviderAuto && g.Provider != "" {
		return g.Provider
	}
	if g.OpenAI.APIKey != "" {
		return ProviderOpenAI
	}
	return ProviderOllama
}

// ModelFor returns the model identifier for provider. A global model
// override wins over per-provider settings.
func (g GenerationConfig) ModelFor(provider string) string {
	if g.Model != "" {
		return g.Model
	}
	switch provider {
	case ProviderOpenAI:
		return orDefault(g.OpenAI.Model, DefaultOpenAIModel)
	case ProviderGemini:
		return orDefault(g.Gemini.Model, DefaultGeminiModel)
	default:
		return orDefault(g.Ollama.Model, DefaultOllamaModel)
	}
}

// ResolveProfile expands the configured profile name.
func (g GenerationConfig) ResolveProfile() Profile {
	switch g.Profile {
	case ProfileSocials:
		return Profile{Name: ProfileSocials, Language: g.Language}
	case ProfileLocalized:
		return Profile{Name: ProfileLocalized, IncludeBlog: true, NativeSchema: true, Language: orDefault(g.Language, "es")}
	default:
		return Profile{Name: ProfileFull, IncludeBlog: true, NativeSchema: true, Language: g.Language}
	}
}

// NormalizeBaseURL strips a trailing slash and makes sure the URL ends in /v1.
func NormalizeBaseURL(base string) string {
	trimmed := strings.TrimRight(base, "/")
	if strings.HasSuffix(trimmed, "/v1") {
		return trimmed
	}
	return trimmed + "/v1"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
