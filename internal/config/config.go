package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Paths      PathsConfig      `yaml:"paths"`
	Downloader DownloaderConfig `yaml:"downloader"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type PathsConfig struct {
	Work string `yaml:"work" env:"TUBESCRIBE_WORK_DIR"`
}

type DownloaderConfig struct {
	BinaryPath  string `yaml:"binary_path" env:"YTDLP_BINARY"`
	AudioFormat string `yaml:"audio_format"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path" env:"WHISPER_BINARY"`
	Model      string `yaml:"model" env:"WHISPER_MODEL"`
	Language   string `yaml:"language" env:"WHISPER_LANGUAGE"`
}

type SummarizerConfig struct {
	Provider string       `yaml:"provider" env:"SUMMARIZER_PROVIDER"`
	Prompt   string       `yaml:"prompt"`
	OpenAI   OpenAIConfig `yaml:"openai"`
	Gemini   GeminiConfig `yaml:"gemini"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model   string `yaml:"model" env:"OPENAI_MODEL"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GEMINI_API_KEY"`
	Model  string `yaml:"model" env:"GEMINI_MODEL"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// APIKey returns the credential of the selected summarization provider
func (c *Config) APIKey() string {
	if c.Summarizer.Provider == ProviderGemini {
		return c.Summarizer.Gemini.APIKey
	}
	return c.Summarizer.OpenAI.APIKey
}

func (c *Config) Validate() error {
	c.Summarizer.Provider = strings.ToLower(strings.TrimSpace(c.Summarizer.Provider))
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAI
	}
	if c.Summarizer.Provider != ProviderOpenAI && c.Summarizer.Provider != ProviderGemini {
		return fmt.Errorf("summarizer.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Summarizer.Provider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("summarizer.%s.api_key is required", c.Summarizer.Provider)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Paths.Work == "" {
		c.Paths.Work = os.TempDir()
	}
	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}
	if c.Downloader.AudioFormat == "" {
		c.Downloader.AudioFormat = "mp3"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Summarizer.Prompt == "" {
		c.Summarizer.Prompt = "Summarize this YouTube transcript clearly and concisely."
	}
	if c.Summarizer.OpenAI.Model == "" {
		c.Summarizer.OpenAI.Model = "gpt-4"
	}
	if c.Summarizer.Gemini.Model == "" {
		c.Summarizer.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
