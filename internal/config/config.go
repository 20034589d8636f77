package config

import "fmt"

const (
	ProviderAzure  = "azure"
	ProviderGemini = "gemini"

	EngineCLI    = "cli"
	EngineServer = "server"

	DefaultAzureAPIVersion = "2025-03-01-preview"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Whisper WhisperConfig `yaml:"whisper"`
	LLM     LLMConfig     `yaml:"llm"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	MaxUploadMB int64    `yaml:"max_upload_mb"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type WhisperConfig struct {
	Engine     string `yaml:"engine"`
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	ServerURL  string `yaml:"server_url"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type LLMConfig struct {
	Provider string       `yaml:"provider"`
	Azure    AzureConfig  `yaml:"azure"`
	Gemini   GeminiConfig `yaml:"gemini"`
}

// AzureConfig holds the Azure OpenAI credentials. The secrets never come from
// the yaml file, only from the environment.
type AzureConfig struct {
	APIKey     string `yaml:"-"`
	Endpoint   string `yaml:"-"`
	Deployment string `yaml:"-"`
	APIVersion string `yaml:"api_version"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderAzure
	}
	if c.Whisper.Engine == "" {
		c.Whisper.Engine = EngineCLI
	}

	switch c.LLM.Provider {
	case ProviderAzure:
		if c.LLM.Azure.APIKey == "" {
			return fmt.Errorf("%s is required", EnvAzureAPIKey)
		}
		if c.LLM.Azure.Endpoint == "" {
			return fmt.Errorf("%s is required", EnvAzureEndpoint)
		}
		if c.LLM.Azure.Deployment == "" {
			return fmt.Errorf("%s is required", EnvAzureDeployment)
		}
	case ProviderGemini:
		if c.LLM.Gemini.APIKey == "" {
			return fmt.Errorf("%s is required", EnvGeminiAPIKey)
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}

	switch c.Whisper.Engine {
	case EngineCLI:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
	case EngineServer:
		if c.Whisper.ServerURL == "" {
			return fmt.Errorf("whisper.server_url is required")
		}
	default:
		return fmt.Errorf("whisper.engine %q is not supported", c.Whisper.Engine)
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8501"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 1024
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.LLM.Azure.APIVersion == "" {
		c.LLM.Azure.APIVersion = DefaultAzureAPIVersion
	}
	if c.LLM.Gemini.Model == "" {
		c.LLM.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
