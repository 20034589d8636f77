package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validAzure() AzureConfig {
	return AzureConfig{
		APIKey:     "key",
		Endpoint:   "https://example.openai.azure.com",
		Deployment: "gpt-4o",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{ModelPath: "models/ggml-base.bin"},
				LLM:     LLMConfig{Azure: validAzure()},
			},
			wantErr: false,
		},
		{
			name: "missing azure key",
			config: Config{
				Whisper: WhisperConfig{ModelPath: "models/ggml-base.bin"},
				LLM: LLMConfig{Azure: AzureConfig{
					Endpoint:   "https://example.openai.azure.com",
					Deployment: "gpt-4o",
				}},
			},
			wantErr: true,
		},
		{
			name: "missing azure deployment",
			config: Config{
				Whisper: WhisperConfig{ModelPath: "models/ggml-base.bin"},
				LLM: LLMConfig{Azure: AzureConfig{
					APIKey:   "key",
					Endpoint: "https://example.openai.azure.com",
				}},
			},
			wantErr: true,
		},
		{
			name: "missing model path",
			config: Config{
				LLM: LLMConfig{Azure: validAzure()},
			},
			wantErr: true,
		},
		{
			name: "server engine needs url",
			config: Config{
				Whisper: WhisperConfig{Engine: EngineServer},
				LLM:     LLMConfig{Azure: validAzure()},
			},
			wantErr: true,
		},
		{
			name: "gemini provider",
			config: Config{
				Whisper: WhisperConfig{Engine: EngineServer, ServerURL: "http://localhost:8080"},
				LLM:     LLMConfig{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "key"}},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			config: Config{
				Whisper: WhisperConfig{ModelPath: "models/ggml-base.bin"},
				LLM:     LLMConfig{Provider: "bedrock", Azure: validAzure()},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{ModelPath: "models/ggml-base.bin"},
		LLM:     LLMConfig{Azure: validAzure()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != ProviderAzure {
		t.Errorf("Provider = %v, want %v", cfg.LLM.Provider, ProviderAzure)
	}
	if cfg.LLM.Azure.APIVersion != DefaultAzureAPIVersion {
		t.Errorf("APIVersion = %v, want %v", cfg.LLM.Azure.APIVersion, DefaultAzureAPIVersion)
	}
	if cfg.Whisper.Engine != EngineCLI {
		t.Errorf("Engine = %v, want %v", cfg.Whisper.Engine, EngineCLI)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("FFmpeg.BinaryPath = %v, want ffmpeg", cfg.FFmpeg.BinaryPath)
	}
	if cfg.Server.Addr != ":8501" {
		t.Errorf("Server.Addr = %v, want :8501", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvAzureAPIKey, "secret")
	t.Setenv(EnvAzureEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvAzureDeployment, "gpt-4o")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9000"
  max_upload_mb: 200

whisper:
  engine: "cli"
  model_path: "models/ggml-base.bin"
  binary_path: "./whisper-cli"
  language: "en"

llm:
  azure:
    api_version: "2024-10-21"

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-base.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-base.bin")
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":9000")
	}
	if cfg.LLM.Azure.APIKey != "secret" {
		t.Errorf("APIKey = %v, want %v", cfg.LLM.Azure.APIKey, "secret")
	}
	if cfg.LLM.Azure.APIVersion != "2024-10-21" {
		t.Errorf("APIVersion = %v, want %v", cfg.LLM.Azure.APIVersion, "2024-10-21")
	}
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Setenv(EnvAzureAPIKey, "")
	t.Setenv(EnvAzureEndpoint, "")
	t.Setenv(EnvAzureDeployment, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("whisper:\n  model_path: m.bin\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail without Azure secrets")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
