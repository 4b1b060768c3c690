package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yugantar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "GEMINI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.NotEmpty(t, cfg.LLM.InstructionModel)
	assert.Equal(t, 4000, cfg.Limits.MaxPromptChars)
	assert.Equal(t, 3*time.Minute, cfg.Limits.GenerationTimeout.Std())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
llm:
  api_key_env: CUSTOM_KEY
  instruction_model: custom-model
limits:
  max_prompt_chars: 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, "custom-model", cfg.LLM.InstructionModel)
	assert.Equal(t, 100, cfg.Limits.MaxPromptChars)
	// Unset fields keep their defaults.
	assert.NotEmpty(t, cfg.LLM.CompilerModel)
	assert.Equal(t, 3*time.Minute, cfg.Limits.GenerationTimeout.Std())
}

func TestLoad_DurationFormats(t *testing.T) {
	t.Run("duration string", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "limits:\n  generation_timeout: 90s\n"))
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, cfg.Limits.GenerationTimeout.Std())
	})

	t.Run("bare integer is seconds", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "limits:\n  generation_timeout: 120\n"))
		require.NoError(t, err)
		assert.Equal(t, 2*time.Minute, cfg.Limits.GenerationTimeout.Std())
	})

	t.Run("garbage string fails", func(t *testing.T) {
		_, err := Load(writeConfig(t, "limits:\n  generation_timeout: soon\n"))
		assert.Error(t, err)
	})
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "llm: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative prompt cap", "limits:\n  max_prompt_chars: -1\n"},
		{"zero timeout", "limits:\n  generation_timeout: -1s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestAPIKey_ResolvedLazily(t *testing.T) {
	cfg, err := Load(writeConfig(t, "llm:\n  api_key_env: YUGANTAR_TEST_KEY\n"))
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey())
	t.Setenv("YUGANTAR_TEST_KEY", "secret")
	assert.Equal(t, "secret", cfg.APIKey())
}
