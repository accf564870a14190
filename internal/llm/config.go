// Package llm provides the generation client abstraction over LLM providers.
package llm

import "os"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
)

// Config holds the provider and model configuration for the generation client.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// LoadConfig reads provider settings from the environment, falling back to
// defaults. GENERATION_PROVIDER selects the provider; GENERATION_MODEL
// overrides the model name.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	switch Provider(os.Getenv("GENERATION_PROVIDER")) {
	case ProviderOpenAI:
		cfg.Provider = ProviderOpenAI
		cfg.Model = "gpt-4o-mini"
	case ProviderGemini, "":
		// keep defaults
	}

	if model := os.Getenv("GENERATION_MODEL"); model != "" {
		cfg.Model = model
	}

	return cfg
}
