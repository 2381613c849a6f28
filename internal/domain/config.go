package domain

// ProviderMode selects how the orchestrator picks an external provider.
type ProviderMode string

const (
	ModeOpenRouter ProviderMode = "openrouter"
	ModeKiloCode   ProviderMode = "kilocode"
	ModeHybrid     ProviderMode = "hybrid"
)

// AssistantConfig is supplied when the orchestrator is constructed.
type AssistantConfig struct {
	OpenRouterAPIKey string       `yaml:"-" json:"-"`
	KiloCodeAPIKey   string       `yaml:"-" json:"-"`
	DefaultProvider  ProviderMode `yaml:"default_provider" json:"defaultProvider"`
	FallbackToRules  bool         `yaml:"fallback_to_rules" json:"fallbackToRules"`
	CacheEnabled     bool         `yaml:"cache_enabled" json:"cacheEnabled"`
	MaxCacheSize     int          `yaml:"max_cache_size" json:"maxCacheSize"`
}

// ConfigPatch carries a partial AssistantConfig; nil fields are left alone.
type ConfigPatch struct {
	OpenRouterAPIKey *string       `json:"openrouterApiKey,omitempty"`
	KiloCodeAPIKey   *string       `json:"kilocodeApiKey,omitempty"`
	DefaultProvider  *ProviderMode `json:"defaultProvider,omitempty"`
	FallbackToRules  *bool         `json:"fallbackToRules,omitempty"`
	CacheEnabled     *bool         `json:"cacheEnabled,omitempty"`
	MaxCacheSize     *int          `json:"maxCacheSize,omitempty"`
}

// Config mirrors ~/.uxai/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Assistant           AssistantConfig  `yaml:"assistant"`
	Providers           ProviderSettings `yaml:"providers"`
	Components          []string         `yaml:"components"`
	History             HistorySettings  `yaml:"history"`
	Server              ServerSettings   `yaml:"server"`
}

// ProviderSettings holds endpoints and the env vars that carry credentials.
type ProviderSettings struct {
	OpenRouter EndpointSettings `yaml:"openrouter"`
	KiloCode   EndpointSettings `yaml:"kilocode"`
}

// EndpointSettings describes one external API.
type EndpointSettings struct {
	BaseURL    string `yaml:"base_url"`
	AuthEnvVar string `yaml:"auth_env_var"`
	Model      string `yaml:"model,omitempty"`
}

// HistorySettings configures the recommendation log.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ServerSettings configures `uxai serve`.
type ServerSettings struct {
	Addr string `yaml:"addr"`
}
