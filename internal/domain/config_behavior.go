package domain

import "fmt"

// Valid reports whether the mode is one of the supported values.
func (m ProviderMode) Valid() bool {
	switch m {
	case ModeOpenRouter, ModeKiloCode, ModeHybrid:
		return true
	default:
		return false
	}
}

// Apply shallow-merges the set fields of patch into a copy of c.
func (c AssistantConfig) Apply(patch ConfigPatch) AssistantConfig {
	if patch.OpenRouterAPIKey != nil {
		c.OpenRouterAPIKey = *patch.OpenRouterAPIKey
	}
	if patch.KiloCodeAPIKey != nil {
		c.KiloCodeAPIKey = *patch.KiloCodeAPIKey
	}
	if patch.DefaultProvider != nil {
		c.DefaultProvider = *patch.DefaultProvider
	}
	if patch.FallbackToRules != nil {
		c.FallbackToRules = *patch.FallbackToRules
	}
	if patch.CacheEnabled != nil {
		c.CacheEnabled = *patch.CacheEnabled
	}
	if patch.MaxCacheSize != nil {
		c.MaxCacheSize = *patch.MaxCacheSize
	}
	return c
}

// Validate checks the fields that have a closed set of values.
func (c AssistantConfig) Validate() error {
	if !c.DefaultProvider.Valid() {
		return fmt.Errorf("unknown provider mode %q", c.DefaultProvider)
	}
	if c.MaxCacheSize < 1 {
		return fmt.Errorf("max cache size must be >= 1, got %d", c.MaxCacheSize)
	}
	return nil
}

// EffectiveComponents returns the configured whitelist or the built-in one.
func (c *Config) EffectiveComponents() []string {
	if len(c.Components) == 0 {
		return cloneStrings(DefaultComponents)
	}
	return cloneStrings(c.Components)
}

// HasComponent checks if the whitelist contains name.
func (c *Config) HasComponent(name string) bool {
	for _, comp := range c.EffectiveComponents() {
		if comp == name {
			return true
		}
	}
	return false
}

// AddComponent appends a component to the whitelist.
// Returns an error if it is already listed.
func (c *Config) AddComponent(name string) error {
	if name == "" {
		return fmt.Errorf("component name cannot be empty")
	}
	if c.HasComponent(name) {
		return fmt.Errorf("component %s already exists", name)
	}
	c.Components = append(c.EffectiveComponents(), name)
	return nil
}

// RemoveComponent drops a component from the whitelist.
func (c *Config) RemoveComponent(name string) error {
	current := c.EffectiveComponents()
	for i, comp := range current {
		if comp == name {
			c.Components = append(current[:i], current[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("component %s not found", name)
}
