package domain

import (
	"encoding/base64"
	"encoding/json"
)

type cacheKeyPayload struct {
	Description string       `json:"description"`
	Context     string       `json:"context,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// CacheKey derives the request signature from description, context and
// preferences. Equal inputs always give equal keys.
func (r RecommendationRequest) CacheKey() string {
	raw, err := json.Marshal(cacheKeyPayload{
		Description: r.Description,
		Context:     r.Context,
		Preferences: r.Preferences,
	})
	if err != nil {
		// only strings are marshalled
		return r.Description
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}
