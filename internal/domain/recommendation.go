// Package domain defines core business entities and value objects for uxai.
//
// This file contains the recommendation request/response model shared by the
// provider clients, the rule engine and the assistant orchestrator. The domain
// layer is independent of infrastructure concerns.
package domain

import "time"

// Architecture is the atomic-design tier of a recommendation.
type Architecture string

const (
	ArchitectureAtom     Architecture = "atom"
	ArchitectureMolecule Architecture = "molecule"
	ArchitectureOrganism Architecture = "organism"
)

// Valid reports whether the tier is one of the three known values.
func (a Architecture) Valid() bool {
	switch a {
	case ArchitectureAtom, ArchitectureMolecule, ArchitectureOrganism:
		return true
	default:
		return false
	}
}

// Provider identifies which subsystem produced a recommendation.
type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderKiloCode   Provider = "kilocode"
	ProviderFallback   Provider = "fallback"
)

// Preferences are optional hints attached to a request.
type Preferences struct {
	Complexity string `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Style      string `json:"style,omitempty" yaml:"style,omitempty"`
	Framework  string `json:"framework,omitempty" yaml:"framework,omitempty"`
}

// Empty reports whether no preference is set.
func (p Preferences) Empty() bool {
	return p.Complexity == "" && p.Style == "" && p.Framework == ""
}

// RecommendationRequest is built per call and never mutated afterwards.
type RecommendationRequest struct {
	Description  string       `json:"description"`
	Context      string       `json:"context,omitempty"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	Codebase     string       `json:"codebase,omitempty"`
	Requirements []string     `json:"requirements,omitempty"`
}

// Recommendation is the common result shape returned by every producer.
// Patterns and BestPractices are only filled by the KiloCode client.
type Recommendation struct {
	Components    []string     `json:"components"`
	Architecture  Architecture `json:"architecture"`
	Reasoning     string       `json:"reasoning"`
	Alternatives  []string     `json:"alternatives"`
	CodeExample   string       `json:"codeExample"`
	Confidence    float64      `json:"confidence"`
	Patterns      []string     `json:"patterns,omitempty"`
	BestPractices []string     `json:"bestPractices,omitempty"`
}

// Clone returns a deep copy so cached values cannot be mutated by callers.
func (r Recommendation) Clone() Recommendation {
	out := r
	out.Components = cloneStrings(r.Components)
	out.Alternatives = cloneStrings(r.Alternatives)
	out.Patterns = cloneStrings(r.Patterns)
	out.BestPractices = cloneStrings(r.BestPractices)
	return out
}

// AssistantResponse is what the orchestrator hands back to callers.
type AssistantResponse struct {
	Recommendation Recommendation `json:"recommendations"`
	Provider       Provider       `json:"provider"`
	Cached         bool           `json:"cached"`
	Timestamp      time.Time      `json:"timestamp"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
