package ai

import (
	"context"
	"net/http"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

const (
	DefaultKiloCodeBaseURL = "https://api.kilocode.com/v1"

	kiloCodeClientID = "dc25-uiux"
	targetFramework  = "react"
	targetLanguage   = "typescript"
)

// KiloCode is provider B: a dedicated recommendation REST API.
type KiloCode struct {
	apiKey     string
	baseURL    string
	components []string
	client     jsonClient
}

// NewKiloCode builds a client bound to a whitelist snapshot.
func NewKiloCode(apiKey string, settings domain.EndpointSettings, components []string, httpClient *http.Client) *KiloCode {
	p := &KiloCode{
		apiKey:     apiKey,
		baseURL:    defaultString(settings.BaseURL, DefaultKiloCodeBaseURL),
		components: append([]string(nil), components...),
	}
	p.client = jsonClient{httpClient: httpClient, headers: p.setHeaders}
	return p
}

func (p *KiloCode) Name() domain.Provider {
	return domain.ProviderKiloCode
}

func (p *KiloCode) setHeaders(req *http.Request) {
	req.Header.Set("authorization", "Bearer "+p.apiKey)
	req.Header.Set("X-Client", kiloCodeClientID)
}

type kiloRecommendRequest struct {
	Query               string   `json:"query"`
	Context             string   `json:"context,omitempty"`
	Codebase            string   `json:"codebase,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	Preferences         any      `json:"preferences,omitempty"`
	AvailableComponents []string `json:"availableComponents"`
	Framework           string   `json:"framework"`
	Language            string   `json:"language"`
}

type kiloCodeRequest struct {
	Component      string         `json:"component,omitempty"`
	Code           string         `json:"code,omitempty"`
	Codebase       string         `json:"codebase,omitempty"`
	Props          map[string]any `json:"props,omitempty"`
	TestingLibrary string         `json:"testingLibrary,omitempty"`
	Framework      string         `json:"framework"`
	Language       string         `json:"language"`
}

type kiloSuggestions struct {
	Suggestions   []string `json:"suggestions"`
	Optimizations []string `json:"optimizations"`
	TestCode      string   `json:"testCode"`
}

// Recommend posts the request with the whitelist and enriches the answer
// with composition patterns and best practices.
func (p *KiloCode) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.Recommendation, error) {
	const op = "recommend"
	if p.apiKey == "" {
		return domain.Recommendation{}, providerErr(p.Name(), op, ErrMissingAPIKey)
	}

	payload := kiloRecommendRequest{
		Query:               req.Description,
		Context:             req.Context,
		Codebase:            req.Codebase,
		Requirements:        req.Requirements,
		AvailableComponents: p.components,
		Framework:           targetFramework,
		Language:            targetLanguage,
	}
	if req.Preferences != nil && !req.Preferences.Empty() {
		payload.Preferences = req.Preferences
	}

	var rec domain.Recommendation
	if err := p.client.postDecode(ctx, p.baseURL+"/recommend", payload, &rec); err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, err)
	}
	if err := checkWhitelist(rec, p.components); err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, err)
	}

	rec = normalize(rec)
	rec.Patterns = suggestPatterns(rec.Components)
	rec.BestPractices = suggestBestPractices(rec.Components)
	return rec, nil
}

// AnalyzeCodebase returns suggestions for a whole codebase dump.
func (p *KiloCode) AnalyzeCodebase(ctx context.Context, codebase string) ([]string, error) {
	out, err := p.call(ctx, "analyze", kiloCodeRequest{Codebase: codebase})
	if err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// SuggestRefactoring returns refactoring suggestions for a component.
func (p *KiloCode) SuggestRefactoring(ctx context.Context, component, code string) ([]string, error) {
	out, err := p.call(ctx, "refactor", kiloCodeRequest{Component: component, Code: code})
	if err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// GenerateTests returns vitest source for a component.
func (p *KiloCode) GenerateTests(ctx context.Context, component string, props map[string]any) (string, error) {
	out, err := p.call(ctx, "generate-tests", kiloCodeRequest{Component: component, Props: props, TestingLibrary: "vitest"})
	if err != nil {
		return "", err
	}
	if out.TestCode == "" {
		return "", providerErr(p.Name(), "generate-tests", ErrEmptyResponse)
	}
	return out.TestCode, nil
}

// OptimizePerformance returns optimization hints for a component.
func (p *KiloCode) OptimizePerformance(ctx context.Context, component, code string) ([]string, error) {
	out, err := p.call(ctx, "optimize", kiloCodeRequest{Component: component, Code: code})
	if err != nil {
		return nil, err
	}
	return out.Optimizations, nil
}

func (p *KiloCode) call(ctx context.Context, path string, payload kiloCodeRequest) (kiloSuggestions, error) {
	if p.apiKey == "" {
		return kiloSuggestions{}, providerErr(p.Name(), path, ErrMissingAPIKey)
	}
	payload.Framework = targetFramework
	payload.Language = targetLanguage

	var out kiloSuggestions
	if err := p.client.postDecode(ctx, p.baseURL+"/"+path, payload, &out); err != nil {
		return kiloSuggestions{}, providerErr(p.Name(), path, err)
	}
	return out, nil
}

var _ ports.KiloCodeClient = (*KiloCode)(nil)
