package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel   = "anthropic/claude-3.5-sonnet"

	openRouterReferer = "https://dc25-uiux.vercel.app"
	openRouterTitle   = "DC25 UI/UX AI Assistant"
)

// OpenRouter is provider A: an OpenAI-compatible chat completions API.
type OpenRouter struct {
	apiKey     string
	baseURL    string
	model      string
	components []string
	client     jsonClient
}

// NewOpenRouter builds a client bound to a whitelist snapshot.
func NewOpenRouter(apiKey string, settings domain.EndpointSettings, components []string, httpClient *http.Client) *OpenRouter {
	p := &OpenRouter{
		apiKey:     apiKey,
		baseURL:    defaultString(settings.BaseURL, DefaultOpenRouterBaseURL),
		model:      defaultString(settings.Model, DefaultOpenRouterModel),
		components: append([]string(nil), components...),
	}
	p.client = jsonClient{httpClient: httpClient, headers: p.setHeaders}
	return p
}

func (p *OpenRouter) Name() domain.Provider {
	return domain.ProviderOpenRouter
}

func (p *OpenRouter) setHeaders(req *http.Request) {
	req.Header.Set("authorization", "Bearer "+p.apiKey)
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
}

// Recommend asks the model for a JSON recommendation and validates it
// against the whitelist.
func (p *OpenRouter) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.Recommendation, error) {
	const op = "recommend"
	if p.apiKey == "" {
		return domain.Recommendation{}, providerErr(p.Name(), op, ErrMissingAPIKey)
	}

	system, err := renderSystemPrompt(p.components)
	if err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, err)
	}
	user, err := renderUserPrompt(req)
	if err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, err)
	}

	content, err := p.complete(ctx, chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.7,
		MaxTokens:      1500,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, err)
	}

	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(extractJSONBlock(content)), &rec); err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, fmt.Errorf("decode recommendation: %w", err))
	}
	if err := checkWhitelist(rec, p.components); err != nil {
		return domain.Recommendation{}, providerErr(p.Name(), op, err)
	}

	rec = normalize(rec)
	rec.Patterns = nil
	rec.BestPractices = nil
	return rec, nil
}

// AnalyzeCode reviews a React snippet.
func (p *OpenRouter) AnalyzeCode(ctx context.Context, code string) (string, error) {
	content, err := p.ask(ctx, "analyze", analyzeSystemPrompt,
		fmt.Sprintf("Проанализируй этот React код:\n```tsx\n%s\n```", code), 0.5, 800)
	if err != nil {
		return "", err
	}
	return content, nil
}

// GenerateComponent produces TypeScript source for a described component.
func (p *OpenRouter) GenerateComponent(ctx context.Context, description string, props map[string]any) (string, error) {
	user := "Создай компонент: " + description
	if props != nil {
		raw, err := json.Marshal(props)
		if err != nil {
			return "", providerErr(p.Name(), "generate", err)
		}
		user += "\nПропсы: " + string(raw)
	}
	return p.ask(ctx, "generate", generateSystemPrompt, user, 0.3, 1000)
}

// SuggestImprovements returns one suggestion per non-empty reply line.
func (p *OpenRouter) SuggestImprovements(ctx context.Context, component string) ([]string, error) {
	content, err := p.ask(ctx, "improve", improvementsSystemPrompt,
		"Предложи улучшения для компонента: "+component, 0.6, 600)
	if err != nil {
		return nil, err
	}
	return nonEmptyLines(content), nil
}

func (p *OpenRouter) ask(ctx context.Context, op, system, user string, temperature float64, maxTokens int) (string, error) {
	if p.apiKey == "" {
		return "", providerErr(p.Name(), op, ErrMissingAPIKey)
	}
	content, err := p.complete(ctx, chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", providerErr(p.Name(), op, err)
	}
	return content, nil
}

func (p *OpenRouter) complete(ctx context.Context, payload chatCompletionRequest) (string, error) {
	var decoded chatCompletionResponse
	if err := p.client.postDecode(ctx, p.baseURL+"/chat/completions", payload, &decoded); err != nil {
		return "", err
	}
	content := decoded.FirstMessage()
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

var _ ports.OpenRouterClient = (*OpenRouter)(nil)
