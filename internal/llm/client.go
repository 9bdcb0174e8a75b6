package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client sends one prompt to a model and returns its JSON reply. The reply
// is raw model text; callers locate the object with ExtractJSONObject.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// NewClient creates the client for config.Provider
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Provider != ProviderGemini {
		return nil, &APICallError{Message: fmt.Sprintf("unsupported provider %q", config.Provider)}
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	genai  *genai.Client
	config *Config
}

// NewGeminiClient connects to Gemini with apiKey
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &APICallError{Message: "failed to create Gemini client", Cause: err}
	}
	return &GeminiClient{genai: gc, config: config}, nil
}

// GenerateJSON asks the tier's model for a JSON response
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	name := c.config.GetModel(tier)
	if name == "" {
		return "", &APICallError{Message: fmt.Sprintf("no model configured for tier %s", tier)}
	}
	model := c.genai.GenerativeModel(name)
	model.SetTemperature(c.config.Temperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &APICallError{Message: fmt.Sprintf("%s request failed", name), Cause: err}
	}
	return responseText(resp)
}

// Close releases the underlying connection
func (c *GeminiClient) Close() error {
	if c.genai == nil {
		return nil
	}
	return c.genai.Close()
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &ResponseError{Message: "no candidates in response"}
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", &ResponseError{Message: "no content in response"}
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &ResponseError{Message: "no text in response"}
	}
	return sb.String(), nil
}
