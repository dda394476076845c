package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google's Gemini models. The
// wire contract this pipeline needs ({contents: [{parts: [{text}]}],
// generationConfig: {temperature: 0}}) is exactly the Gemini
// generateContent request shape, so this is the natural backend to
// ground the Provider interface on.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash-exp"; env GEMINI_MODEL overrides when empty
}

var _ Provider = (*GeminiProvider)(nil)

const defaultGeminiModel = "gemini-2.0-flash-exp"

// GenerateStructured sends a generateContent request with temperature 0 so
// that both the PDF column-mapper and the Synthesizer get deterministic
// output.
func (p *GeminiProvider) GenerateStructured(ctx context.Context, systemPrompt string, prompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := p.Model
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	return result.Text(), nil
}
