// Package llm provides a single abstraction over the generative-text
// backend used by the PDF Extractor's column-mapping stage and the
// Synthesizer's catalog-content generation stage.
package llm

import "context"

// Provider is the interface every LLM backend implements. Both callers in
// this repo (pkg/core/extract/pdf and pkg/core/synthesize) speak strict
// JSON contracts, so Provider exposes a single structured-generation entry
// point: generateStructured(prompt, schema) -> Result<JSONValue,
// ParseError|HttpError>. Go models that Result as (string, error): callers
// parse the returned text themselves with pkg/core/utils' tolerant JSON
// helpers, since the schema is enforced by prompt contract, not by a
// provider-side validator.
type Provider interface {
	// GenerateStructured sends systemPrompt + prompt to the backend with a
	// deterministic (temperature 0) sampling configuration and returns the
	// raw response text, which the caller is expected to parse as JSON.
	GenerateStructured(ctx context.Context, systemPrompt string, prompt string) (string, error)
}
