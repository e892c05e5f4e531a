package port

import "context"

// Attachment is an inline file sent alongside a prompt, already base64 encoded.
type Attachment struct {
	MediaType string
	Data      string
}

// GenerateInput carries one multimodal request to a vision-model provider.
// APIKey, when set, overrides the provider's configured key for this call.
type GenerateInput struct {
	APIKey     string
	Prompt     string
	Attachment *Attachment
}

// VisionClient abstracts a hosted vision-language model. Implementations
// perform a single request with no retries; fallback between providers is
// orchestrated above this interface.
type VisionClient interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
}
