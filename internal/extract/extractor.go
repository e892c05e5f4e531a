package extract

import (
	"context"
	"log"
	"strconv"
	"strings"

	"docklogger/internal/port"
)

// Input carries one extraction request. API keys, when set, override the
// configured defaults for their provider; each is resolved independently.
type Input struct {
	APIKey       string
	BackupAPIKey string
	Text         string
	ImageDataURL string
}

// Extractor runs the document extraction operations against a primary
// vision-model provider with a one-shot backup fallback. It holds no mutable
// state; every call is independent.
type Extractor struct {
	primary   port.VisionClient
	backup    port.VisionClient
	backupKey string
}

// NewExtractor creates an Extractor. backupKey is the statically configured
// backup provider key; empty means fallback is unconfigured.
func NewExtractor(primary, backup port.VisionClient, backupKey string) *Extractor {
	return &Extractor{
		primary:   primary,
		backup:    backup,
		backupKey: backupKey,
	}
}

// generateWithFallback sends the prompt to the primary provider and decodes
// the reply. On a hard failure (network, non-2xx, JSON parse) it retries
// exactly once against the backup provider with an independently resolved
// backup key. A ValidationError is a definitive answer about the document
// and is surfaced without retrying. When both providers fail hard the
// primary's error is surfaced: the first provider's failure is usually more
// informative about the document itself.
func (e *Extractor) generateWithFallback(ctx context.Context, in Input, prompt string, att *port.Attachment, decode func(raw string) error) error {
	raw, err := e.primary.Generate(ctx, port.GenerateInput{
		APIKey:     in.APIKey,
		Prompt:     prompt,
		Attachment: att,
	})
	if err == nil {
		err = decode(raw)
		if err == nil {
			return nil
		}
		if IsValidationError(err) {
			return err
		}
	}
	primaryErr := err

	backupKey := in.BackupAPIKey
	if backupKey == "" {
		backupKey = e.backupKey
	}
	if backupKey == "" {
		return ErrNoBackupKey
	}

	log.Printf("extract: primary provider failed, retrying with backup: %v", primaryErr)

	raw, err = e.backup.Generate(ctx, port.GenerateInput{
		APIKey:     backupKey,
		Prompt:     prompt,
		Attachment: att,
	})
	if err != nil {
		return primaryErr
	}
	if err := decode(raw); err != nil {
		if IsValidationError(err) {
			return err
		}
		return primaryErr
	}
	return nil
}

// TestConnection sends a trivial prompt to the primary provider and reports
// whether it answered. Used for configuration validation only.
func (e *Extractor) TestConnection(ctx context.Context, apiKey string) bool {
	_, err := e.primary.Generate(ctx, port.GenerateInput{
		APIKey: apiKey,
		Prompt: ProbePrompt(),
	})
	return err == nil
}

// toFloat coerces a decoded JSON value to a float64. Numeric strings are
// parsed; anything else reports ok=false.
func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toFloatPtr is toFloat for optional fields: nil in, nil out.
func toFloatPtr(v interface{}) *float64 {
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}
