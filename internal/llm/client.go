package llm

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Request is a single-turn text generation request.
type Request struct {
	Prompt      string
	MaxTokens   int32
	Temperature float32
}

// TokenUsage reports token accounting for one completion.
type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// Response is the generated completion.
type Response struct {
	Text       string
	Usage      TokenUsage
	StopReason string
}

// Client generates text for a prompt.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

var (
	// ErrOverloaded marks the provider's transient "model overloaded" condition.
	ErrOverloaded = errors.New("llm: model overloaded")
	// ErrInvalidResponse marks a completion that came back without text.
	ErrInvalidResponse = errors.New("llm: response missing text")
	// ErrExhausted marks a call that failed after the full retry budget.
	ErrExhausted = errors.New("llm: retry budget exhausted")
)

// IsOverloaded reports whether err is the retryable overload condition.
// The Gemini API surfaces it as HTTP 503.
func IsOverloaded(err error) bool {
	if errors.Is(err, ErrOverloaded) {
		return true
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusServiceUnavailable
	}
	return false
}
