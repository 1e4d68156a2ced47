// Package gemini implements ai.Provider on the Gemini API via
// google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/yusuke-koga/claimgate/internal/ai"
	"github.com/yusuke-koga/claimgate/internal/config"
)

// How much raw upstream error text may be carried in a classified error.
const maxUpstreamDetail = 100

// Provider implements ai.Provider using Gemini.
type Provider struct {
	client *genai.Client
	model  string
}

// NewProvider creates a Gemini provider from config. The client is created
// once at startup and reused for every request.
func NewProvider(ctx context.Context, cfg config.GeminiConfig) (*Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Provider{client: client, model: cfg.Model}, nil
}

func (p *Provider) Name() string { return "gemini" }

// Generate sends one prompt and returns the first candidate's text.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ai.ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// classify maps an upstream failure to the gateway's sentinel errors.
// Status codes are authoritative when the API returned one; otherwise fall
// back to message matching the way the upstream reports key and quota
// problems. Raw detail is length-capped before it is carried along.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	detail := ai.Truncate(err.Error(), maxUpstreamDetail)

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %s", ai.ErrInvalidAPIKey, detail)
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ai.ErrQuotaExceeded, detail)
		case apiErr.Code >= 500:
			return fmt.Errorf("%w: %s", ai.ErrUpstreamUnavailable, detail)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY") || strings.Contains(msg, "API key"):
		return fmt.Errorf("%w: %s", ai.ErrInvalidAPIKey, detail)
	case strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return fmt.Errorf("%w: %s", ai.ErrQuotaExceeded, detail)
	default:
		return fmt.Errorf("%w: %s", ai.ErrUpstreamUnavailable, detail)
	}
}

var _ ai.Provider = (*Provider)(nil)
