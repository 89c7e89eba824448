// Package ai wraps the Gemini API for SEO keyword generation and marketing
// advice.
//
// The hosted model is a capability boundary, not core logic: every call has a
// fixed fallback, and no failure here may block saving a post or rendering
// the admin dashboard. A client constructed without a credential bypasses the
// API entirely and answers with fallbacks synchronously.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// excerptLimit caps how much post content is sent for keyword generation.
const excerptLimit = 100

// DefaultAdvicePrompt asks for the admin dashboard marketing tip.
const DefaultAdvicePrompt = "Provide a professional marketing advice for a premium automotive garage looking to attract high-net-worth individuals in Seoul."

// Fallback values used when the API is unavailable or a call fails.
var (
	// MissingKeyKeywords is returned when no credential is configured.
	MissingKeyKeywords = []string{"Default", "Auto", "Luxury"}
	// FailureKeywords is returned when a keyword call fails.
	FailureKeywords = []string{"Automotive", "Garage", "Luxury"}
)

const (
	// MissingKeyAdvice is returned when no credential is configured.
	MissingKeyAdvice = "AI assistance is currently unavailable. Please check API Key."
	// FailureAdvice is returned when an advice call fails.
	FailureAdvice = "Error generating response."
)

const adviceSystemInstruction = "You are an expert marketing consultant for high-end automotive brands. Provide concise, professional advice."

// generateFunc issues one content-generation request. The indirection keeps
// the failure branches reachable without a live API.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Client generates SEO keywords and marketing advice. The zero value is a
// disabled client that always answers with fallbacks.
type Client struct {
	model    string
	generate generateFunc
}

// Config holds the Gemini credential and model selection.
type Config struct {
	// APIKey authenticates against the Gemini API. Empty disables the client.
	APIKey string
	// Model overrides DefaultModel when set.
	Model string
}

// NewClient builds a Client. A missing API key yields a disabled client, not
// an error: the site must stay fully usable without the credential.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return &Client{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{model: model, generate: client.Models.GenerateContent}, nil
}

// Enabled reports whether the client will actually call the API.
func (c *Client) Enabled() bool {
	return c != nil && c.generate != nil
}

// GenerateKeywords returns SEO keywords for a post. It sends the title and a
// short content excerpt, constraining the response to a JSON string array.
// Any failure falls back to a fixed keyword set; the caller can always attach
// the result to the post being saved.
func (c *Client) GenerateKeywords(ctx context.Context, title, content string) []string {
	if !c.Enabled() {
		return append([]string(nil), MissingKeyKeywords...)
	}

	prompt := fmt.Sprintf(
		"Generate 5 SEO keywords for an automotive blog post with title: %q and content preview: %q. Return as a JSON array of strings.",
		title, excerpt(content, excerptLimit),
	)

	resp, err := c.generate(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		log.Printf("ai: keyword generation failed: %v", err)
		return append([]string(nil), FailureKeywords...)
	}

	var keywords []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &keywords); err != nil {
		log.Printf("ai: keyword response malformed: %v", err)
		return append([]string(nil), FailureKeywords...)
	}
	if len(keywords) == 0 {
		return append([]string(nil), FailureKeywords...)
	}
	return keywords
}

// MarketingAdvice returns a free-form marketing tip for the admin dashboard.
// Failures yield a fixed message rather than an error.
func (c *Client) MarketingAdvice(ctx context.Context, prompt string) string {
	if !c.Enabled() {
		return MissingKeyAdvice
	}

	resp, err := c.generate(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(adviceSystemInstruction, genai.RoleUser),
	})
	if err != nil {
		log.Printf("ai: advice generation failed: %v", err)
		return FailureAdvice
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FailureAdvice
	}
	return text
}

// excerpt returns the first limit runes of s.
func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
