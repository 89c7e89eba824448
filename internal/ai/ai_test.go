package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestNewClientWithoutKeyIsDisabled(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.Enabled() {
		t.Fatal("expected disabled client without API key")
	}
}

func TestDisabledClientKeywordFallback(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	keywords := client.GenerateKeywords(context.Background(), "Title", "Content")
	if len(keywords) == 0 {
		t.Fatal("expected non-empty fallback keywords")
	}
	if keywords[0] != MissingKeyKeywords[0] {
		t.Fatalf("keywords = %v, want fallback %v", keywords, MissingKeyKeywords)
	}
}

func TestDisabledClientKeywordFallbackIsACopy(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	keywords := client.GenerateKeywords(context.Background(), "Title", "Content")
	keywords[0] = "mutated"
	if MissingKeyKeywords[0] == "mutated" {
		t.Fatal("fallback slice must not be shared with callers")
	}
}

func TestDisabledClientAdviceFallback(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	advice := client.MarketingAdvice(context.Background(), DefaultAdvicePrompt)
	if advice != MissingKeyAdvice {
		t.Fatalf("advice = %q, want %q", advice, MissingKeyAdvice)
	}
}

func TestNilClientFallsBack(t *testing.T) {
	var client *Client
	if client.Enabled() {
		t.Fatal("nil client must report disabled")
	}
	if got := client.GenerateKeywords(context.Background(), "T", "C"); len(got) == 0 {
		t.Fatal("expected fallback keywords from nil client")
	}
}

func TestExcerptLimitsRunes(t *testing.T) {
	long := strings.Repeat("가", 150)
	got := excerpt(long, 100)
	if len([]rune(got)) != 100 {
		t.Fatalf("excerpt length = %d runes, want 100", len([]rune(got)))
	}

	short := "짧은 글"
	if excerpt(short, 100) != short {
		t.Fatal("short content must pass through unchanged")
	}
}

func TestNewClientDefaultsModel(t *testing.T) {
	client, err := NewClient(context.Background(), Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.model != DefaultModel {
		t.Fatalf("model = %q, want %q", client.model, DefaultModel)
	}
}

// stubClient builds an enabled client whose generation step is replaced.
func stubClient(generate generateFunc) *Client {
	return &Client{model: DefaultModel, generate: generate}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestKeywordCallErrorFallsBack(t *testing.T) {
	client := stubClient(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("transport failure")
	})

	keywords := client.GenerateKeywords(context.Background(), "Title", "Content")
	if len(keywords) != len(FailureKeywords) {
		t.Fatalf("keywords = %v, want %v", keywords, FailureKeywords)
	}
	for i, kw := range FailureKeywords {
		if keywords[i] != kw {
			t.Fatalf("keyword[%d] = %q, want %q", i, keywords[i], kw)
		}
	}
}

func TestKeywordMalformedResponseFallsBack(t *testing.T) {
	client := stubClient(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return textResponse("not a json array"), nil
	})

	keywords := client.GenerateKeywords(context.Background(), "Title", "Content")
	if keywords[0] != FailureKeywords[0] {
		t.Fatalf("keywords = %v, want %v", keywords, FailureKeywords)
	}
}

func TestKeywordEmptyArrayFallsBack(t *testing.T) {
	client := stubClient(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return textResponse("[]"), nil
	})

	keywords := client.GenerateKeywords(context.Background(), "Title", "Content")
	if keywords[0] != FailureKeywords[0] {
		t.Fatalf("keywords = %v, want %v", keywords, FailureKeywords)
	}
}

func TestKeywordWellFormedResponsePassesThrough(t *testing.T) {
	client := stubClient(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return textResponse(`["Porsche","Detailing","Seoul"]`), nil
	})

	keywords := client.GenerateKeywords(context.Background(), "Title", "Content")
	want := []string{"Porsche", "Detailing", "Seoul"}
	if len(keywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", keywords, want)
	}
	for i, kw := range want {
		if keywords[i] != kw {
			t.Fatalf("keyword[%d] = %q, want %q", i, keywords[i], kw)
		}
	}
}

func TestAdviceCallErrorFallsBack(t *testing.T) {
	client := stubClient(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("transport failure")
	})

	if got := client.MarketingAdvice(context.Background(), DefaultAdvicePrompt); got != FailureAdvice {
		t.Fatalf("advice = %q, want %q", got, FailureAdvice)
	}
}

func TestAdviceEmptyResponseFallsBack(t *testing.T) {
	client := stubClient(func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return textResponse("  "), nil
	})

	if got := client.MarketingAdvice(context.Background(), DefaultAdvicePrompt); got != FailureAdvice {
		t.Fatalf("advice = %q, want %q", got, FailureAdvice)
	}
}
