package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"github.com/freight-manager/backend/internal/application/adapter"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}}},
		},
	}
}

func TestParseCategoryAnswer(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		expected string
		wantErr  bool
	}{
		{name: "plain json", resp: textResponse(`{"category": "Pedágio"}`), expected: "Pedágio"},
		{name: "fenced json", resp: textResponse("```json\n{\"category\": \" Combustível \"}\n```"), expected: "Combustível"},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: true},
		{name: "nil response", resp: nil, wantErr: true},
		{name: "not json", resp: textResponse("Combustível"), wantErr: true},
		{name: "empty category", resp: textResponse(`{"category": ""}`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCategoryAnswer(tt.resp)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCategoryPrompt(t *testing.T) {
	prompt := categoryPrompt(adapter.CategorySuggestionRequest{
		Name:        "Diesel S10 posto Graal",
		Description: "abastecimento em Rondonópolis",
		Categories:  []string{"Combustível", "Pedágio", "Outros"},
	})

	for _, want := range []string{"- Combustível\n", "- Outros\n", `"Diesel S10 posto Graal"`, "Rondonópolis"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}

	schema := categorySchema([]string{"Combustível", "Outros"})
	if len(schema.Properties["category"].Enum) != 2 {
		t.Errorf("expected the schema to enumerate the categories")
	}
}

func TestGeminiServiceWithoutKey(t *testing.T) {
	svc := NewGeminiService("", "")
	if svc.IsAvailable() {
		t.Fatal("expected the service to be unavailable without a key")
	}

	_, err := svc.SuggestCategory(context.Background(), adapter.CategorySuggestionRequest{Name: "Diesel"})
	if !errors.Is(err, errGeminiNotConfigured) {
		t.Errorf("expected errGeminiNotConfigured, got %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
