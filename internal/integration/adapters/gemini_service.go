package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/freight-manager/backend/internal/application/adapter"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

var errGeminiNotConfigured = errors.New("gemini api key not configured")

// GeminiService classifies expenses with Google Gemini. The client is created on first use and reused.
type GeminiService struct {
	apiKey    string
	modelName string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory constrains the answer to request.Categories through a JSON response schema.
func (s *GeminiService) SuggestCategory(ctx context.Context, request adapter.CategorySuggestionRequest) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = categorySchema(request.Categories)

	resp, err := model.GenerateContent(ctx, genai.Text(categoryPrompt(request)))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return parseCategoryAnswer(resp)
}

// Close releases the client, if one was created.
func (s *GeminiService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *GeminiService) getClient(ctx context.Context) (*genai.Client, error) {
	if !s.IsAvailable() {
		return nil, errGeminiNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		s.client = client
	}
	return s.client, nil
}

func categorySchema(categories []string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {Type: genai.TypeString, Enum: categories},
		},
		Required: []string{"category"},
	}
}

func categoryPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder
	sb.WriteString("Voce classifica despesas de uma transportadora de cargas.\n")
	sb.WriteString("Escolha exatamente uma das categorias abaixo. Se nenhuma servir, use \"Outros\".\n\n")
	for _, c := range request.Categories {
		fmt.Fprintf(&sb, "- %s\n", c)
	}

	fmt.Fprintf(&sb, "\nDespesa: %q\n", request.Name)
	if request.Description != "" {
		fmt.Fprintf(&sb, "Descricao: %q\n", request.Description)
	}
	sb.WriteString(`Responda somente {"category": "<categoria>"}.`)
	return sb.String()
}

// parseCategoryAnswer reads the first text part, tolerating a markdown code fence around the JSON.
func parseCategoryAnswer(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw = string(text)
			break
		}
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "```"))
	if raw == "" {
		return "", errors.New("gemini returned no text")
	}

	var answer struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return "", fmt.Errorf("decode gemini answer %q: %w", raw, err)
	}
	category := strings.TrimSpace(answer.Category)
	if category == "" {
		return "", errors.New("gemini answer has no category")
	}
	return category, nil
}

var _ adapter.CategorySuggester = (*GeminiService)(nil)
