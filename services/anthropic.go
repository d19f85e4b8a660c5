package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MealAnalysis is the structured record the vision model returns for a
// meal photo. Missing fields keep their zero value; the name default is
// applied by the ingestion layer.
type MealAnalysis struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	SaturatedFat float64 `json:"saturated_fat"`
	Cholesterol  float64 `json:"cholesterol"`
	Potassium    float64 `json:"potassium"`
	VitaminA     float64 `json:"vitamin_a"`
	VitaminC     float64 `json:"vitamin_c"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`
}

// VisionClassifier estimates nutrients from a meal photo. Injected so
// ingestion can be tested with a deterministic fake.
type VisionClassifier interface {
	Classify(ctx context.Context, image []byte, mediaType string) (*MealAnalysis, error)
}

// SuggestionClient completes a free-text prompt. Same substitution
// story as VisionClassifier.
type SuggestionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const visionPrompt = `Analysiere dieses Bild einer Mahlzeit. Antworte NUR mit einem JSON-Objekt (kein Markdown, kein Text drumherum) in diesem Format:
{
    "name": "Name der Mahlzeit auf Deutsch",
    "description": "Kurze Beschreibung der Mahlzeit auf Deutsch",
    "calories": 0,
    "protein": 0,
    "carbs": 0,
    "fat": 0,
    "fiber": 0,
    "sugar": 0,
    "sodium": 0,
    "saturated_fat": 0,
    "cholesterol": 0,
    "potassium": 0,
    "vitamin_a": 0,
    "vitamin_c": 0,
    "calcium": 0,
    "iron": 0
}
Schätze die Nährwerte realistisch für eine typische Portion. Kalorien in kcal, Makronährstoffe in Gramm, Natrium/Cholesterin/Kalium in mg, Vitamine/Mineralien in % Tagesbedarf.`

// AnthropicClient talks to the Anthropic Messages API. It implements
// both VisionClassifier and SuggestionClient.
type AnthropicClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.anthropic.com/v1/messages",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (a *AnthropicClient) Classify(ctx context.Context, image []byte, mediaType string) (*MealAnalysis, error) {
	blocks := []contentBlock{
		{
			Type: "image",
			Source: &imageSource{
				Type:      "base64",
				MediaType: mediaType,
				Data:      base64.StdEncoding.EncodeToString(image),
			},
		},
		{Type: "text", Text: visionPrompt},
	}

	text, err := a.send(ctx, blocks)
	if err != nil {
		return nil, err
	}

	var analysis MealAnalysis
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse vision response: %w", err)
	}
	return &analysis, nil
}

func (a *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	return a.send(ctx, []contentBlock{{Type: "text", Text: prompt}})
}

func (a *AnthropicClient) send(ctx context.Context, blocks []contentBlock) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	payload := anthropicRequest{
		Model:     a.model,
		MaxTokens: 1024,
		Messages:  []anthropicMessage{{Role: "user", Content: blocks}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Anthropic response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error %d: %s", resp.StatusCode, string(body))
	}

	var ar anthropicResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return "", fmt.Errorf("failed to parse Anthropic JSON: %w", err)
	}
	for _, block := range ar.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("empty Anthropic response")
}

// StripCodeFence removes a surrounding markdown code fence from model
// output, since responses sometimes arrive wrapped in ```json blocks
// despite the prompt.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
