package vision

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

	"butler/internal/common"
	"butler/internal/model"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// geminiClient implements Client against the Gemini generateContent API.
type geminiClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// NewClient creates a Gemini-backed vision client.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: vision API key is required", common.ErrMissingConfig)
	}

	m := cfg.Model
	if m == "" {
		m = "gemini-2.0-flash"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	return &geminiClient{
		apiKey:  cfg.APIKey,
		model:   m,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// AnalyzeImage sends one generateContent request with the inline JPEG and the
// closed category list, and decodes the structured JSON reply.
func (c *geminiClient) AnalyzeImage(ctx context.Context, image []byte) (Result, error) {
	labels := make([]string, 0, len(model.Categories))
	for _, category := range model.Categories {
		labels = append(labels, category.Label())
	}

	prompt := fmt.Sprintf(
		"Analyze this image (receipt, product label, or document) and extract the "+
			"product/item name, its expiry or renewal date, and classify it into one of "+
			"these categories: %s. If no specific expiry date is found, estimate based on "+
			"product type or use the current year end. Return the result in JSON format.",
		strings.Join(labels, ", "))

	requestBody := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{
				{
					"inline_data": map[string]any{
						"mime_type": "image/jpeg",
						"data":      base64.StdEncoding.EncodeToString(image),
					},
				},
				{"text": prompt},
			},
		}},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"name":       map[string]any{"type": "STRING", "description": "Name of the item"},
					"expiryDate": map[string]any{"type": "STRING", "description": "Expiry date in YYYY-MM-DD format"},
					"category":   map[string]any{"type": "STRING", "description": "The most fitting category from the provided list"},
					"confidence": map[string]any{"type": "NUMBER", "description": "Confidence score 0-1"},
				},
				"required": []string{"name", "expiryDate", "category"},
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to marshal request: %v", common.ErrAnalysisFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to create request: %v", common.ErrAnalysisFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: request failed: %v", common.ErrAnalysisFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to read response: %v", common.ErrAnalysisFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: API error (status %d): %s", common.ErrAnalysisFailed, resp.StatusCode, string(body))
	}

	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return Result{}, fmt.Errorf("%w: failed to parse response: %v", common.ErrAnalysisFailed, err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("%w: no candidates returned", common.ErrAnalysisFailed)
	}

	return parseResult(response.Candidates[0].Content.Parts[0].Text)
}

// geminiResponse mirrors the subset of the generateContent reply we consume.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}
