package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"butler/internal/common"
	"butler/internal/model"
)

// parseResult decodes the model's JSON text into a Result. The category must
// resolve to a member of the enumeration and the date must parse; anything
// else is an analysis failure the caller degrades from.
func parseResult(content string) (Result, error) {
	var raw struct {
		Name       string  `json:"name"`
		ExpiryDate string  `json:"expiryDate"`
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return Result{}, fmt.Errorf("%w: unparsable analysis output: %v", common.ErrAnalysisFailed, err)
	}

	if raw.Name == "" {
		return Result{}, fmt.Errorf("%w: no item name in analysis output", common.ErrAnalysisFailed)
	}

	expiry, err := model.ParseTime(raw.ExpiryDate)
	if err != nil {
		return Result{}, fmt.Errorf("%w: bad expiry date in analysis output: %v", common.ErrAnalysisFailed, err)
	}

	category, err := model.ParseCategory(raw.Category)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", common.ErrAnalysisFailed, err)
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return Result{
		Name:       raw.Name,
		ExpiryDate: expiry,
		Category:   category,
		Confidence: confidence,
	}, nil
}

// cleanMarkdownWrapper strips a ```json ... ``` fence the model sometimes
// wraps around its reply despite the JSON response mime type.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}
