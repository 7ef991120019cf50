// Package backup serializes the full store state to a transfer document and
// validates documents coming back in.
package backup

import (
	"encoding/json"
	"fmt"

	"butler/internal/common"
	"butler/internal/model"
)

// Document is the backup payload: a full-fidelity dump of items and settings.
type Document struct {
	Items    []model.Item    `json:"items"`
	Settings *model.Settings `json:"settings,omitempty"`
}

// Export produces the pretty-printed backup document for items and settings.
func Export(items []model.Item, settings model.Settings) ([]byte, error) {
	doc := Document{Items: items, Settings: &settings}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Parse decodes a backup document. The items field must be present (an empty
// array is fine); settings are optional. Item contents are deliberately not
// revalidated beyond shape, matching the best-effort import contract.
func Parse(data []byte) (Document, error) {
	var raw struct {
		Items    *[]model.Item   `json:"items"`
		Settings *model.Settings `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, common.NewValidationError("document", fmt.Sprintf("not a valid backup: %v", err))
	}
	if raw.Items == nil {
		return Document{}, common.NewValidationError("items", "missing from backup document")
	}

	return Document{Items: *raw.Items, Settings: raw.Settings}, nil
}
