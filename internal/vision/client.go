// Package vision extracts item details from a photo of a receipt, product
// label, or document using a multimodal model. The call is fire-and-wait: one
// request, one success or failure, no retry or queueing.
package vision

import (
	"context"

	"butler/internal/model"
)

// Result is the structured outcome of analyzing one image.
type Result struct {
	// Name of the detected item.
	Name string
	// ExpiryDate is the detected expiry or renewal date.
	ExpiryDate model.Time
	// Category is the best-fitting member of the category enumeration.
	Category model.Category
	// Confidence is the model's self-reported score in [0, 1].
	Confidence float64
}

// Client analyzes JPEG image bytes. Implementations surface every transport
// or decoding problem as an error wrapping common.ErrAnalysisFailed so
// callers can degrade to manual entry.
type Client interface {
	AnalyzeImage(ctx context.Context, image []byte) (Result, error)
}

// Config carries provider settings.
type Config struct {
	// APIKey authenticates against the provider.
	APIKey string
	// Model names the multimodal model to query.
	Model string
	// BaseURL overrides the provider endpoint, mainly for tests.
	BaseURL string
}
