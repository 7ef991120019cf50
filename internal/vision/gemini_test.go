package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"butler/internal/common"
	"butler/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) string {
	reply := map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
			},
			"finishReason": "STOP",
		}},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := NewClient(Config{})
		assert.ErrorIs(t, err, common.ErrMissingConfig)
	})

	t.Run("defaults the model", func(t *testing.T) {
		client, err := NewClient(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-flash", client.(*geminiClient).model)
	})
}

func TestAnalyzeImage(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a structured reply", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody map[string]any

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			fmt.Fprint(w, geminiReply(`{"name":"Milk","expiryDate":"2026-06-01","category":"Food","confidence":0.9}`))
		})

		result, err := client.AnalyzeImage(ctx, []byte("jpeg-bytes"))
		require.NoError(t, err)

		assert.Equal(t, "Milk", result.Name)
		assert.Equal(t, model.CategoryFood, result.Category)
		assert.Equal(t, 2026, result.ExpiryDate.Year())
		assert.InDelta(t, 0.9, result.Confidence, 1e-9)

		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
		assert.Equal(t, "test-key", gotKey)
		require.Contains(t, gotBody, "contents")
		require.Contains(t, gotBody, "generationConfig")
	})

	t.Run("non-200 surfaces as analysis failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})

		_, err := client.AnalyzeImage(ctx, []byte("jpeg-bytes"))
		assert.ErrorIs(t, err, common.ErrAnalysisFailed)
	})

	t.Run("empty candidate list surfaces as analysis failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"candidates":[]}`)
		})

		_, err := client.AnalyzeImage(ctx, []byte("jpeg-bytes"))
		assert.ErrorIs(t, err, common.ErrAnalysisFailed)
	})

	t.Run("unparsable reply text surfaces as analysis failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, geminiReply("I could not read the image, sorry."))
		})

		_, err := client.AnalyzeImage(ctx, []byte("jpeg-bytes"))
		assert.ErrorIs(t, err, common.ErrAnalysisFailed)
	})
}
