package scoreapi

import (
	"EcoLoyalty/internal/api/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("Choreo-API-Key"))

		var body ContentData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Love this look", body.Content.Caption)
		assert.Equal(t, []string{"#EcoDrizzle"}, body.Content.Hashtags)
		assert.Equal(t, "raincoat", body.Topic)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"relevance_score": 0.82,
			"confidence": 0.91,
			"analysis": {
				"text_score": 0.8,
				"visual_score": 0.85,
				"reasoning": "strong product match",
				"detected_elements": ["raincoat"]
			},
			"processing_time_ms": 412.5
		}`))
	}))
	defer server.Close()

	client := NewClient(&config.ScoreAPIConfig{URL: server.URL, ApiKey: "test-api-key", Timeout: 5})
	resp, err := client.Analyze(context.Background(), &ContentData{
		Content: ContentBody{
			Caption:   "Love this look",
			Hashtags:  []string{"#EcoDrizzle"},
			ImageURLs: []string{"https://cdn/a.jpg"},
		},
		Topic: "raincoat",
	})

	require.NoError(t, err)
	assert.Equal(t, 0.82, resp.RelevanceScore)
	assert.Equal(t, 0.91, resp.Confidence)
	assert.Equal(t, "strong product match", resp.Analysis.Reasoning)
	assert.Equal(t, []string{"raincoat"}, resp.Analysis.DetectedElements)
}

func TestAnalyzeErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(&config.ScoreAPIConfig{URL: server.URL, ApiKey: "test-api-key", Timeout: 5})
	_, err := client.Analyze(context.Background(), &ContentData{Topic: "raincoat"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
