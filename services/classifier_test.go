package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubbedClassifier points the OpenAI client at a local stub that
// answers every chat completion with the given content.
func newStubbedClassifier(t *testing.T, handler http.HandlerFunc) *IntentClassifier {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	client := openai.NewClientWithConfig(cfg)

	return NewIntentClassifier(client, "gpt-4o", 100, 60)
}

func completionHandler(t *testing.T, content string, capture *openai.ChatCompletionRequest) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: content,
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func TestClassifyMapsModelOutputThroughCatalog(t *testing.T) {
	var captured openai.ChatCompletionRequest
	classifier := newStubbedClassifier(t,
		completionHandler(t, "Try some great SEO tools! 🚀", &captured))

	category, ok, err := classifier.Classify(context.Background(), "i want to rank higher on google", LocaleEnglish)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Category("SEO & Content Optimization"), category)

	// The request carried the closed vocabulary and the user text.
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "SEO & Content Optimization")
	assert.Contains(t, captured.Messages[0].Content, "Hosting")
	assert.Contains(t, captured.Messages[0].Content, "Reply in english")
	assert.Equal(t, "i want to rank higher on google", captured.Messages[1].Content)
	assert.Equal(t, 100, captured.MaxTokens)
}

func TestClassifyOffVocabularyIsNotAnError(t *testing.T) {
	classifier := newStubbedClassifier(t,
		completionHandler(t, "I love cricket, what a match!", nil))

	category, ok, err := classifier.Classify(context.Background(), "who won yesterday", LocaleEnglish)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Category(""), category)
}

func TestClassifyAcceptsLiteralCategoryName(t *testing.T) {
	classifier := newStubbedClassifier(t,
		completionHandler(t, "That maps to Text-to-Speech & Voice Cloning.", nil))

	category, ok, err := classifier.Classify(context.Background(), "make my blog talk", LocaleHinglish)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Category("Text-to-Speech & Voice Cloning"), category)
}

func TestClassifyPropagatesAPIFailure(t *testing.T) {
	classifier := newStubbedClassifier(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, ok, err := classifier.Classify(context.Background(), "seo help", LocaleEnglish)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestClassifyHonorsCanceledContext(t *testing.T) {
	classifier := newStubbedClassifier(t,
		completionHandler(t, "seo tools", nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := classifier.Classify(ctx, "seo help", LocaleEnglish)
	assert.Error(t, err)
}
