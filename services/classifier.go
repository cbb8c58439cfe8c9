package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// classifyTimeout bounds a single OpenAI call so a hung request can never
// hang the webhook turn.
const classifyTimeout = 30 * time.Second

// IntentClassifier maps free-text user messages onto the category catalog
// by asking an OpenAI chat model, then validating the model's answer
// through MatchCategory. The model never gets to invent a category: an
// off-vocabulary answer comes back as ok=false, a failed call as an error.
type IntentClassifier struct {
	client    *openai.Client
	model     string
	maxTokens int
	limiter   *RateLimiter
}

// NewIntentClassifier builds a classifier backed by the given OpenAI client.
func NewIntentClassifier(client *openai.Client, model string, maxTokens, rpm int) *IntentClassifier {
	return &IntentClassifier{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		limiter:   NewRateLimiter(rpm),
	}
}

// Classify resolves text to a catalog category. The bool result is false
// when the model answered but named nothing in the catalog; an error means
// the call itself failed and is distinguishable from "no category".
func (c *IntentClassifier) Classify(ctx context.Context, text string, locale Locale) (Category, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", false, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: buildClassifierPrompt(locale),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", false, fmt.Errorf("chat completion returned no choices")
	}

	answer := strings.ToLower(resp.Choices[0].Message.Content)
	category, ok := MatchCategory(answer)

	slog.Info("Classified message",
		"category", string(category),
		"matched", ok,
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens,
	)

	return category, ok, nil
}

// buildClassifierPrompt fixes the response locale and enumerates the exact
// category vocabulary the model must choose from.
func buildClassifierPrompt(locale Locale) string {
	var b strings.Builder
	b.WriteString("You are a friendly WhatsApp bot for Indian users, helping them find AI tools. ")
	b.WriteString("Respond in short, engaging sentences with emojis. ")
	b.WriteString("Use a conversational tone and subtly nudge users toward relevant AI tools. ")
	fmt.Fprintf(&b, "Reply in %s (English or Hinglish). ", locale)
	b.WriteString("Map the user's query to one of these categories: ")

	categories := Categories()
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = string(cat)
	}
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(".")

	return b.String()
}
