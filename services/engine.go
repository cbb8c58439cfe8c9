package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"aitoolmate-bot/models"
)

// resetCommand wipes the sender's session and re-prompts for a language.
const resetCommand = "reset"

// Classifier resolves free text to a catalog category.
type Classifier interface {
	Classify(ctx context.Context, text string, locale Locale) (Category, bool, error)
}

// Recommender returns ranked tool records for a category.
type Recommender interface {
	Lookup(ctx context.Context, category Category, limit int) ([]models.Recommendation, error)
}

// Sessions is the locale store the engine drives. Only the engine calls
// these; nothing else mutates session state.
type Sessions interface {
	Get(sender string) (Locale, bool)
	Set(sender string, locale Locale)
	Delete(sender string)
}

// ConversationEngine runs the per-sender state machine: locale selection,
// reset handling, then classify -> lookup -> format for every other
// message. It is safe for concurrent turns; the session store is the only
// shared state and its operations are atomic.
type ConversationEngine struct {
	sessions   Sessions
	classifier Classifier
	store      Recommender

	// SanitizeErrors switches the error branch from the reference
	// behavior (raw error text in the chat reply) to a logged-only
	// error with a generic apology shown to the user.
	sanitizeErrors bool
}

// NewConversationEngine wires the engine's collaborators.
func NewConversationEngine(sessions Sessions, classifier Classifier, store Recommender, sanitizeErrors bool) *ConversationEngine {
	return &ConversationEngine{
		sessions:       sessions,
		classifier:     classifier,
		store:          store,
		sanitizeErrors: sanitizeErrors,
	}
}

// Reply produces the outbound text for one inbound message. It never
// returns an error: every failure becomes a localized chat reply, and
// session mutations only happen in the locale-selection and reset
// branches, which touch no external service.
func (e *ConversationEngine) Reply(ctx context.Context, sender, body string) string {
	trimmed := strings.TrimSpace(body)

	locale, ok := e.sessions.Get(sender)
	if !ok {
		// No session yet: only a locale selection moves the sender on.
		if selected, valid := ParseLocale(trimmed); valid {
			e.sessions.Set(sender, selected)
			slog.Info("Session created", "sender", sender, "locale", string(selected))
			return Greeting(selected)
		}
		return LanguagePrompt()
	}

	if strings.EqualFold(trimmed, resetCommand) {
		e.sessions.Delete(sender)
		slog.Info("Session reset", "sender", sender)
		return LanguagePrompt()
	}

	category, matched, err := e.classifier.Classify(ctx, trimmed, locale)
	if err != nil {
		return e.failureReply(locale, "classification failed", sender, err)
	}
	if !matched {
		return DefaultResponse(locale, "", nil)
	}

	recs, err := e.store.Lookup(ctx, category, DefaultLookupLimit)
	if err != nil {
		return e.failureReply(locale, "tool lookup failed", sender, err)
	}

	return FormatRecommendations(recs, category, locale)
}

// failureReply converts an external-call failure into a chat reply. With
// sanitizeErrors the full error only reaches the logs.
func (e *ConversationEngine) failureReply(locale Locale, msg, sender string, err error) string {
	slog.Error(msg, "sender", sender, "error", err)
	if e.sanitizeErrors {
		return DefaultResponse(locale, "", errors.New("temporary issue, please try again"))
	}
	return DefaultResponse(locale, "", err)
}
