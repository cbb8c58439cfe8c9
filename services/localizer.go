package services

import (
	"fmt"
	"strconv"
	"strings"

	"aitoolmate-bot/models"
)

// Locale selects the response style for all user-facing text.
type Locale string

const (
	LocaleEnglish  Locale = "english"
	LocaleHinglish Locale = "hinglish"
)

// ParseLocale interprets a locale-selection command. Only the exact words
// "english" and "hinglish" count, case-insensitively.
func ParseLocale(text string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case string(LocaleEnglish):
		return LocaleEnglish, true
	case string(LocaleHinglish):
		return LocaleHinglish, true
	}
	return "", false
}

// LanguagePrompt asks the sender to pick a locale. Shown before a locale
// exists, so it is the same for everyone.
func LanguagePrompt() string {
	return "🌟 Welcome to AIToolMate! Pehle language choose karo:\n" +
		"1. English\n" +
		"2. Hinglish\n" +
		"Reply with 'English' ya 'Hinglish' to start."
}

// Greeting welcomes a sender right after locale selection.
func Greeting(locale Locale) string {
	if locale == LocaleHinglish {
		return "Namaste! AIToolMate mein swagat hai! 😊\n" +
			"Main aapko AI tools suggest karunga jo aapke business ko boost karenge! 🚀\n" +
			"👉 How can I help you today?"
	}
	return "Hi! Welcome to AIToolMate! 😊\n" +
		"I'll suggest AI tools to boost your business! 🚀\n" +
		"👉 How can I help you today?"
}

// DefaultResponse covers every turn that produces no recommendation list.
// Precedence: an error beats a category, a category beats the generic
// didn't-understand message. Each branch exists in both locales.
func DefaultResponse(locale Locale, category Category, err error) string {
	if err != nil {
		if locale == LocaleHinglish {
			return fmt.Sprintf("Arre! Kuch toh gadbad ho gaya: %s. 😔 Dobara try karo!", err)
		}
		return fmt.Sprintf("Oops! Something went wrong: %s. 😔 Please try again!", err)
	}
	if category != "" {
		if locale == LocaleHinglish {
			return fmt.Sprintf("Koi tools '%s' ke liye nahi mile. 😔 Dusri category try karo, jaise 'SEO tools' ya 'Website builders'!", category)
		}
		return fmt.Sprintf("No tools found for '%s'. 😔 Try another category, like 'SEO tools' or 'Website builders'!", category)
	}
	if locale == LocaleHinglish {
		return "Sorry, samajh nahi aaya! 😅 Category bolo, jaise 'SEO tools', 'Website builders'."
	}
	return "Sorry, I didn't understand! 😅 Please specify a category, like 'SEO tools' or 'Website builders'."
}

// FormatRecommendations renders the recommendation list for one category.
// Records are printed in the order received; the store already ranks them
// by affiliate amount. An empty list falls back to DefaultResponse.
func FormatRecommendations(recs []models.Recommendation, category Category, locale Locale) string {
	if len(recs) == 0 {
		return DefaultResponse(locale, category, nil)
	}

	var b strings.Builder
	if locale == LocaleHinglish {
		fmt.Fprintf(&b, "*%s ke liye top AI tools*:\n\n", category)
		for _, rec := range recs {
			fmt.Fprintf(&b, "🔹 *%s*\n", rec.ToolName)
			fmt.Fprintf(&b, "   Kaam: %s\n", rec.UseCase)
			fmt.Fprintf(&b, "   Commission: %s\n", formatAmount(rec.AffiliateAmount))
			fmt.Fprintf(&b, "   Link: %s 🚀\n\n", rec.AffiliateLink)
		}
		b.WriteString("Aur tools chahiye? Dusri category bolo (jaise 'SEO tools', 'Website builders')! 😊")
		return b.String()
	}

	fmt.Fprintf(&b, "*Top AI Tools for %s*:\n\n", category)
	for _, rec := range recs {
		fmt.Fprintf(&b, "🔹 *%s*\n", rec.ToolName)
		fmt.Fprintf(&b, "   Use Case: %s\n", rec.UseCase)
		fmt.Fprintf(&b, "   Commission: %s\n", formatAmount(rec.AffiliateAmount))
		fmt.Fprintf(&b, "   Link: %s 🚀\n\n", rec.AffiliateLink)
	}
	b.WriteString("Need more tools? Try another category (e.g., 'SEO tools', 'Website builders')! 😊")
	return b.String()
}

// formatAmount prints commission values without trailing zero noise
// (50 not 50.000000, 12.5 stays 12.5).
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
