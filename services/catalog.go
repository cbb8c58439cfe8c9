package services

import "strings"

// Category is one of the fixed tool categories the bot recommends for.
// Values outside the catalog below are never stored or shown to users.
type Category string

// categoryAlias binds a lowercase trigger phrase to its category.
// Declaration order is the tie-break: the first alias whose phrase is
// contained in the input wins.
type categoryAlias struct {
	Phrase   string
	Category Category
}

var categoryAliases = []categoryAlias{
	{"website builders", "Website Creation & Design"},
	{"seo tools", "SEO & Content Optimization"},
	{"copywriting", "Copywriting & Blogging"},
	{"video editing", "Video Creation & Editing"},
	{"image editing", "Image Generation & Graphic Design"},
	{"email marketing", "Email Marketing & Outreach"},
	{"social media", "Social Media Management"},
	{"text to speech", "Text-to-Speech & Voice Cloning"},
	{"podcast editing", "Podcast & Audio Editing"},
	{"resume tools", "Resume & Career Tools"},
	{"chatbots", "Chatbots & Virtual Assistants"},
	{"ecommerce", "E-commerce Support"},
	{"idea generation", "Idea Generation & Planning"},
	{"learning tools", "Learning & Tutoring"},
	{"code assistance", "Code Assistance"},
	{"cybersecurity", "Cybersecurity & Privacy"},
	{"music generation", "Music & Audio Generation"},
	{"research tools", "Research & Summarization"},
	{"translation", "Translation & Subtitling"},
	{"ads creatives", "Ads & Creatives"},
	{"llm agents", "LLM-based Agents"},
	{"meeting tools", "Meeting Tools"},
	{"hosting", "Hosting"},
}

// MatchCategory maps free text to a catalog category by case-insensitive
// substring containment. Used to validate model output, so the raw model
// text is never trusted as a category value. Explicit alias phrases are
// checked first in declaration order, then the category names themselves,
// so a model that answers with the literal category name still validates.
// Returns false when nothing in the catalog occurs in the text.
func MatchCategory(text string) (Category, bool) {
	lowered := strings.ToLower(text)
	for _, alias := range categoryAliases {
		if strings.Contains(lowered, alias.Phrase) {
			return alias.Category, true
		}
	}
	for _, alias := range categoryAliases {
		if strings.Contains(lowered, strings.ToLower(string(alias.Category))) {
			return alias.Category, true
		}
	}
	return "", false
}

// Categories returns the full catalog in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(categoryAliases))
	seen := make(map[Category]bool, len(categoryAliases))
	for _, alias := range categoryAliases {
		if !seen[alias.Category] {
			seen[alias.Category] = true
			out = append(out, alias.Category)
		}
	}
	return out
}
