package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Category
		matched bool
	}{
		{
			name:    "alias inside a sentence",
			text:    "recommend seo tools please",
			want:    "SEO & Content Optimization",
			matched: true,
		},
		{
			name:    "uppercase input",
			text:    "I NEED WEBSITE BUILDERS",
			want:    "Website Creation & Design",
			matched: true,
		},
		{
			name:    "category name from model output",
			text:    "that sounds like E-commerce Support to me!",
			want:    "E-commerce Support",
			matched: true,
		},
		{
			name:    "no alias present",
			text:    "tell me a joke about cricket",
			matched: false,
		},
		{
			name:    "empty input",
			text:    "",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCategory(tt.text)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchCategoryFirstMatchWins(t *testing.T) {
	// Both phrases occur; declaration order decides.
	got, ok := MatchCategory("copywriting for video editing")
	require.True(t, ok)
	assert.Equal(t, Category("Copywriting & Blogging"), got)
}

func TestCategoriesCatalog(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 23)

	assert.Equal(t, Category("Website Creation & Design"), cats[0])
	assert.Equal(t, Category("Hosting"), cats[len(cats)-1])

	seen := make(map[Category]bool)
	for _, cat := range cats {
		assert.False(t, seen[cat], "duplicate category %q", cat)
		seen[cat] = true
	}
}

func TestEveryCategoryHasRoundTripAlias(t *testing.T) {
	// Every catalog category must be reachable from at least one alias,
	// otherwise classification could never produce it.
	for _, cat := range Categories() {
		found := false
		for _, alias := range categoryAliases {
			if alias.Category == cat {
				got, ok := MatchCategory(alias.Phrase)
				require.True(t, ok, "alias %q did not match anything", alias.Phrase)
				if got == cat {
					found = true
					break
				}
			}
		}
		assert.True(t, found, "category %q has no alias mapping back to it", cat)
	}
}

func TestAliasPhrasesAreLowercase(t *testing.T) {
	for _, alias := range categoryAliases {
		assert.Equal(t, strings.ToLower(alias.Phrase), alias.Phrase,
			"alias %q must be lowercase for containment matching", alias.Phrase)
	}
}
