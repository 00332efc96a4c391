package topic

import (
	"fmt"
	"strings"
)

// summaryRunes is the body prefix length used as a summary.
const summaryRunes = 100

// IsRelevant reports whether title or body mentions any filter keyword.
func IsRelevant(title, body string) bool {
	content := strings.ToLower(title + " " + body)
	for _, kw := range FilterKeywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

// Summarize returns the first 100 characters of body, or a sentence built
// from the title when there is no body.
func Summarize(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return fmt.Sprintf("关于%s的最新动态和详细分析。", title)
	}
	runes := []rune(body)
	if len(runes) <= summaryRunes {
		return strings.TrimSpace(body)
	}
	return strings.TrimSpace(string(runes[:summaryRunes])) + "..."
}

// CategorizeByTitle returns the category of the first group with a term in
// the title, or DefaultCategory.
func CategorizeByTitle(title string) string {
	t := strings.ToLower(title)
	for _, g := range TitleGroups {
		for _, term := range g.Terms {
			if strings.Contains(t, term) {
				return g.Category
			}
		}
	}
	return DefaultCategory
}

// CategorizeByKeyword looks keyword up exactly in KeywordCategories.
func CategorizeByKeyword(keyword string) string {
	if c, ok := KeywordCategories[keyword]; ok {
		return c
	}
	return DefaultCategory
}
