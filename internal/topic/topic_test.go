package topic

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestIsRelevant(t *testing.T) {
	cases := []struct {
		title, body string
		want        bool
	}{
		{"Deep Learning breakthrough", "", true},
		{"Local weather forecast", "", false},
		{"Show HN: my side project", "It uses a Transformer under the hood", true},
		{"QUANTUM supremacy claimed", "", true},
		{"Bakery opens downtown", "fresh bread every morning", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRelevant(tc.title, tc.body), "%q / %q", tc.title, tc.body)
	}
}

func TestSummarizeTruncatesBody(t *testing.T) {
	s := Summarize("title", strings.Repeat("a", 150))
	assert.True(t, strings.HasSuffix(s, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(s), 103)

	exact := strings.Repeat("b", 100)
	assert.Equal(t, exact, Summarize("title", exact))

	assert.Equal(t, "short body", Summarize("title", "  short body \n"))
}

func TestSummarizeCountsRunes(t *testing.T) {
	body := strings.Repeat("深", 120)
	s := Summarize("t", body)
	assert.True(t, utf8.ValidString(s))
	assert.Equal(t, 103, utf8.RuneCountInString(s))
}

func TestSummarizeWithoutBody(t *testing.T) {
	s := Summarize("New GPT model released", "")
	assert.Contains(t, s, "New GPT model released")
	assert.Contains(t, Summarize("Robots", "   "), "Robots")
}

func TestCategorizeByTitle(t *testing.T) {
	assert.Equal(t, "大语言模型", CategorizeByTitle("New GPT model released"))
	// language-model group outranks the hardware group
	assert.Equal(t, "大语言模型", CategorizeByTitle("Running an LLM on a cheap GPU"))
	assert.Equal(t, "计算机视觉", CategorizeByTitle("Image segmentation at scale"))
	assert.Equal(t, "机器人技术", CategorizeByTitle("Warehouse robots learn to dance"))
	assert.Equal(t, "量子计算", CategorizeByTitle("Quantum error correction milestone"))
	assert.Equal(t, "AI伦理", CategorizeByTitle("AI safety institute report"))
	assert.Equal(t, "AI硬件", CategorizeByTitle("New chip for inference"))
	assert.Equal(t, DefaultCategory, CategorizeByTitle("AI model wins award"))
}

func TestCategorizeByKeyword(t *testing.T) {
	assert.Equal(t, "大语言模型", CategorizeByKeyword("GPT"))
	assert.Equal(t, "量子计算", CategorizeByKeyword("Quantum Computing"))
	assert.Equal(t, DefaultCategory, CategorizeByKeyword("quantum computing"))
	assert.Equal(t, DefaultCategory, CategorizeByKeyword("Blockchain"))
}
