package newsletter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ainews-journalist/internal/markdown"
	"ainews-journalist/internal/model"
)

var renderNow = time.Date(2025, 10, 24, 8, 30, 0, 0, time.Local)

func testDoc() model.NewsDocument {
	return model.NewDocument(model.SourceHackerNews, []model.NewsItem{
		{ID: "1", Title: "GPT-5 released", Summary: "关于GPT-5 released的最新动态和详细分析。", URL: "https://example.com/gpt", Score: 300, By: "sama", Type: model.ItemTypeHackerNews, Category: "大语言模型"},
		{ID: "2", Title: "New GPU: faster", Summary: "A chip.", URL: "https://example.com/gpu", Score: 80, By: "jh", Type: model.ItemTypeHackerNews, Category: "AI硬件"},
	}, renderNow)
}

func TestExpandVars(t *testing.T) {
	got := ExpandVars("Digest {.CurrentDate} {.CurrentTime}", renderNow)
	if got != "Digest 2025-10-24 08:30" {
		t.Errorf("ExpandVars = %q", got)
	}
	if ExpandVars("", renderNow) != "" {
		t.Error("empty input should stay empty")
	}
}

func TestRenderParsesBack(t *testing.T) {
	out, err := Render(testDoc(), "AI 前沿资讯 {.CurrentDate}", renderNow)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	doc, err := markdown.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse: %v\n%s", err, out)
	}
	if got := doc.String("title"); got != "AI 前沿资讯 2025-10-24" {
		t.Errorf("title = %q", got)
	}
	if got := doc.String("slug"); got != "ai-news-20251024" {
		t.Errorf("slug = %q", got)
	}
	if got := doc.String("source"); got != "hn_news" {
		t.Errorf("source = %q", got)
	}
	if got := doc.String("datetime"); got != "2025-10-24 08:30" {
		t.Errorf("datetime = %q", got)
	}
	if got := doc.String("summary"); got != "GPT-5 released / New GPU: faster" {
		t.Errorf("summary = %q", got)
	}
	for _, want := range []string{
		"## 1. [GPT-5 released](https://example.com/gpt)",
		"## 2. [New GPU: faster](https://example.com/gpu)",
		"> 大语言模型 · score 300 · by sama",
		"source: hn_news",
	} {
		if !strings.Contains(doc.Body, want) {
			t.Errorf("body missing %q:\n%s", want, doc.Body)
		}
	}
}

func TestFileStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content", "ai-news.md")
	s := &FileStore{Path: path, Title: "Digest", Now: func() time.Time { return renderNow }}
	if err := s.Save(context.Background(), testDoc()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	doc, err := markdown.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if doc.String("title") != "Digest" {
		t.Errorf("title = %q", doc.String("title"))
	}
}
