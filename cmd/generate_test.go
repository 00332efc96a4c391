package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ainews-journalist/internal/model"
)

func TestPrintPreviewShowsFirstThree(t *testing.T) {
	items := make([]model.NewsItem, 0, 5)
	for _, title := range []string{"one", "two", "three", "four", "five"} {
		items = append(items, model.NewsItem{ID: title, Title: title, Summary: "s", Category: "AI技术", Score: 1})
	}
	doc := model.NewDocument(model.SourceLocalBackup, items, time.Now())

	var buf bytes.Buffer
	printPreview(&buf, doc)
	out := buf.String()
	for _, want := range []string{"1. one", "3. three", "Source:  local_backup", "Total:   5", "category: AI技术"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "four") {
		t.Errorf("preview should stop after three items:\n%s", out)
	}
}
