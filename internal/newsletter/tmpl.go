package newsletter

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"ainews-journalist/internal/model"

	"gopkg.in/yaml.v3"
)

// frontmatter is serialized in field order at the top of the digest.
type frontmatter struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Datetime  string `yaml:"datetime"`
	Source    string `yaml:"source"`
	TotalNews int    `yaml:"total_news"`
	Summary   string `yaml:"summary,omitempty"`
}

type Data struct {
	Frontmatter string
	Source      string
	Datetime    string
	Items       []model.NewsItem
}

//go:embed newsletter.tmpl
var newsletterTpl string

var compiled = template.Must(template.New("newsletter").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(newsletterTpl))

// Render produces a Markdown digest of doc with YAML frontmatter. title may
// contain ExpandVars placeholders.
func Render(doc model.NewsDocument, title string, now time.Time) (string, error) {
	fm := frontmatter{
		Title:     ExpandVars(title, now),
		Slug:      "ai-news-" + now.Local().Format("20060102"),
		Datetime:  doc.UpdateTime,
		Source:    string(doc.Source),
		TotalNews: doc.TotalNews,
		Summary:   headline(doc),
	}
	b, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("newsletter: frontmatter: %w", err)
	}
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, Data{
		Frontmatter: string(b),
		Source:      string(doc.Source),
		Datetime:    doc.UpdateTime,
		Items:       doc.News,
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// headline joins the first three titles for the frontmatter summary.
func headline(doc model.NewsDocument) string {
	titles := make([]string, 0, 3)
	for _, it := range doc.Preview(3) {
		titles = append(titles, it.Title)
	}
	return strings.Join(titles, " / ")
}

// FileStore writes the rendered digest to Path on every Save.
type FileStore struct {
	Path  string
	Title string
	Now   func() time.Time
}

func (s *FileStore) Save(_ context.Context, doc model.NewsDocument) error {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	content, err := Render(doc, s.Title, now)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(content), 0o644)
}
