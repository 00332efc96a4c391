// Package synthetic produces plausible AI news items without touching the network.
package synthetic

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"ainews-journalist/internal/model"
	"ainews-journalist/internal/topic"
)

// Placeholder is replaced by the chosen keyword in every template.
const Placeholder = "{keyword}"

// ErrCorruptTables is returned when the tables cannot produce an item.
var ErrCorruptTables = errors.New("synthetic: corrupt keyword/template tables")

// Template is a title/summary pair containing Placeholder.
type Template struct {
	Title   string
	Summary string
}

// Tables holds the immutable vocabulary the generator draws from.
type Tables struct {
	Keywords  []string
	Templates []Template
	Author    string
}

// DefaultTables is the built-in vocabulary.
var DefaultTables = &Tables{
	Keywords: []string{
		"GPT", "LLM", "Computer Vision", "Machine Learning", "Deep Learning",
		"Neural Networks", "Natural Language Processing", "AI Ethics",
		"Quantum Computing", "Robotics", "Autonomous Vehicles", "AI Safety",
		"Generative AI", "Transformers", "Reinforcement Learning",
		"AI Agents", "Speech Recognition", "AI Governance",
		"Edge AI", "Federated Learning", "AI Hardware", "AI Research",
	},
	Templates: []Template{
		{
			Title:   "{keyword}技术取得重大突破",
			Summary: "最新研究显示，{keyword}技术在多个领域展现出前所未有的潜力。专家表示，这一突破将为相关行业带来革命性变化。",
		},
		{
			Title:   "{keyword}在商业应用中获得成功",
			Summary: "多家企业开始采用{keyword}技术，在提升效率和降低成本方面取得显著成效。市场分析师预测该技术将迎来快速增长。",
		},
		{
			Title:   "{keyword}研究获得重要进展",
			Summary: "学术界在{keyword}领域的研究取得重要进展，相关论文已在顶级期刊发表。这一成果为后续研究奠定了坚实基础。",
		},
		{
			Title:   "{keyword}在医疗领域的应用前景广阔",
			Summary: "医疗行业开始探索{keyword}技术的应用，在疾病诊断和治疗方案制定方面显示出巨大潜力。",
		},
		{
			Title:   "{keyword}技术标准化进程加速",
			Summary: "国际标准化组织开始制定{keyword}技术的相关标准，这将有助于技术的推广和应用。",
		},
	},
	Author: "AI前沿编辑",
}

const (
	minScore = 50
	maxScore = 200
)

// Validate reports ErrCorruptTables when no well-formed item can be built.
func (t *Tables) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tables", ErrCorruptTables)
	}
	if len(t.Keywords) == 0 {
		return fmt.Errorf("%w: no keywords", ErrCorruptTables)
	}
	for _, k := range t.Keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: blank keyword", ErrCorruptTables)
		}
	}
	if len(t.Templates) == 0 {
		return fmt.Errorf("%w: no templates", ErrCorruptTables)
	}
	for i, tpl := range t.Templates {
		if !strings.Contains(tpl.Title, Placeholder) || !strings.Contains(tpl.Summary, Placeholder) {
			return fmt.Errorf("%w: template %d lacks %s", ErrCorruptTables, i, Placeholder)
		}
	}
	return nil
}

// Generate returns exactly count items. Keywords are not repeated until the
// vocabulary is exhausted, after which the used set starts over. rnd may be
// nil to use the global source.
func Generate(t *Tables, count int, rnd *rand.Rand, now time.Time) ([]model.NewsItem, error) {
	if count <= 0 {
		return []model.NewsItem{}, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	intN := rand.IntN
	if rnd != nil {
		intN = rnd.IntN
	}

	items := make([]model.NewsItem, 0, count)
	used := make(map[string]struct{}, len(t.Keywords))
	for i := 0; i < count; i++ {
		available := make([]string, 0, len(t.Keywords))
		for _, k := range t.Keywords {
			if _, ok := used[k]; !ok {
				available = append(available, k)
			}
		}
		if len(available) == 0 {
			clear(used)
			available = t.Keywords
		}
		keyword := available[intN(len(available))]
		used[keyword] = struct{}{}
		tpl := t.Templates[intN(len(t.Templates))]

		n := i + 1
		items = append(items, model.NewsItem{
			ID:       fmt.Sprintf("local_%d", n),
			Title:    strings.ReplaceAll(tpl.Title, Placeholder, keyword),
			Summary:  strings.ReplaceAll(tpl.Summary, Placeholder, keyword),
			URL:      fmt.Sprintf("#local-news-%d", n),
			Score:    minScore + intN(maxScore-minScore+1),
			Time:     now.Unix(),
			By:       t.Author,
			Type:     model.ItemTypeLocal,
			Category: topic.CategorizeByKeyword(keyword),
		})
	}
	return items, nil
}
