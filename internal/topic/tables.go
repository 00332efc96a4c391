// Package topic decides whether a story is about AI and derives its summary
// and category. Everything here is pure and reads only the tables below.
package topic

// DefaultCategory is used when no group or keyword matches.
const DefaultCategory = "AI技术"

// FilterKeywords are matched as lower-case substrings of title+body.
var FilterKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "deep learning",
	"neural network", "gpt", "llm", "transformer", "computer vision",
	"nlp", "natural language", "robotics", "automation", "algorithm",
	"data science", "big data", "quantum", "blockchain", "iot",
	"autonomous", "chatbot", "recommendation", "prediction",
}

// CategoryGroup maps title terms to one category.
type CategoryGroup struct {
	Terms    []string
	Category string
}

// TitleGroups are tested in order; the first match wins.
var TitleGroups = []CategoryGroup{
	{Terms: []string{"gpt", "llm", "language", "text"}, Category: "大语言模型"},
	{Terms: []string{"vision", "image", "photo", "video"}, Category: "计算机视觉"},
	{Terms: []string{"robot", "automation"}, Category: "机器人技术"},
	{Terms: []string{"quantum"}, Category: "量子计算"},
	{Terms: []string{"ethics", "safety", "governance"}, Category: "AI伦理"},
	{Terms: []string{"hardware", "chip", "gpu"}, Category: "AI硬件"},
}

// KeywordCategories maps a synthetic-content keyword to its category.
var KeywordCategories = map[string]string{
	"GPT":                         "大语言模型",
	"LLM":                         "大语言模型",
	"Computer Vision":             "计算机视觉",
	"Machine Learning":            "机器学习",
	"Deep Learning":               "深度学习",
	"Neural Networks":             "神经网络",
	"Natural Language Processing": "自然语言处理",
	"AI Ethics":                   "AI伦理",
	"Quantum Computing":           "量子计算",
	"Robotics":                    "机器人技术",
	"Autonomous Vehicles":         "自动驾驶",
	"AI Safety":                   "AI安全",
	"Generative AI":               "生成式AI",
	"Transformers":                "Transformer模型",
	"Reinforcement Learning":      "强化学习",
	"Speech Recognition":          "语音识别",
	"AI Governance":               "AI治理",
	"Edge AI":                     "边缘AI",
	"Federated Learning":          "联邦学习",
	"AI Hardware":                 "AI硬件",
	"AI Research":                 "AI研究",
	"AI Agents":                   "AI智能体",
}
