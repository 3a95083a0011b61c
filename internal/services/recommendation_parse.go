package services

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNoRecommendationArray = errors.New("no JSON array in model output")

type parsedRecommendation struct {
	CareerPath  string
	Explanation string
	Confidence  int
}

type rawRecommendation struct {
	CareerPath      string          `json:"career_path"`
	Explanation     string          `json:"explanation"`
	ConfidenceScore json.RawMessage `json:"confidence_score"`
}

// parseRecommendations extracts the JSON array from model output. Markdown fences and
// surrounding prose are ignored, scores may be numbers or numeric strings and are
// clamped to 0-100, entries without a career path are dropped.
func parseRecommendations(text string) ([]parsedRecommendation, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, errNoRecommendationArray
	}

	var raw []rawRecommendation
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, err
	}

	out := make([]parsedRecommendation, 0, len(raw))
	for _, r := range raw {
		path := strings.TrimSpace(r.CareerPath)
		if path == "" {
			continue
		}
		out = append(out, parsedRecommendation{
			CareerPath:  path,
			Explanation: strings.TrimSpace(r.Explanation),
			Confidence:  parseConfidence(r.ConfidenceScore),
		})
	}
	if len(out) == 0 {
		return nil, errNoRecommendationArray
	}
	return out, nil
}

func parseConfidence(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0
		}
	}
	return clampScore(int(math.Round(f)))
}

func clampScore(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	default:
		return n
	}
}

// Used when no generation key is configured.
var defaultRecommendations = []parsedRecommendation{
	{
		CareerPath:  "Technology & Software",
		Explanation: "Based on your interests, you might enjoy working in technology. This field offers diverse opportunities in software development, data analysis, and digital innovation.",
		Confidence:  80,
	},
	{
		CareerPath:  "Business & Management",
		Explanation: "Your responses suggest strong leadership potential. Consider roles in project management, business analysis, or entrepreneurship.",
		Confidence:  75,
	},
	{
		CareerPath:  "Creative & Design",
		Explanation: "You show creative thinking abilities. Explore opportunities in UX/UI design, digital marketing, or content creation.",
		Confidence:  70,
	},
}

// Used when the generation call fails or its output cannot be parsed.
var fallbackRecommendations = []parsedRecommendation{
	{
		CareerPath:  "Data Science & Analytics",
		Explanation: "Your analytical thinking and curiosity point toward working with data. Data science combines statistics, programming and business insight to solve real problems. Demand for these skills keeps growing across industries.",
		Confidence:  85,
	},
	{
		CareerPath:  "Software Development",
		Explanation: "Building software rewards problem solving and continuous learning. Developers work on everything from web and mobile apps to infrastructure. The field offers flexible paths into specialization or leadership.",
		Confidence:  78,
	},
	{
		CareerPath:  "Product Management",
		Explanation: "Product managers connect user needs, business goals and engineering. The role suits people who enjoy communication and strategic thinking. It is a common next step for people with both technical and business interests.",
		Confidence:  72,
	},
}
