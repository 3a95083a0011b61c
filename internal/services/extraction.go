package services

import (
	"strings"

	"github.com/vasantha-kumar-s/career-bot/internal/models"
)

// ProfileExtractor classifies a chat message that self-reports skills or interests.
// ok is false when the message should not be stored as a quiz response.
type ProfileExtractor interface {
	Extract(message string) (quizType string, ok bool)
}

type ExtractionRule struct {
	QuizType string
	Phrases  []string
}

// KeywordExtractor is a case-insensitive phrase matcher. A message must contain one
// of Triggers; Rules are then evaluated top to bottom and the first match wins,
// otherwise DefaultType applies.
type KeywordExtractor struct {
	Triggers    []string
	Rules       []ExtractionRule
	DefaultType string
}

func DefaultExtractor() *KeywordExtractor {
	return &KeywordExtractor{
		Triggers: []string{"my skill", "i am good at", "i like", "my interest", "i enjoy"},
		Rules: []ExtractionRule{
			{QuizType: models.QuizTypeSkills, Phrases: []string{"skill", "good at", "can do"}},
		},
		DefaultType: models.QuizTypeInterests,
	}
}

func (k *KeywordExtractor) Extract(message string) (string, bool) {
	m := strings.ToLower(message)
	if !containsAny(m, k.Triggers) {
		return "", false
	}
	for _, r := range k.Rules {
		if containsAny(m, r.Phrases) {
			return r.QuizType, true
		}
	}
	return k.DefaultType, true
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func extractedQuestion(quizType string) string {
	return "Information extracted from chat about " + quizType
}
