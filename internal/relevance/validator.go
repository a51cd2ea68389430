// Package relevance scores how closely a response sticks to the post it
// answers. The check is lexical: both texts are reduced to keywords and the
// share of the post's keywords that reappear in the response is the score.
package relevance

import (
	"regexp"
	"slices"
	"strings"
)

// Level grades a verdict.
type Level string

const (
	LevelValid   Level = "valid"
	LevelWarning Level = "warning"
	LevelInvalid Level = "invalid"
)

const (
	minWords = 3

	validScore   = 0.3
	validCommon  = 2
	warningScore = 0.15
	warningCount = 1
)

const (
	msgTooShort = "Response too short. Please write at least 3 words."
	msgValid    = "Great! Your response appears relevant to the post."
	msgWarning  = "Your response might be loosely related. Consider engaging more directly with the topic."
	msgInvalid  = "Your response doesn't seem related to the post. Try addressing the topic directly."
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "is", "at", "which", "on", "a", "an", "and", "or", "but",
		"in", "with", "to", "for", "of", "as", "by", "that", "this",
		"it", "from", "be", "are", "was", "were", "been", "have", "has",
		"had", "do", "does", "did", "will", "would", "could", "should",
		"can", "may", "might", "i", "you", "he", "she", "we", "they",
		"my", "your", "his", "her", "our", "their", "me", "him",
		"us", "them", "what", "when", "where", "who", "why", "how",
	} {
		stopWords[w] = struct{}{}
	}
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Verdict is the outcome of Validate.
type Verdict struct {
	IsRelevant  bool
	Score       float64
	Level       Level
	Message     string
	CommonWords []string
}

// Keywords lower-cases text, replaces punctuation with spaces and keeps the
// tokens longer than two characters that are not stop words. Duplicates are
// kept in order.
func Keywords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Validate grades candidate as a response to original.
//
// CommonWords walks the original's keywords and keeps every one that also
// appears among the candidate's, so a keyword repeated in the original
// counts once per repetition. Score is len(CommonWords) divided by the
// number of original keywords (at least 1). A candidate with fewer than
// three whitespace-separated words is rejected with score 0.
func Validate(original, candidate string) Verdict {
	originalWords := Keywords(original)
	candidateWords := Keywords(candidate)

	common := make([]string, 0, len(originalWords))
	for _, w := range originalWords {
		if slices.Contains(candidateWords, w) {
			common = append(common, w)
		}
	}

	score := float64(len(common)) / float64(max(len(originalWords), 1))

	if len(strings.Fields(candidate)) < minWords {
		return Verdict{IsRelevant: false, Score: 0, Level: LevelInvalid, Message: msgTooShort, CommonWords: common}
	}

	switch {
	case score >= validScore || len(common) >= validCommon:
		return Verdict{IsRelevant: true, Score: score, Level: LevelValid, Message: msgValid, CommonWords: common}
	case score >= warningScore || len(common) >= warningCount:
		return Verdict{IsRelevant: true, Score: score, Level: LevelWarning, Message: msgWarning, CommonWords: common}
	default:
		return Verdict{IsRelevant: false, Score: score, Level: LevelInvalid, Message: msgInvalid, CommonWords: common}
	}
}
