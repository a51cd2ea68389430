package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const hikingPost = "I love hiking in the mountains every weekend"

func TestKeywords(t *testing.T) {
	got := Keywords("Hello, World! It's a GREAT day -- isn't it?")
	assert.Equal(t, []string{"hello", "world", "great", "day", "isn"}, got)

	assert.Empty(t, Keywords(""))
	assert.Equal(t, []string{"coffee", "coffee"}, Keywords("coffee and coffee"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
		level     Level
		relevant  bool
		score     float64
		common    []string
		message   string
	}{
		{
			name:      "one word is too short",
			original:  hikingPost,
			candidate: "cool",
			level:     LevelInvalid,
			score:     0,
			common:    []string{},
			message:   msgTooShort,
		},
		{
			name:      "two overlapping words still too short",
			original:  hikingPost,
			candidate: "  hiking   mountains ",
			level:     LevelInvalid,
			score:     0,
			common:    []string{"hiking", "mountains"},
			message:   msgTooShort,
		},
		{
			name:      "shares several keywords",
			original:  hikingPost,
			candidate: "I also love hiking especially in the mountains",
			level:     LevelValid,
			relevant:  true,
			score:     0.6,
			common:    []string{"love", "hiking", "mountains"},
			message:   msgValid,
		},
		{
			name:      "single shared keyword is a warning",
			original:  hikingPost,
			candidate: "My weekend plans involve cooking",
			level:     LevelWarning,
			relevant:  true,
			score:     0.2,
			common:    []string{"weekend"},
			message:   msgWarning,
		},
		{
			name:      "no overlap is rejected",
			original:  hikingPost,
			candidate: "Pizza tastes really good",
			level:     LevelInvalid,
			score:     0,
			common:    []string{},
			message:   msgInvalid,
		},
		{
			name:      "exactly three words with two shared keywords",
			original:  "Tell me about gardening tips",
			candidate: "gardening tips rock",
			level:     LevelValid,
			relevant:  true,
			score:     0.5,
			common:    []string{"gardening", "tips"},
			message:   msgValid,
		},
		{
			name:      "repeated keyword in original counts per occurrence",
			original:  "coffee coffee coffee morning tea ritual",
			candidate: "I like coffee a lot",
			level:     LevelValid,
			relevant:  true,
			score:     0.5,
			common:    []string{"coffee", "coffee", "coffee"},
			message:   msgValid,
		},
		{
			name:      "empty original never matches",
			original:  "",
			candidate: "anything at all here",
			level:     LevelInvalid,
			score:     0,
			common:    []string{},
			message:   msgInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.original, tt.candidate)

			assert.Equal(t, tt.level, v.Level)
			assert.Equal(t, tt.relevant, v.IsRelevant)
			assert.InDelta(t, tt.score, v.Score, 1e-9)
			assert.Equal(t, tt.common, v.CommonWords)
			assert.Equal(t, tt.message, v.Message)
		})
	}
}

func TestValidate_ScoreWithinUnitInterval(t *testing.T) {
	pairs := [][2]string{
		{hikingPost, hikingPost},
		{"a b c", "a b c d"},
		{"mountains mountains", "mountains are great"},
	}
	for _, p := range pairs {
		v := Validate(p[0], p[1])
		assert.GreaterOrEqual(t, v.Score, 0.0)
		assert.LessOrEqual(t, v.Score, 1.0)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	a := Validate(hikingPost, "mountains every single weekend")
	b := Validate(hikingPost, "mountains every single weekend")
	assert.Equal(t, a, b)
}
