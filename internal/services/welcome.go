package services

import "github.com/dmitrijs2005/letstalk/internal/models"

const welcomeAuthorName = "LetsTalk Team"

var welcomeSeeds = []struct {
	id, content, pic string
}{
	{"welcome-1", "Welcome to LetsTalk! What brings you to our platform? We'd love to hear what you're hoping to get out of this equal engagement community.", "🌟"},
	{"welcome-2", "What's one thing you're passionate about? Whether it's a hobby, cause, or interest - share what makes you excited!", "💬"},
	{"welcome-3", "How are you feeling today? This is a space where everyone's emotions and experiences matter equally.", "🎭"},
}

func isSeeded(all []*models.Post) bool {
	for _, p := range all {
		if p.IsWelcome() {
			return true
		}
	}
	return false
}
