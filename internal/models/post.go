package models

import "time"

// Origin tags where a post came from.
type Origin string

const (
	// OriginUser marks posts written by members; they cost a credit and count
	// against the daily quota.
	OriginUser Origin = "user"
	// OriginSystem marks the seeded welcome posts. Responding to one completes
	// onboarding.
	OriginSystem Origin = "system"
)

// Post is a short message. AuthorName and AuthorPic are snapshots taken at
// creation time.
type Post struct {
	ID         string      `json:"id"`
	Origin     Origin      `json:"origin"`
	AuthorID   string      `json:"userId"`
	AuthorName string      `json:"userName"`
	AuthorPic  string      `json:"userPic"`
	Content    string      `json:"content"`
	Timestamp  time.Time   `json:"timestamp"`
	Responses  []*Response `json:"responses"`
}

// IsWelcome reports whether p is a system seed post.
func (p *Post) IsWelcome() bool {
	return p.Origin == OriginSystem
}

// FindResponse returns the response with id, or nil.
func (p *Post) FindResponse(id string) *Response {
	for _, r := range p.Responses {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RemoveResponse drops the response with id and reports whether it existed.
func (p *Post) RemoveResponse(id string) bool {
	for i, r := range p.Responses {
		if r.ID == id {
			p.Responses = append(p.Responses[:i], p.Responses[i+1:]...)
			return true
		}
	}
	return false
}

// Response is a reply to a post. RelevanceScore is fixed at submission.
type Response struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"userId"`
	AuthorName     string    `json:"userName"`
	AuthorPic      string    `json:"userPic"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	RelevanceScore float64   `json:"relevanceScore"`
}
