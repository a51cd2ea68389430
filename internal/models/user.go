// Package models defines the LetsTalk domain entities as they are persisted
// in the keyed store.
package models

import (
	"slices"
	"time"
)

// DefaultProfilePic is the avatar assigned at signup.
const DefaultProfilePic = "👤"

// ProfilePics is the avatar palette a user can choose from.
var ProfilePics = []string{"👤", "😀", "😎", "🦊", "🐱", "🐶", "🌟", "🎨", "🎸", "📚", "🌈", "🚀"}

// User is an account record. PasswordHash/PasswordSalt hold the argon2id
// digest; the plaintext password is never stored.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Bio                 string    `json:"bio"`
	ProfilePic          string    `json:"profilePic"`
	PasswordHash        []byte    `json:"passwordHash"`
	PasswordSalt        []byte    `json:"passwordSalt"`
	ResponseCredits     int       `json:"responseCredits"`
	Friends             []string  `json:"friends"`
	HasCompletedWelcome bool      `json:"hasCompletedWelcome"`
	CreatedAt           time.Time `json:"createdAt"`
}

// IsFriend reports whether id is in u's friend set.
func (u *User) IsFriend(id string) bool {
	return slices.Contains(u.Friends, id)
}

// AddFriend inserts id into the friend set unless it is already there.
func (u *User) AddFriend(id string) {
	if !u.IsFriend(id) {
		u.Friends = append(u.Friends, id)
	}
}
