package common

import "time"

const (
	// MaxResponseCredits is the upper bound of a user's credit balance.
	MaxResponseCredits = 3

	// DailyPostLimit is how many user posts one author may publish per calendar day.
	DailyPostLimit = 3

	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6

	// RetractionWindow is how long after creation a response may still be deleted.
	RetractionWindow = 2 * time.Minute

	// SystemUserID authors the seeded welcome posts.
	SystemUserID = "system"
)

// Keyed store keys.
const (
	KeyUsers          = "users"
	KeyPosts          = "posts"
	KeyFriendRequests = "friendRequests"
	KeyCurrentUser    = "currentUser"
)
