package models

// Session identifies the acting user. It is passed explicitly into every
// ledger and graph operation.
type Session struct {
	UserID string
	Email  string
}

// Stats is the profile summary shown to a user.
type Stats struct {
	Posts   int
	Friends int
	Credits int
}
