// Package common defines shared sentinel errors and small helpers used across
// LetsTalk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Account errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidProfile     = errors.New("invalid profile data")

	// Ledger errors.
	ErrNoCredits               = errors.New("you need response credits to post, respond to a post first")
	ErrDailyLimitReached       = errors.New("daily post limit reached (3 posts per day)")
	ErrEmptyContent            = errors.New("content must not be empty")
	ErrPostNotFound            = errors.New("post not found")
	ErrResponseNotFound        = errors.New("response not found")
	ErrNotAuthor               = errors.New("you can only delete your own content")
	ErrNotRelevant             = errors.New("response is not relevant")
	ErrRetractionWindowExpired = errors.New("you can only delete responses within 2 minutes of posting")

	// Social graph errors.
	ErrRecipientNotFound = errors.New("user not found with that email")
	ErrSelfRequest       = errors.New("you cannot add yourself as a friend")
	ErrAlreadyFriends    = errors.New("already friends with this user")
	ErrDuplicatePending  = errors.New("friend request already sent")
	ErrRequestNotFound   = errors.New("request not found")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
