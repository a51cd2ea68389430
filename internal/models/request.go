package models

import "time"

// RequestStatus of a friend request. Only pending requests are stored:
// accepting or rejecting deletes the record.
type RequestStatus string

const RequestPending RequestStatus = "pending"

type FriendRequest struct {
	ID         string        `json:"id"`
	FromUserID string        `json:"from"`
	FromName   string        `json:"fromName"`
	FromPic    string        `json:"fromPic"`
	ToUserID   string        `json:"to"`
	Status     RequestStatus `json:"status"`
	Timestamp  time.Time     `json:"timestamp"`
}
