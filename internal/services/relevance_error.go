package services

import (
	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/relevance"
)

// RelevanceError is returned when a response fails the relevance check.
// It matches common.ErrNotRelevant and carries the verdict for display.
type RelevanceError struct {
	Verdict relevance.Verdict
}

func (e *RelevanceError) Error() string {
	return e.Verdict.Message
}

func (e *RelevanceError) Unwrap() error {
	return common.ErrNotRelevant
}
