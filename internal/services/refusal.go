package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/logging"
)

var businessErrors = []error{
	common.ErrDuplicateEmail,
	common.ErrWeakPassword,
	common.ErrInvalidCredentials,
	common.ErrNotLoggedIn,
	common.ErrInvalidProfile,
	common.ErrNoCredits,
	common.ErrDailyLimitReached,
	common.ErrEmptyContent,
	common.ErrPostNotFound,
	common.ErrResponseNotFound,
	common.ErrNotAuthor,
	common.ErrNotRelevant,
	common.ErrRetractionWindowExpired,
	common.ErrRecipientNotFound,
	common.ErrSelfRequest,
	common.ErrAlreadyFriends,
	common.ErrDuplicatePending,
	common.ErrRequestNotFound,
}

// IsBusinessError reports whether err is an expected rule refusal rather
// than a storage or internal failure.
func IsBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// logRefusal logs business-rule refusals at debug and anything else as an error.
func logRefusal(ctx context.Context, log logging.Logger, op string, err error) {
	if IsBusinessError(err) {
		log.Debug(ctx, op+" refused", "reason", err.Error())
		return
	}
	log.Error(ctx, op+" failed", "error", err)
}
