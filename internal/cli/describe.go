package cli

import (
	"errors"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/services"
)

// describe maps a service error to the text shown to the user.
func describe(err error) string {
	var rerr *services.RelevanceError
	switch {
	case errors.As(err, &rerr):
		return rerr.Verdict.Message
	case errors.Is(err, errOnboarding):
		return "Please " + err.Error() + "."
	case errors.Is(err, common.ErrNotLoggedIn):
		return "Please log in first (type 'login' or 'register')."
	case services.IsBusinessError(err):
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
