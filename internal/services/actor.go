package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/repositories/users"
)

// loadActor resolves the user behind sess. A nil session or one whose user
// no longer exists counts as not logged in.
func loadActor(ctx context.Context, repo users.Repository, sess *models.Session) (*models.User, error) {
	if sess == nil || sess.UserID == "" {
		return nil, common.ErrNotLoggedIn
	}
	u, err := repo.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return u, nil
}
