package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/letstalk/internal/store"
	"github.com/dmitrijs2005/letstalk/internal/timex"
	"github.com/google/uuid"
)

// GraphService manages friend requests and friendship links. Friendship is
// always mutual: accepting a request links both users in one batch.
type GraphService struct {
	store       store.Store
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	log         logging.Logger
}

func NewGraphService(s store.Store, m repomanager.RepositoryManager, clock timex.Clock, log logging.Logger) *GraphService {
	return &GraphService{
		store:       s,
		repomanager: m,
		clock:       clock,
		log:         log.With("service", "graph"),
	}
}

// SendRequest creates a pending request from the acting user to the account
// registered under toEmail.
func (s *GraphService) SendRequest(ctx context.Context, sess *models.Session, toEmail string) (*models.FriendRequest, error) {
	usersRepo := s.repomanager.Users(s.store)
	requestsRepo := s.repomanager.Requests(s.store)

	from, err := loadActor(ctx, usersRepo, sess)
	if err != nil {
		return nil, err
	}

	to, err := usersRepo.GetByEmail(ctx, strings.TrimSpace(toEmail))
	if err != nil {
		err = notFound(err, common.ErrRecipientNotFound)
		logRefusal(ctx, s.log, "send request", err)
		return nil, err
	}

	if err := s.checkRequest(ctx, from, to); err != nil {
		logRefusal(ctx, s.log, "send request", err)
		return nil, err
	}

	fr := &models.FriendRequest{
		ID:         uuid.NewString(),
		FromUserID: from.ID,
		FromName:   from.Name,
		FromPic:    from.ProfilePic,
		ToUserID:   to.ID,
		Status:     models.RequestPending,
		Timestamp:  s.clock.Now(),
	}
	if err := requestsRepo.Create(ctx, fr); err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	s.log.Info(ctx, "friend request sent", "request_id", fr.ID, "from", from.ID, "to", to.ID)
	return fr, nil
}

func (s *GraphService) checkRequest(ctx context.Context, from, to *models.User) error {
	if from.ID == to.ID {
		return common.ErrSelfRequest
	}
	if from.IsFriend(to.ID) {
		return common.ErrAlreadyFriends
	}

	pending, err := s.repomanager.Requests(s.store).List(ctx)
	if err != nil {
		return err
	}
	dup := slices.ContainsFunc(pending, func(fr *models.FriendRequest) bool {
		return fr.FromUserID == from.ID && fr.ToUserID == to.ID && fr.Status == models.RequestPending
	})
	if dup {
		return common.ErrDuplicatePending
	}
	return nil
}

// AcceptRequest links the sender and the acting user as friends and deletes
// the request. A request that does not exist or is addressed to someone
// else fails with ErrRequestNotFound.
func (s *GraphService) AcceptRequest(ctx context.Context, sess *models.Session, requestID string) error {
	err := store.RunBatch(ctx, s.store, func(ctx context.Context, tx store.Store) error {
		usersRepo := s.repomanager.Users(tx)
		requestsRepo := s.repomanager.Requests(tx)

		me, err := loadActor(ctx, usersRepo, sess)
		if err != nil {
			return err
		}

		fr, err := requestsRepo.Get(ctx, requestID)
		if err != nil {
			return notFound(err, common.ErrRequestNotFound)
		}
		if fr.ToUserID != me.ID {
			return common.ErrRequestNotFound
		}

		sender, err := usersRepo.GetByID(ctx, fr.FromUserID)
		switch {
		case err == nil:
			me.AddFriend(sender.ID)
			sender.AddFriend(me.ID)
			if err := usersRepo.Save(ctx, sender); err != nil {
				return err
			}
			if err := usersRepo.Save(ctx, me); err != nil {
				return err
			}
		case errors.Is(err, common.ErrorNotFound):
			// sender account is gone; drop the request without linking anyone
			s.log.Warn(ctx, "request sender missing", "request_id", fr.ID, "from", fr.FromUserID)
		default:
			return err
		}

		return requestsRepo.Delete(ctx, fr.ID)
	})
	if err != nil {
		logRefusal(ctx, s.log, "accept request", err)
		return err
	}

	s.log.Info(ctx, "friend request accepted", "request_id", requestID)
	return nil
}

// RejectRequest deletes a request addressed to the acting user. Rejecting an
// unknown id, or one addressed to someone else, is a no-op.
func (s *GraphService) RejectRequest(ctx context.Context, sess *models.Session, requestID string) error {
	me, err := loadActor(ctx, s.repomanager.Users(s.store), sess)
	if err != nil {
		return err
	}

	repo := s.repomanager.Requests(s.store)
	fr, err := repo.Get(ctx, requestID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if fr.ToUserID != me.ID {
		s.log.Debug(ctx, "reject ignored", "request_id", requestID, "reason", "not addressed to user")
		return nil
	}

	if err := repo.Delete(ctx, requestID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	s.log.Info(ctx, "friend request rejected", "request_id", requestID)
	return nil
}

// PendingRequestsFor lists the pending requests addressed to userID.
func (s *GraphService) PendingRequestsFor(ctx context.Context, userID string) ([]*models.FriendRequest, error) {
	all, err := s.repomanager.Requests(s.store).List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(fr *models.FriendRequest) bool {
		return fr.ToUserID != userID || fr.Status != models.RequestPending
	}), nil
}

// FriendsOf resolves userID's friend set to user records. Ids that no longer
// resolve are skipped; an unknown user has no friends.
func (s *GraphService) FriendsOf(ctx context.Context, userID string) ([]*models.User, error) {
	all, err := s.repomanager.Users(s.store).List(ctx)
	if err != nil {
		return nil, err
	}

	var me *models.User
	for _, u := range all {
		if u.ID == userID {
			me = u
			break
		}
	}
	if me == nil {
		return []*models.User{}, nil
	}

	friends := make([]*models.User, 0, len(me.Friends))
	for _, u := range all {
		if me.IsFriend(u.ID) {
			friends = append(friends, u)
		}
	}
	return friends, nil
}
