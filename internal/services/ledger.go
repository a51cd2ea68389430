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
	"github.com/dmitrijs2005/letstalk/internal/relevance"
	"github.com/dmitrijs2005/letstalk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/letstalk/internal/store"
	"github.com/dmitrijs2005/letstalk/internal/timex"
	"github.com/google/uuid"
)

// LedgerService runs the credit economy: posting spends a credit, a relevant
// response earns one, deleting a post refunds one and retracting a response
// takes one back. Balances stay within [0, common.MaxResponseCredits].
type LedgerService struct {
	store       store.Store
	repomanager repomanager.RepositoryManager
	clock       timex.Clock
	log         logging.Logger
}

func NewLedgerService(s store.Store, m repomanager.RepositoryManager, clock timex.Clock, log logging.Logger) *LedgerService {
	return &LedgerService{
		store:       s,
		repomanager: m,
		clock:       clock,
		log:         log.With("service", "ledger"),
	}
}

// SeedWelcomePosts stores the system welcome posts unless they already exist.
func (s *LedgerService) SeedWelcomePosts(ctx context.Context) error {
	repo := s.repomanager.Posts(s.store)
	all, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if isSeeded(all) {
		return nil
	}

	now := s.clock.Now()
	seeds := make([]*models.Post, 0, len(welcomeSeeds))
	for _, w := range welcomeSeeds {
		seeds = append(seeds, &models.Post{
			ID:         w.id,
			Origin:     models.OriginSystem,
			AuthorID:   common.SystemUserID,
			AuthorName: welcomeAuthorName,
			AuthorPic:  w.pic,
			Content:    w.content,
			Timestamp:  now,
			Responses:  []*models.Response{},
		})
	}
	if err := repo.Append(ctx, seeds...); err != nil {
		return err
	}

	s.log.Info(ctx, "welcome posts seeded", "count", len(seeds))
	return nil
}

// WelcomePosts lists the system seed posts.
func (s *LedgerService) WelcomePosts(ctx context.Context) ([]*models.Post, error) {
	all, err := s.repomanager.Posts(s.store).List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(p *models.Post) bool { return !p.IsWelcome() }), nil
}

// CreatePost publishes content for the acting user. It needs at least one
// credit and fewer than common.DailyPostLimit user posts by the same author
// on the current calendar day.
func (s *LedgerService) CreatePost(ctx context.Context, sess *models.Session, content string) (*models.Post, error) {
	var post *models.Post

	err := store.RunBatch(ctx, s.store, func(ctx context.Context, tx store.Store) error {
		usersRepo := s.repomanager.Users(tx)
		postsRepo := s.repomanager.Posts(tx)

		u, err := loadActor(ctx, usersRepo, sess)
		if err != nil {
			return err
		}

		content = strings.TrimSpace(content)
		if content == "" {
			return common.ErrEmptyContent
		}
		if u.ResponseCredits < 1 {
			return common.ErrNoCredits
		}

		all, err := postsRepo.List(ctx)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		today := 0
		for _, p := range all {
			if p.Origin != models.OriginSystem && p.AuthorID == u.ID && timex.SameDay(p.Timestamp, now, now.Location()) {
				today++
			}
		}
		if today >= common.DailyPostLimit {
			return common.ErrDailyLimitReached
		}

		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("error generating post id: %w", err)
		}
		post = &models.Post{
			ID:         id.String(),
			Origin:     models.OriginUser,
			AuthorID:   u.ID,
			AuthorName: u.Name,
			AuthorPic:  u.ProfilePic,
			Content:    content,
			Timestamp:  now,
			Responses:  []*models.Response{},
		}
		if err := postsRepo.Prepend(ctx, post); err != nil {
			return err
		}

		u.ResponseCredits = common.ClampCredits(u.ResponseCredits - 1)
		return usersRepo.Save(ctx, u)
	})
	if err != nil {
		logRefusal(ctx, s.log, "create post", err)
		return nil, err
	}

	s.log.Info(ctx, "post created", "post_id", post.ID, "user_id", post.AuthorID)
	return post, nil
}

// DeletePost removes one of the acting user's posts and refunds a credit.
func (s *LedgerService) DeletePost(ctx context.Context, sess *models.Session, postID string) error {
	err := store.RunBatch(ctx, s.store, func(ctx context.Context, tx store.Store) error {
		usersRepo := s.repomanager.Users(tx)
		postsRepo := s.repomanager.Posts(tx)

		u, err := loadActor(ctx, usersRepo, sess)
		if err != nil {
			return err
		}

		p, err := postsRepo.Get(ctx, postID)
		if err != nil {
			return notFound(err, common.ErrPostNotFound)
		}
		if p.AuthorID != u.ID {
			return common.ErrNotAuthor
		}

		if err := postsRepo.Delete(ctx, postID); err != nil {
			return err
		}

		u.ResponseCredits = common.ClampCredits(u.ResponseCredits + 1)
		return usersRepo.Save(ctx, u)
	})
	if err != nil {
		logRefusal(ctx, s.log, "delete post", err)
		return err
	}

	s.log.Info(ctx, "post deleted", "post_id", postID)
	return nil
}

// RespondToPost appends a response by the acting user after checking its
// relevance against the post. A response graded "warning" is accepted and
// the verdict is returned so the caller can show it. An irrelevant response
// fails with a *RelevanceError. Responding to a welcome post completes the
// user's onboarding.
func (s *LedgerService) RespondToPost(ctx context.Context, sess *models.Session, postID, text string) (*models.Response, relevance.Verdict, error) {
	var (
		resp    *models.Response
		verdict relevance.Verdict
	)

	err := store.RunBatch(ctx, s.store, func(ctx context.Context, tx store.Store) error {
		usersRepo := s.repomanager.Users(tx)
		postsRepo := s.repomanager.Posts(tx)

		u, err := loadActor(ctx, usersRepo, sess)
		if err != nil {
			return err
		}

		p, err := postsRepo.Get(ctx, postID)
		if err != nil {
			return notFound(err, common.ErrPostNotFound)
		}

		text = strings.TrimSpace(text)
		verdict = relevance.Validate(p.Content, text)
		if !verdict.IsRelevant {
			return &RelevanceError{Verdict: verdict}
		}

		resp = &models.Response{
			ID:             uuid.NewString(),
			AuthorID:       u.ID,
			AuthorName:     u.Name,
			AuthorPic:      u.ProfilePic,
			Content:        text,
			Timestamp:      s.clock.Now(),
			RelevanceScore: verdict.Score,
		}
		p.Responses = append(p.Responses, resp)
		if err := postsRepo.Save(ctx, p); err != nil {
			return err
		}

		u.ResponseCredits = common.ClampCredits(u.ResponseCredits + 1)
		if p.IsWelcome() {
			u.HasCompletedWelcome = true
		}
		return usersRepo.Save(ctx, u)
	})
	if err != nil {
		logRefusal(ctx, s.log, "respond", err)
		return nil, verdict, err
	}

	s.log.Info(ctx, "response added", "post_id", postID, "response_id", resp.ID, "level", verdict.Level)
	return resp, verdict, nil
}

// DeleteResponse retracts one of the acting user's responses. Retraction is
// allowed until common.RetractionWindow has elapsed since the response was
// created, and takes back one credit without going below zero.
func (s *LedgerService) DeleteResponse(ctx context.Context, sess *models.Session, postID, responseID string) error {
	err := store.RunBatch(ctx, s.store, func(ctx context.Context, tx store.Store) error {
		usersRepo := s.repomanager.Users(tx)
		postsRepo := s.repomanager.Posts(tx)

		u, err := loadActor(ctx, usersRepo, sess)
		if err != nil {
			return err
		}

		p, err := postsRepo.Get(ctx, postID)
		if err != nil {
			return notFound(err, common.ErrPostNotFound)
		}
		r := p.FindResponse(responseID)
		if r == nil {
			return common.ErrResponseNotFound
		}
		if r.AuthorID != u.ID {
			return common.ErrNotAuthor
		}
		if s.clock.Now().Sub(r.Timestamp) > common.RetractionWindow {
			return common.ErrRetractionWindowExpired
		}

		p.RemoveResponse(responseID)
		if err := postsRepo.Save(ctx, p); err != nil {
			return err
		}

		u.ResponseCredits = common.ClampCredits(u.ResponseCredits - 1)
		return usersRepo.Save(ctx, u)
	})
	if err != nil {
		logRefusal(ctx, s.log, "delete response", err)
		return err
	}

	s.log.Info(ctx, "response deleted", "post_id", postID, "response_id", responseID)
	return nil
}

// ListByAuthor returns the posts written by userID, newest first.
func (s *LedgerService) ListByAuthor(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.ListByAuthors(ctx, []string{userID})
}

// ListByAuthors returns the posts written by any of userIDs, newest first.
func (s *LedgerService) ListByAuthors(ctx context.Context, userIDs []string) ([]*models.Post, error) {
	all, err := s.repomanager.Posts(s.store).List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(p *models.Post) bool {
		return !slices.Contains(userIDs, p.AuthorID)
	}), nil
}

// Feed returns the posts of the acting user's friends, newest first.
func (s *LedgerService) Feed(ctx context.Context, sess *models.Session) ([]*models.Post, error) {
	u, err := loadActor(ctx, s.repomanager.Users(s.store), sess)
	if err != nil {
		return nil, err
	}
	if len(u.Friends) == 0 {
		return []*models.Post{}, nil
	}
	return s.ListByAuthors(ctx, u.Friends)
}

func notFound(err, target error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return target
	}
	return err
}
