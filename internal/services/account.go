package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/letstalk/internal/auth"
	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/config"
	"github.com/dmitrijs2005/letstalk/internal/cryptox"
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/letstalk/internal/store"
	"github.com/dmitrijs2005/letstalk/internal/timex"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type signupInput struct {
	Name  string `validate:"required,max=60"`
	Email string `validate:"required,email"`
	Bio   string `validate:"max=280"`
}

type profileInput struct {
	Name string `validate:"required,max=60"`
	Bio  string `validate:"max=280"`
	Pic  string `validate:"required,avatar"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("avatar", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.ProfilePics, fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register avatar validation: %v", err))
	}
	return v
}

// invalidInput turns validator errors into ErrInvalidProfile naming the
// first offending field.
func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s failed %q", common.ErrInvalidProfile, strings.ToLower(verrs[0].Field()), verrs[0].Tag())
	}
	return fmt.Errorf("%w: %v", common.ErrInvalidProfile, err)
}

// AccountService owns user records and the current-session pointer.
type AccountService struct {
	store           store.Store
	repomanager     repomanager.RepositoryManager
	clock           timex.Clock
	log             logging.Logger
	validate        *validator.Validate
	sessionSecret   []byte
	sessionValidity time.Duration
}

func NewAccountService(s store.Store, m repomanager.RepositoryManager, cfg *config.Config, clock timex.Clock, log logging.Logger) *AccountService {
	return &AccountService{
		store:           s,
		repomanager:     m,
		clock:           clock,
		log:             log.With("service", "accounts"),
		validate:        newValidator(),
		sessionSecret:   []byte(cfg.SessionSecret),
		sessionValidity: cfg.SessionValidity,
	}
}

// Signup registers a new account with zero credits and no friends.
// The email check runs before the password check, then the remaining input
// is validated.
func (s *AccountService) Signup(ctx context.Context, name, email, password, bio string) (*models.User, error) {
	repo := s.repomanager.Users(s.store)

	email = strings.TrimSpace(email)
	if _, err := repo.GetByEmail(ctx, email); err == nil {
		s.log.Debug(ctx, "signup refused", "reason", "duplicate email")
		return nil, common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return nil, common.ErrWeakPassword
	}

	in := signupInput{Name: strings.TrimSpace(name), Email: email, Bio: strings.TrimSpace(bio)}
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}

	hash, salt := cryptox.HashPassword([]byte(password))
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		Bio:          in.Bio,
		ProfilePic:   models.DefaultProfilePic,
		PasswordHash: hash,
		PasswordSalt: salt,
		Friends:      []string{},
		CreatedAt:    s.clock.Now(),
	}
	if err := repo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login returns the user whose email and password match.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repomanager.Users(s.store).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if !cryptox.VerifyPassword([]byte(password), u.PasswordSalt, u.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	return u, nil
}

// SetCurrentSession persists a signed session pointer for the account with
// email, replacing any previous one.
func (s *AccountService) SetCurrentSession(ctx context.Context, email string) (*models.Session, error) {
	u, err := s.repomanager.Users(s.store).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	token, err := auth.GenerateToken(u.ID, u.Email, s.sessionSecret, s.clock.Now(), s.sessionValidity)
	if err != nil {
		return nil, fmt.Errorf("error signing session: %w", err)
	}
	if err := s.repomanager.Session(s.store).Set(ctx, token); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "session started", "user_id", u.ID)
	return &models.Session{UserID: u.ID, Email: u.Email}, nil
}

// CurrentSession returns the persisted session. A missing, expired or
// tampered pointer yields ErrNotLoggedIn.
func (s *AccountService) CurrentSession(ctx context.Context) (*models.Session, error) {
	token, err := s.repomanager.Session(s.store).Get(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrNotLoggedIn
	}

	claims, err := auth.ParseToken(token, s.sessionSecret, s.clock.Now())
	if err != nil {
		s.log.Debug(ctx, "stored session rejected", "error", err)
		return nil, common.ErrNotLoggedIn
	}
	return &models.Session{UserID: claims.UserID, Email: claims.Email}, nil
}

// CurrentUser resolves the persisted session to its user record.
func (s *AccountService) CurrentUser(ctx context.Context) (*models.User, error) {
	sess, err := s.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return loadActor(ctx, s.repomanager.Users(s.store), sess)
}

func (s *AccountService) ClearSession(ctx context.Context) error {
	return s.repomanager.Session(s.store).Clear(ctx)
}

// Save overwrites the stored record that has u's email.
func (s *AccountService) Save(ctx context.Context, u *models.User) error {
	repo := s.repomanager.Users(s.store)
	existing, err := repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	u.ID = existing.ID
	u.ResponseCredits = common.ClampCredits(u.ResponseCredits)
	return repo.Save(ctx, u)
}

// User looks up any account by id.
func (s *AccountService) User(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.store).GetByID(ctx, id)
}

// UpdateProfile changes the acting user's name, bio and avatar. Posts keep
// the name and avatar they were created with.
func (s *AccountService) UpdateProfile(ctx context.Context, sess *models.Session, name, bio, pic string) (*models.User, error) {
	repo := s.repomanager.Users(s.store)
	u, err := loadActor(ctx, repo, sess)
	if err != nil {
		return nil, err
	}

	in := profileInput{Name: strings.TrimSpace(name), Bio: strings.TrimSpace(bio), Pic: pic}
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}

	u.Name, u.Bio, u.ProfilePic = in.Name, in.Bio, in.Pic
	if err := repo.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("error saving user: %w", err)
	}

	s.log.Info(ctx, "profile updated", "user_id", u.ID)
	return u, nil
}

// Stats summarises the acting user's posts, friends and credits.
func (s *AccountService) Stats(ctx context.Context, sess *models.Session) (*models.Stats, error) {
	u, err := loadActor(ctx, s.repomanager.Users(s.store), sess)
	if err != nil {
		return nil, err
	}
	all, err := s.repomanager.Posts(s.store).List(ctx)
	if err != nil {
		return nil, err
	}

	st := &models.Stats{Friends: len(u.Friends), Credits: u.ResponseCredits}
	for _, p := range all {
		if p.AuthorID == u.ID {
			st.Posts++
		}
	}
	return st, nil
}
