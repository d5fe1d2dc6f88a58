package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio-api/internal/logger"
	"portfolio-api/internal/mail"
	"portfolio-api/internal/model"
	"portfolio-api/internal/pkg/jwtutil"
	"portfolio-api/internal/repository"
)

// Tokens are valid for a fixed window from issuance; there is no refresh or
// revocation path.
const tokenTTL = time.Hour

var (
	ErrInvalidInput = errors.New("missing required fields")
	// ErrDuplicateCredential deliberately does not say which of username or
	// email is taken.
	ErrDuplicateCredential = errors.New("username or email already taken")
	// ErrInvalidCredentials covers both unknown-user and wrong-password so a
	// login response carries no account-existence signal.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
	ErrSigningUnavailable = errors.New("token signing unavailable")
)

type AuthService struct {
	users    UserStore
	profiles ProfileCache
	welcome  WelcomeEnqueuer
	secret   string
}

// UserStore is the credential store as this service consumes it. Lookups
// return (nil, nil) when no record matches.
type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByUsernameOrEmail(username, email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

// ProfileCache holds profile projections keyed by user ID. Optional; a nil
// cache means every lookup goes to the store.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID uint) (model.Profile, bool, error)
	SetProfile(ctx context.Context, userID uint, profile model.Profile) error
}

// WelcomeEnqueuer hands a welcome mail off to the async delivery pipeline.
// Optional; a nil enqueuer means no welcome mail is sent.
type WelcomeEnqueuer interface {
	Publish(ctx context.Context, msg mail.Message) error
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token  string
	UserID uint
}

func NewAuthService(users UserStore, profiles ProfileCache, welcome WelcomeEnqueuer, secret string) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		welcome:  welcome,
		secret:   secret,
	}
}

// Register creates one credential record. Presence is the only validation;
// the unique indexes in the store are the source of truth for uniqueness,
// with the pre-insert lookup serving as a fast path for a friendlier error.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)
	if username == "" || email == "" || password == "" {
		return ErrInvalidInput
	}

	if s.users == nil {
		return ErrStoreUnavailable
	}

	existing, err := s.users.GetByUsernameOrEmail(username, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrDuplicateCredential
		}
		return err
	}

	if s.welcome != nil {
		msg := mail.Message{
			To:      user.Email,
			Subject: "Welcome aboard",
			Body:    fmt.Sprintf("Hi %s, your account is ready.", user.Username),
		}
		if err := s.welcome.Publish(ctx, msg); err != nil {
			// Delivery is fire-and-forget; a full queue never fails a signup.
			logger.FromContext(ctx).Warn().Err(err).Uint("user_id", user.ID).
				Msg("enqueue welcome mail failed")
		}
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if s.users == nil {
		return nil, ErrStoreUnavailable
	}
	if s.secret == "" {
		return nil, ErrSigningUnavailable
	}

	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwtutil.GenerateToken(s.secret, tokenTTL, user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, UserID: user.ID}, nil
}

// GetProfile returns the username/email projection for a verified user ID.
// A record can be absent here if the account was removed out-of-band after
// token issuance; the token stays valid until expiry regardless.
func (s *AuthService) GetProfile(ctx context.Context, userID uint) (model.Profile, error) {
	if s.users == nil {
		return model.Profile{}, ErrStoreUnavailable
	}

	if s.profiles != nil {
		profile, hit, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Uint("user_id", userID).
				Msg("profile cache read failed")
		} else if hit {
			return profile, nil
		}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return model.Profile{}, err
	}
	if user == nil {
		return model.Profile{}, ErrUserNotFound
	}

	profile := model.Profile{Username: user.Username, Email: user.Email}
	if s.profiles != nil {
		if err := s.profiles.SetProfile(ctx, userID, profile); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Uint("user_id", userID).
				Msg("profile cache write failed")
		}
	}
	return profile, nil
}
