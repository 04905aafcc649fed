package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/novera/internal/config"
	"github.com/MKhiriev/novera/internal/logger"
	"github.com/MKhiriev/novera/internal/store"
	"github.com/MKhiriev/novera/internal/utils"
	"github.com/MKhiriev/novera/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is checked first, then the email. The password is stored as a
// bcrypt digest. A uniqueness violation reported by the database under a
// concurrent registration yields the same errors as the pre-checks.
//
// Returns the persisted user or:
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) RegisterUser(ctx context.Context, input models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.ensureAvailable(ctx, a.userRepository.FindUserByUsername, input.Username, store.ErrUsernameAlreadyExists); err != nil {
		log.Err(err).Str("username", input.Username).Msg("username check failed")
		return models.User{}, err
	}
	if err := a.ensureAvailable(ctx, a.userRepository.FindUserByEmail, input.Email, store.ErrEmailAlreadyExists); err != nil {
		log.Err(err).Str("email", input.Email).Msg("email check failed")
		return models.User{}, err
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

func (a *authService) ensureAvailable(ctx context.Context, find func(context.Context, string) (models.User, error), value string, takenErr error) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return takenErr
	case errors.Is(err, store.ErrNoUserWasFound):
		return nil
	default:
		return fmt.Errorf("user lookup failed: %w", err)
	}
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidCredentials if the user does not exist or the password does not match.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, input models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Username == "" || input.Password == "" {
		log.Error().Str("username", input.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, input.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", input.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.HashedPassword, input.Password) {
		log.Info().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token subject is the username. It is signed with the configured
// tokenSignKey, carries tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired. Any other failure (wrong issuer,
// bad signature, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveActiveUser parses tokenString and loads the user named by its subject.
// A token whose user no longer exists is rejected as invalid.
func (a *authService) ResolveActiveUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", token.Username).Msg("token subject does not exist")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("username", token.Username).Msg("user search by token subject failed")
		return models.User{}, fmt.Errorf("user search by token subject failed: %w", err)
	}

	return user, nil
}
