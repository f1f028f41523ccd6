package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Vanshika394/sweet-shop-manager/internal/config"
	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/store"
	"github.com/Vanshika394/sweet-shop-manager/internal/utils"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// ids generates the UUID assigned to every new account.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It verifies that neither the username nor the email is already taken,
// bcrypt-hashes the password, and persists the user with a fresh UUID and
// the admin flag off. The plaintext password never leaves this method.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists on a
//     duplicate (either from the pre-check or, under a registration race,
//     from the unique constraint itself).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, username); err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// against the supplied password. A missing account and a wrong password
// both yield ErrInvalidCredentials: the two failure cases are intentionally
// indistinguishable so the endpoint leaks no username-enumeration signal.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's UUID as the subject, and
// expires after tokenDuration (7 days by default).
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates a raw JWT string and resolves it to the current
// persisted user record.
//
// Signature, issuer, and expiry are checked first; any validation failure
// (expired, wrong key, malformed) is normalised to ErrTokenIsExpiredOrInvalid
// so that callers do not need to inspect low-level JWT errors. Token validity
// is otherwise stateless: there is no revocation list, but a token whose
// subject no longer exists in the store fails verification here.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
