package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

var userColumns = []string{"id", "username", "email", "password_hash", "is_admin", "created_at"}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation of the created account.
//
// The INSERT carries a RETURNING clause, so the caller receives the stored
// row including the database-assigned created_at.
//
// Error handling:
//   - unique violation on the username column → [ErrUsernameAlreadyExists].
//   - unique violation on the email column → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns("id", "username", "email", "password_hash", "is_admin", "created_at").
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.IsAdmin, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Username, &created.Email, &created.PasswordHash, &created.IsAdmin, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error persisting user")

		if conflictErr := classifyUserConflict(err); conflictErr != nil {
			return models.User{}, conflictErr
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record with the given username.
// Returns [ErrNoUserWasFound] if no such user exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"username": username})
}

// FindUserByEmail retrieves the user record with the given email.
// Returns [ErrNoUserWasFound] if no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"email": email})
}

// FindUserByID retrieves the user record with the given identifier.
// Returns [ErrNoUserWasFound] if no such user exists; the auth layer treats
// that as an invalid token, since the identity no longer resolves.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"id": id})
}

func (r *userRepository) findUserBy(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.IsAdmin, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// classifyUserConflict maps a driver-level unique-violation error to the
// matching conflict sentinel, or returns nil for unrelated errors. The
// username/email distinction is derived from the violated constraint name
// (pgx) or the constraint message (sqlite3).
func classifyUserConflict(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		if strings.Contains(postgresConstraint(err), "email") {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		if strings.Contains(sqliteErr.Error(), "email") {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	}

	return nil
}
