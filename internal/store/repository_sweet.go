// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The sweet-shop-manager Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

var sweetColumns = []string{"id", "name", "category", "price", "quantity", "description", "image_url", "created_at"}

// sweetRepository is the SQL-backed implementation of [SweetRepository].
// Item records are owned by the inventory service exclusively; all catalog
// mutations flow through this repository.
//
// Quantity mutations are expressed as single conditional UPDATE statements
// verified through their affected rows, so two concurrent purchases of the
// same sweet can never drive the quantity negative.
type sweetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSweetRepository constructs a [SweetRepository] backed by the provided
// database connection and logger.
func NewSweetRepository(db *DB, logger *logger.Logger) SweetRepository {
	logger.Debug().Msg("creating sweet repository")
	return &sweetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSweet persists a new catalog entry and returns the stored row.
func (r *sweetRepository) CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(sweet.TableName()).
		Columns("name", "category", "price", "quantity", "description", "image_url", "created_at").
		Values(sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.Description, sweet.ImageURL, sweet.CreatedAt).
		Suffix("RETURNING " + strings.Join(sweetColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*sweetRepository.CreateSweet").Msg("error persisting sweet")
		return models.Sweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetSweet retrieves a single sweet by id.
// Returns [ErrSweetNotFound] if the id does not exist.
func (r *sweetRepository) GetSweet(ctx context.Context, id int64) (models.Sweet, error) {
	query, args, err := r.db.Builder().
		Select(sweetColumns...).
		From(models.Sweet{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sweet, err := scanSweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sweet{}, ErrSweetNotFound
		}
		return models.Sweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return sweet, nil
}

// ListSweets returns the whole catalog, newest-created first.
func (r *sweetRepository) ListSweets(ctx context.Context) ([]models.Sweet, error) {
	return r.SearchSweets(ctx, models.SweetFilter{})
}

// SearchSweets returns the sweets matching the conjunction of all supplied
// filters: case-insensitive substring match of the free-text query against
// name or description, exact category match, and an inclusive price range.
// A zero filter is equivalent to ListSweets. Ordering is newest-created
// first, ids descending as a tie-break.
func (r *sweetRepository) SearchSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	log := logger.FromContext(ctx)

	qb := r.db.Builder().
		Select(sweetColumns...).
		From(models.Sweet{}.TableName())

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		qb = qb.Where(sq.Or{
			sq.Expr("LOWER(name) LIKE ?", pattern),
			sq.Expr("LOWER(COALESCE(description, '')) LIKE ?", pattern),
		})
	}
	if filter.Category != "" {
		qb = qb.Where(sq.Eq{"category": filter.Category})
	}
	if filter.MinPrice != nil {
		qb = qb.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		qb = qb.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	query, args, err := qb.OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sweetRepository.SearchSweets").Msg("error executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sweets := make([]models.Sweet, 0)
	for rows.Next() {
		sweet, err := scanSweet(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sweets = append(sweets, sweet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sweets, nil
}

// UpdateSweet applies a merge-patch: only the non-nil fields of patch are
// written, everything else keeps its stored value. An empty patch returns
// the current row unchanged.
// Returns [ErrSweetNotFound] if the id does not exist.
func (r *sweetRepository) UpdateSweet(ctx context.Context, id int64, patch models.SweetPatch) (models.Sweet, error) {
	if patch.IsZero() {
		return r.GetSweet(ctx, id)
	}

	ub := r.db.Builder().Update(models.Sweet{}.TableName())
	if patch.Name != nil {
		ub = ub.Set("name", *patch.Name)
	}
	if patch.Category != nil {
		ub = ub.Set("category", *patch.Category)
	}
	if patch.Price != nil {
		ub = ub.Set("price", *patch.Price)
	}
	if patch.Quantity != nil {
		ub = ub.Set("quantity", *patch.Quantity)
	}
	if patch.Description != nil {
		ub = ub.Set("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		ub = ub.Set("image_url", *patch.ImageURL)
	}

	query, args, err := ub.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(sweetColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sweet{}, ErrSweetNotFound
		}
		return models.Sweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteSweet removes a catalog entry.
// Returns [ErrSweetNotFound] if the id does not exist.
func (r *sweetRepository) DeleteSweet(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().
		Delete(models.Sweet{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSweetNotFound
	}

	return nil
}

// DecrementQuantity atomically decreases the stock of a sweet by quantity,
// but only if enough units are on hand. The check and the write are one
// conditional statement:
//
//	UPDATE sweets SET quantity = quantity - N WHERE id = ? AND quantity >= N
//
// so concurrent purchases of the same sweet serialize inside the store and
// the quantity can never go negative. When the statement touches no rows,
// a follow-up existence read disambiguates [ErrSweetNotFound] from
// [ErrInsufficientStock].
func (r *sweetRepository) DecrementQuantity(ctx context.Context, id, quantity int64) (models.Sweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.Sweet{}.TableName()).
		Set("quantity", sq.Expr("quantity - ?", quantity)).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"quantity": quantity}).
		Suffix("RETURNING " + strings.Join(sweetColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the sweet does not exist or the guard rejected the
			// decrement. A second read tells the two apart; the purchase
			// itself already failed atomically with no state change.
			if _, getErr := r.GetSweet(ctx, id); getErr != nil {
				return models.Sweet{}, getErr
			}
			return models.Sweet{}, ErrInsufficientStock
		}

		log.Err(err).Str("func", "*sweetRepository.DecrementQuantity").Msg("error executing conditional decrement")
		return models.Sweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// IncrementQuantity atomically increases the stock of a sweet by quantity.
// The increment has no lower-bound guard but still executes as a single
// statement for consistency with DecrementQuantity.
// Returns [ErrSweetNotFound] if the id does not exist.
func (r *sweetRepository) IncrementQuantity(ctx context.Context, id, quantity int64) (models.Sweet, error) {
	query, args, err := r.db.Builder().
		Update(models.Sweet{}.TableName()).
		Set("quantity", sq.Expr("quantity + ?", quantity)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(sweetColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Sweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSweet(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Sweet{}, ErrSweetNotFound
		}
		return models.Sweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSweet(row rowScanner) (models.Sweet, error) {
	var sweet models.Sweet
	var description, imageURL sql.NullString

	err := row.Scan(&sweet.ID, &sweet.Name, &sweet.Category, &sweet.Price, &sweet.Quantity, &description, &imageURL, &sweet.CreatedAt)
	if err != nil {
		return models.Sweet{}, err
	}

	if description.Valid {
		sweet.Description = &description.String
	}
	if imageURL.Valid {
		sweet.ImageURL = &imageURL.String
	}

	return sweet, nil
}
