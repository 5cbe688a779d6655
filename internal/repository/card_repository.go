package repository

import (
	"context"
	"errors"
	"fmt"

	"bizcardx/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrCardExists    = errors.New("card already exists")
	ErrCardNotFound  = errors.New("card not found")
	ErrUnknownColumn = errors.New("unknown column")
)

// uniqueViolation is the Postgres error code raised when the card_holder
// uniqueness constraint is hit.
const uniqueViolation = "23505"

// cardColumns is the fixed set of columns the update operation may touch.
var cardColumns = map[string]struct{}{
	"company_name":  {},
	"card_holder":   {},
	"designation":   {},
	"mobile_number": {},
	"email":         {},
	"website":       {},
	"area":          {},
	"city":          {},
	"state":         {},
	"pin_code":      {},
}

type CardRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCardRepository(db *pgxpool.Pool, logger *zap.Logger) *CardRepository {
	return &CardRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores one classified record. A duplicate card holder yields
// ErrCardExists; the row is discarded and nothing is retried.
func (r *CardRepository) Insert(ctx context.Context, card *models.BusinessCard) error {
	query := squirrel.Insert("business_cards").
		Columns("id", "company_name", "card_holder", "designation", "mobile_number",
			"email", "website", "area", "city", "state", "pin_code", "created_at", "updated_at").
		Values(card.ID, card.CompanyName, card.CardHolder, card.Designation, card.MobileNumber,
			card.Email, card.Website, card.Area, card.City, card.State, card.PinCode, card.CreatedAt, card.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrCardExists
		}
		return err
	}
	return nil
}

// ListHolders returns the card_holder values in insertion order, feeding the
// edit and delete pickers.
func (r *CardRepository) ListHolders(ctx context.Context) ([]string, error) {
	query := squirrel.Select("card_holder").
		From("business_cards").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holders []string
	for rows.Next() {
		var holder string
		if err := rows.Scan(&holder); err != nil {
			return nil, err
		}
		holders = append(holders, holder)
	}
	return holders, rows.Err()
}

// SelectAll returns every stored card in insertion order.
func (r *CardRepository) SelectAll(ctx context.Context) ([]*models.BusinessCard, error) {
	query := squirrel.Select("id", "company_name", "card_holder", "designation", "mobile_number",
		"email", "website", "area", "city", "state", "pin_code", "created_at", "updated_at").
		From("business_cards").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.BusinessCard
	for rows.Next() {
		var card models.BusinessCard
		if err := rows.Scan(
			&card.ID, &card.CompanyName, &card.CardHolder, &card.Designation, &card.MobileNumber,
			&card.Email, &card.Website, &card.Area, &card.City, &card.State, &card.PinCode,
			&card.CreatedAt, &card.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// UpdateField sets a single column on the row keyed by holder. The column
// must be one of the ten card columns; the whitelist also keeps the dynamic
// column name out of SQL injection reach.
func (r *CardRepository) UpdateField(ctx context.Context, holder, column, value string) error {
	if _, ok := cardColumns[column]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	query := squirrel.Update("business_cards").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"card_holder": holder}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, holder)
	}
	return nil
}

// Delete removes the row keyed by holder.
func (r *CardRepository) Delete(ctx context.Context, holder string) error {
	query := squirrel.Delete("business_cards").
		Where(squirrel.Eq{"card_holder": holder}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, holder)
	}
	return nil
}
