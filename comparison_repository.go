package carddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Jack20410/CcardFinder/models"
)

// comparisonColumns must match the Scan order in scanComparison.
const comparisonColumns = `id, user_id, card_id, net_annual_value, notes, created_at, updated_at`

// ComparisonRepo provides access to users' saved card comparisons.
type ComparisonRepo struct {
	db *pgxpool.Pool
}

func NewComparisonRepo(db *pgxpool.Pool) *ComparisonRepo {
	return &ComparisonRepo{db: db}
}

func scanComparison(row pgx.Row) (*models.UserCardComparison, error) {
	var c models.UserCardComparison
	err := row.Scan(&c.ID, &c.UserID, &c.CardID, &c.NetAnnualValue, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save inserts a comparison. Saving the same (user, card) pair twice fails
// with a unique violation; use Update to change an existing one.
func (r *ComparisonRepo) Save(ctx context.Context, userID, cardID uuid.UUID, netAnnualValue decimal.Decimal, notes string) (*models.UserCardComparison, error) {
	c, err := scanComparison(r.db.QueryRow(ctx, `
		INSERT INTO user_card_comparisons (user_id, card_id, net_annual_value, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING `+comparisonColumns,
		userID, cardID, netAnnualValue, notes))
	if err != nil {
		return nil, fmt.Errorf("failed to save comparison: %w", err)
	}
	return c, nil
}

func (r *ComparisonRepo) GetByUserAndCard(ctx context.Context, userID, cardID uuid.UUID) (*models.UserCardComparison, error) {
	c, err := scanComparison(r.db.QueryRow(ctx,
		`SELECT `+comparisonColumns+` FROM user_card_comparisons WHERE user_id = $1 AND card_id = $2`,
		userID, cardID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrComparisonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comparison: %w", err)
	}
	return c, nil
}

// ListForUser returns the user's comparisons, best net annual value first.
func (r *ComparisonRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserCardComparison, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+comparisonColumns+` FROM user_card_comparisons WHERE user_id = $1 ORDER BY net_annual_value DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	defer rows.Close()

	var comparisons []models.UserCardComparison
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		comparisons = append(comparisons, *c)
	}
	return comparisons, rows.Err()
}

// Update rewrites the computed value and notes of an existing comparison.
func (r *ComparisonRepo) Update(ctx context.Context, userID, cardID uuid.UUID, netAnnualValue decimal.Decimal, notes string) (*models.UserCardComparison, error) {
	c, err := scanComparison(r.db.QueryRow(ctx, `
		UPDATE user_card_comparisons
		SET net_annual_value = $3, notes = $4
		WHERE user_id = $1 AND card_id = $2
		RETURNING `+comparisonColumns,
		userID, cardID, netAnnualValue, notes))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrComparisonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comparison: %w", err)
	}
	return c, nil
}

func (r *ComparisonRepo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM user_card_comparisons WHERE user_id = $1 AND card_id = $2`, userID, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete comparison: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrComparisonNotFound
	}
	return nil
}
