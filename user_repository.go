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

// userColumns must match the Scan order in scanUser.
const userColumns = `id, email, password_hash, display_name, credit_score, annual_income, audience, created_at, updated_at`

// profileColumns must match the Scan order in scanProfile.
const profileColumns = `id, user_id, groceries, dining, travel, gas, online, created_at, updated_at`

// UserRepo provides access to users and their spending profiles.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

type CreateUserParams struct {
	Email        string
	PasswordHash *string
	DisplayName  string
	CreditScore  int
	AnnualIncome decimal.Decimal
	Audience     models.Audience
}

type UpdateUserParams struct {
	DisplayName  string
	CreditScore  int
	AnnualIncome decimal.Decimal
	Audience     models.Audience
}

// SpendAmounts carries the five monthly spend figures of a profile.
type SpendAmounts struct {
	Groceries decimal.Decimal
	Dining    decimal.Decimal
	Travel    decimal.Decimal
	Gas       decimal.Decimal
	Online    decimal.Decimal
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var audience string
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.CreditScore, &user.AnnualIncome, &audience,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Audience = models.ParseAudience(audience)
	return &user, nil
}

func scanProfile(row pgx.Row) (*models.SpendingProfile, error) {
	var p models.SpendingProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Groceries, &p.Dining, &p.Travel, &p.Gas, &p.Online,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a user. A duplicate email surfaces as a unique constraint
// violation (SQLSTATE 23505), not a silent overwrite.
func (r *UserRepo) Create(ctx context.Context, p CreateUserParams) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, display_name, credit_score, annual_income, audience)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		p.Email, p.PasswordHash, p.DisplayName, p.CreditScore, p.AnnualIncome, string(p.Audience)))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// Update rewrites the mutable user fields. updated_at is maintained by a
// trigger, so it advances on every write regardless of caller.
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, p UpdateUserParams) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET display_name = $2, credit_score = $3, annual_income = $4, audience = $5
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.DisplayName, p.CreditScore, p.AnnualIncome, string(p.Audience)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. The spending profile and saved comparisons go with
// it via ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpsertSpendingProfile creates or replaces the user's single profile. The
// UNIQUE constraint on user_id makes the 1:1 relationship an engine-enforced
// invariant rather than a convention.
func (r *UserRepo) UpsertSpendingProfile(ctx context.Context, userID uuid.UUID, amounts SpendAmounts) (*models.SpendingProfile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx, `
		INSERT INTO spending_profiles (user_id, groceries, dining, travel, gas, online)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			groceries = EXCLUDED.groceries,
			dining = EXCLUDED.dining,
			travel = EXCLUDED.travel,
			gas = EXCLUDED.gas,
			online = EXCLUDED.online
		RETURNING `+profileColumns,
		userID, amounts.Groceries, amounts.Dining, amounts.Travel, amounts.Gas, amounts.Online))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert spending profile: %w", err)
	}
	return profile, nil
}

func (r *UserRepo) GetSpendingProfile(ctx context.Context, userID uuid.UUID) (*models.SpendingProfile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM spending_profiles WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spending profile: %w", err)
	}
	return profile, nil
}
