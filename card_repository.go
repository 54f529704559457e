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

// cardColumns must match the Scan order in scanCard.
const cardColumns = `id, name, issuer, annual_fee, apr_min, apr_max, foreign_tx_fee_pct,
	min_credit_score, min_annual_income, signup_bonus, signup_bonus_spend, category,
	target_audiences, created_at, updated_at`

// CardRepo provides access to the card catalog with its reward rates and benefits.
type CardRepo struct {
	db *pgxpool.Pool
}

func NewCardRepo(db *pgxpool.Pool) *CardRepo {
	return &CardRepo{db: db}
}

type CreateCardParams struct {
	Name             string
	Issuer           string
	AnnualFee        decimal.Decimal
	APRMin           decimal.Decimal
	APRMax           decimal.Decimal
	ForeignTxFeePct  decimal.Decimal
	MinCreditScore   int
	MinAnnualIncome  *decimal.Decimal
	SignupBonus      decimal.Decimal
	SignupBonusSpend decimal.Decimal
	Category         models.CardCategory
	TargetAudiences  []models.Audience

	RewardRates []RewardRateParams
	Benefits    []BenefitParams
}

type RewardRateParams struct {
	Category   models.SpendCategory
	Rate       decimal.Decimal
	PointValue decimal.Decimal
}

type BenefitParams struct {
	Title       string
	Description string
	Summary     *string
	Type        models.BenefitType
}

func scanCard(row pgx.Row) (*models.CreditCard, error) {
	var card models.CreditCard
	var category string
	var audiences []string
	var minIncome decimal.NullDecimal
	err := row.Scan(
		&card.ID, &card.Name, &card.Issuer, &card.AnnualFee,
		&card.APRMin, &card.APRMax, &card.ForeignTxFeePct,
		&card.MinCreditScore, &minIncome, &card.SignupBonus, &card.SignupBonusSpend,
		&category, &audiences, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	card.Category = models.ParseCardCategory(category)
	card.TargetAudiences = make([]models.Audience, 0, len(audiences))
	for _, a := range audiences {
		card.TargetAudiences = append(card.TargetAudiences, models.ParseAudience(a))
	}
	if minIncome.Valid {
		v := minIncome.Decimal
		card.MinAnnualIncome = &v
	}
	return &card, nil
}

func audienceStrings(audiences []models.Audience) []string {
	out := make([]string, 0, len(audiences))
	for _, a := range audiences {
		out = append(out, string(a))
	}
	return out
}

// Create inserts a card together with its reward rates and benefits in one
// transaction, so a half-written card is never visible. A duplicate spend
// category among the rates violates the (card_id, category) constraint and
// rolls the whole card back.
func (r *CardRepo) Create(ctx context.Context, p CreateCardParams) (*models.CreditCard, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	var minIncome decimal.NullDecimal
	if p.MinAnnualIncome != nil {
		minIncome = decimal.NullDecimal{Decimal: *p.MinAnnualIncome, Valid: true}
	}

	card, err := scanCard(tx.QueryRow(ctx, `
		INSERT INTO credit_cards (name, issuer, annual_fee, apr_min, apr_max, foreign_tx_fee_pct,
			min_credit_score, min_annual_income, signup_bonus, signup_bonus_spend, category, target_audiences)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+cardColumns,
		p.Name, p.Issuer, p.AnnualFee, p.APRMin, p.APRMax, p.ForeignTxFeePct,
		p.MinCreditScore, minIncome, p.SignupBonus, p.SignupBonusSpend,
		string(p.Category), audienceStrings(p.TargetAudiences)))
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	for _, rate := range p.RewardRates {
		rr, err := r.insertRewardRate(ctx, tx, card.ID, rate)
		if err != nil {
			return nil, err
		}
		card.RewardRates = append(card.RewardRates, *rr)
	}

	for _, benefit := range p.Benefits {
		b, err := r.insertBenefit(ctx, tx, card.ID, benefit)
		if err != nil {
			return nil, err
		}
		card.Benefits = append(card.Benefits, *b)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return card, nil
}

func (r *CardRepo) insertRewardRate(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, p RewardRateParams) (*models.RewardRate, error) {
	var rr models.RewardRate
	var category string
	err := tx.QueryRow(ctx, `
		INSERT INTO reward_rates (card_id, category, rate, point_value)
		VALUES ($1, $2, $3, $4)
		RETURNING id, card_id, category, rate, point_value, created_at`,
		cardID, string(p.Category), p.Rate, p.PointValue).
		Scan(&rr.ID, &rr.CardID, &category, &rr.Rate, &rr.PointValue, &rr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reward rate for category %q: %w", p.Category, err)
	}
	rr.Category, _ = models.ParseSpendCategory(category)
	return &rr, nil
}

func (r *CardRepo) insertBenefit(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, p BenefitParams) (*models.Benefit, error) {
	var b models.Benefit
	var benefitType string
	err := tx.QueryRow(ctx, `
		INSERT INTO benefits (card_id, title, description, summary, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, card_id, title, description, summary, type, created_at`,
		cardID, p.Title, p.Description, p.Summary, string(p.Type)).
		Scan(&b.ID, &b.CardID, &b.Title, &b.Description, &b.Summary, &benefitType, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert benefit %q: %w", p.Title, err)
	}
	b.Type = models.ParseBenefitType(benefitType)
	return &b, nil
}

// GetByID returns a card hydrated with its reward rates and benefits.
func (r *CardRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CreditCard, error) {
	card, err := scanCard(r.db.QueryRow(ctx, `SELECT `+cardColumns+` FROM credit_cards WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card by ID: %w", err)
	}

	card.RewardRates, err = r.listRewardRates(ctx, id)
	if err != nil {
		return nil, err
	}
	card.Benefits, err = r.listBenefits(ctx, id)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *CardRepo) listRewardRates(ctx context.Context, cardID uuid.UUID) ([]models.RewardRate, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, card_id, category, rate, point_value, created_at
		FROM reward_rates WHERE card_id = $1 ORDER BY category`, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward rates: %w", err)
	}
	defer rows.Close()

	var rates []models.RewardRate
	for rows.Next() {
		var rr models.RewardRate
		var category string
		if err := rows.Scan(&rr.ID, &rr.CardID, &category, &rr.Rate, &rr.PointValue, &rr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reward rate: %w", err)
		}
		rr.Category, _ = models.ParseSpendCategory(category)
		rates = append(rates, rr)
	}
	return rates, rows.Err()
}

func (r *CardRepo) listBenefits(ctx context.Context, cardID uuid.UUID) ([]models.Benefit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, card_id, title, description, summary, type, created_at
		FROM benefits WHERE card_id = $1 ORDER BY title`, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	defer rows.Close()

	var benefits []models.Benefit
	for rows.Next() {
		var b models.Benefit
		var benefitType string
		if err := rows.Scan(&b.ID, &b.CardID, &b.Title, &b.Description, &b.Summary, &benefitType, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan benefit: %w", err)
		}
		b.Type = models.ParseBenefitType(benefitType)
		benefits = append(benefits, b)
	}
	return benefits, rows.Err()
}

// List returns the catalog without hydrating rates or benefits.
func (r *CardRepo) List(ctx context.Context) ([]models.CreditCard, error) {
	rows, err := r.db.Query(ctx, `SELECT `+cardColumns+` FROM credit_cards ORDER BY issuer, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []models.CreditCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// AddRewardRate attaches a rate to an existing card. A second rate for the
// same (card, category) pair fails with a unique violation; it never
// overwrites the existing row.
func (r *CardRepo) AddRewardRate(ctx context.Context, cardID uuid.UUID, p RewardRateParams) (*models.RewardRate, error) {
	var rr models.RewardRate
	var category string
	err := r.db.QueryRow(ctx, `
		INSERT INTO reward_rates (card_id, category, rate, point_value)
		VALUES ($1, $2, $3, $4)
		RETURNING id, card_id, category, rate, point_value, created_at`,
		cardID, string(p.Category), p.Rate, p.PointValue).
		Scan(&rr.ID, &rr.CardID, &category, &rr.Rate, &rr.PointValue, &rr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add reward rate: %w", err)
	}
	rr.Category, _ = models.ParseSpendCategory(category)
	return &rr, nil
}

// AddBenefit attaches a benefit to an existing card.
func (r *CardRepo) AddBenefit(ctx context.Context, cardID uuid.UUID, p BenefitParams) (*models.Benefit, error) {
	var b models.Benefit
	var benefitType string
	err := r.db.QueryRow(ctx, `
		INSERT INTO benefits (card_id, title, description, summary, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, card_id, title, description, summary, type, created_at`,
		cardID, p.Title, p.Description, p.Summary, string(p.Type)).
		Scan(&b.ID, &b.CardID, &b.Title, &b.Description, &b.Summary, &benefitType, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add benefit: %w", err)
	}
	b.Type = models.ParseBenefitType(benefitType)
	return &b, nil
}

// Delete removes a card. Reward rates, benefits, and saved comparisons go
// with it via ON DELETE CASCADE.
func (r *CardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCardNotFound
	}
	return nil
}
