// Package models holds the persisted entities of the card-comparison schema.
// All monetary and rate fields are exact decimals, never binary floats.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID       `db:"id"`
	Email        string          `db:"email"`
	PasswordHash *string         `db:"password_hash"`
	DisplayName  string          `db:"display_name"`
	CreditScore  int             `db:"credit_score"`
	AnnualIncome decimal.Decimal `db:"annual_income"`
	Audience     Audience        `db:"audience"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// SpendingProfile is the single per-user record of monthly spend per category.
type SpendingProfile struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Groceries decimal.Decimal `db:"groceries"`
	Dining    decimal.Decimal `db:"dining"`
	Travel    decimal.Decimal `db:"travel"`
	Gas       decimal.Decimal `db:"gas"`
	Online    decimal.Decimal `db:"online"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// MonthlySpend returns the profile's amount for a spend category.
func (p *SpendingProfile) MonthlySpend(category SpendCategory) decimal.Decimal {
	switch category {
	case SpendGroceries:
		return p.Groceries
	case SpendDining:
		return p.Dining
	case SpendTravel:
		return p.Travel
	case SpendGas:
		return p.Gas
	case SpendOnline:
		return p.Online
	default:
		return decimal.Zero
	}
}

type CreditCard struct {
	ID               uuid.UUID        `db:"id"`
	Name             string           `db:"name"`
	Issuer           string           `db:"issuer"`
	AnnualFee        decimal.Decimal  `db:"annual_fee"`
	APRMin           decimal.Decimal  `db:"apr_min"`
	APRMax           decimal.Decimal  `db:"apr_max"`
	ForeignTxFeePct  decimal.Decimal  `db:"foreign_tx_fee_pct"`
	MinCreditScore   int              `db:"min_credit_score"`
	MinAnnualIncome  *decimal.Decimal `db:"min_annual_income"`
	SignupBonus      decimal.Decimal  `db:"signup_bonus"`
	SignupBonusSpend decimal.Decimal  `db:"signup_bonus_spend"`
	Category         CardCategory     `db:"category"`
	TargetAudiences  []Audience       `db:"target_audiences"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`

	// Hydrated by CardRepo.GetByID; nil on list results.
	RewardRates []RewardRate
	Benefits    []Benefit
}

// RewardRate is a card's earn rate for one spend category.
// At most one row exists per (card, category) pair.
type RewardRate struct {
	ID         uuid.UUID       `db:"id"`
	CardID     uuid.UUID       `db:"card_id"`
	Category   SpendCategory   `db:"category"`
	Rate       decimal.Decimal `db:"rate"`
	PointValue decimal.Decimal `db:"point_value"`
	CreatedAt  time.Time       `db:"created_at"`
}

type Benefit struct {
	ID          uuid.UUID   `db:"id"`
	CardID      uuid.UUID   `db:"card_id"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Summary     *string     `db:"summary"`
	Type        BenefitType `db:"type"`
	CreatedAt   time.Time   `db:"created_at"`
}

// UserCardComparison is a user's saved evaluation of one card.
// At most one row exists per (user, card) pair.
type UserCardComparison struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	CardID         uuid.UUID       `db:"card_id"`
	NetAnnualValue decimal.Decimal `db:"net_annual_value"`
	Notes          string          `db:"notes"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
