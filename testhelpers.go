package carddb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Jack20410/CcardFinder/models"
)

// CreateTestUser is a helper that creates a user with default values for testing.
func CreateTestUser(t *testing.T, client *Client, email string) *models.User {
	t.Helper()

	user, err := client.Users.Create(context.Background(), CreateUserParams{
		Email:        email,
		DisplayName:  "Test User",
		CreditScore:  720,
		AnnualIncome: decimal.NewFromInt(65000),
		Audience:     models.AudienceYoungProfessional,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

// CreateTestCard creates a card with one reward rate per spend category and a
// single benefit.
func CreateTestCard(t *testing.T, client *Client, name string) *models.CreditCard {
	t.Helper()

	rates := make([]RewardRateParams, 0, len(models.SpendCategories))
	for _, category := range models.SpendCategories {
		rates = append(rates, RewardRateParams{
			Category:   category,
			Rate:       decimal.NewFromFloat(1.5),
			PointValue: decimal.NewFromFloat(0.01),
		})
	}

	summary := "Covers rental damage on eligible cars"
	card, err := client.Cards.Create(context.Background(), CreateCardParams{
		Name:             name,
		Issuer:           "Test Bank",
		AnnualFee:        decimal.NewFromInt(95),
		APRMin:           decimal.NewFromFloat(18.99),
		APRMax:           decimal.NewFromFloat(27.99),
		ForeignTxFeePct:  decimal.Zero,
		MinCreditScore:   690,
		SignupBonus:      decimal.NewFromInt(200),
		SignupBonusSpend: decimal.NewFromInt(1000),
		Category:         models.CardCashback,
		TargetAudiences:  []models.Audience{models.AudienceYoungProfessional, models.AudienceFamily},
		RewardRates:      rates,
		Benefits: []BenefitParams{{
			Title:       "Rental car insurance",
			Description: "Secondary coverage when the rental is paid with the card.",
			Summary:     &summary,
			Type:        models.BenefitInsurance,
		}},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, card.ID)

	return card
}
