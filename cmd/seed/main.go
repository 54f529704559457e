// Command seed loads the demo card catalog and a demo user into the database.
// It is idempotent: rows that already exist are left alone, so it is safe to
// run against a database that has been seeded before.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	carddb "github.com/Jack20410/CcardFinder"
	"github.com/Jack20410/CcardFinder/config"
	"github.com/Jack20410/CcardFinder/logging"
	"github.com/Jack20410/CcardFinder/models"
)

const demoUserEmail = "demo@ccardfinder.dev"

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func cardCatalog() []carddb.CreateCardParams {
	minIncomePremium := decimal.NewFromInt(60000)

	return []carddb.CreateCardParams{
		{
			Name:             "Everyday Cash Preferred",
			Issuer:           "Meridian Bank",
			AnnualFee:        d("0"),
			APRMin:           d("19.24"),
			APRMax:           d("29.24"),
			ForeignTxFeePct:  d("3"),
			MinCreditScore:   670,
			SignupBonus:      d("200"),
			SignupBonusSpend: d("500"),
			Category:         models.CardCashback,
			TargetAudiences:  []models.Audience{models.AudienceYoungProfessional, models.AudienceFamily},
			RewardRates: []carddb.RewardRateParams{
				{Category: models.SpendGroceries, Rate: d("3"), PointValue: d("0.01")},
				{Category: models.SpendGas, Rate: d("2"), PointValue: d("0.01")},
				{Category: models.SpendDining, Rate: d("1"), PointValue: d("0.01")},
				{Category: models.SpendTravel, Rate: d("1"), PointValue: d("0.01")},
				{Category: models.SpendOnline, Rate: d("1"), PointValue: d("0.01")},
			},
			Benefits: []carddb.BenefitParams{
				{
					Title:       "Purchase protection",
					Description: "Covers new purchases against damage or theft for 90 days, up to $500 per claim.",
					Summary:     strPtr("90-day damage and theft coverage"),
					Type:        models.BenefitProtection,
				},
				{
					Title:       "Free credit score",
					Description: "Monthly FICO score update at no charge.",
					Type:        models.BenefitCredit,
				},
			},
		},
		{
			Name:             "Voyager Rewards",
			Issuer:           "Atlas Financial",
			AnnualFee:        d("95"),
			APRMin:           d("20.49"),
			APRMax:           d("27.49"),
			ForeignTxFeePct:  d("0"),
			MinCreditScore:   700,
			MinAnnualIncome:  &minIncomePremium,
			SignupBonus:      d("600"),
			SignupBonusSpend: d("4000"),
			Category:         models.CardTravel,
			TargetAudiences:  []models.Audience{models.AudienceTraveler, models.AudiencePremium},
			RewardRates: []carddb.RewardRateParams{
				{Category: models.SpendTravel, Rate: d("3"), PointValue: d("0.0125")},
				{Category: models.SpendDining, Rate: d("2"), PointValue: d("0.0125")},
				{Category: models.SpendGroceries, Rate: d("1"), PointValue: d("0.0125")},
				{Category: models.SpendGas, Rate: d("1"), PointValue: d("0.0125")},
				{Category: models.SpendOnline, Rate: d("1"), PointValue: d("0.0125")},
			},
			Benefits: []carddb.BenefitParams{
				{
					Title:       "Trip delay reimbursement",
					Description: "Up to $500 per ticket when a covered trip is delayed more than 6 hours.",
					Summary:     strPtr("Delay cover after 6 hours"),
					Type:        models.BenefitTravel,
				},
				{
					Title:       "Rental car insurance",
					Description: "Primary collision damage waiver when the rental is paid with the card.",
					Type:        models.BenefitInsurance,
				},
			},
		},
		{
			Name:             "Campus Starter",
			Issuer:           "Meridian Bank",
			AnnualFee:        d("0"),
			APRMin:           d("21.99"),
			APRMax:           d("29.99"),
			ForeignTxFeePct:  d("0"),
			MinCreditScore:   580,
			SignupBonus:      d("50"),
			SignupBonusSpend: d("100"),
			Category:         models.CardStudent,
			TargetAudiences:  []models.Audience{models.AudienceStudent},
			RewardRates: []carddb.RewardRateParams{
				{Category: models.SpendDining, Rate: d("2"), PointValue: d("0.01")},
				{Category: models.SpendOnline, Rate: d("2"), PointValue: d("0.01")},
				{Category: models.SpendGroceries, Rate: d("1"), PointValue: d("0.01")},
			},
			Benefits: []carddb.BenefitParams{
				{
					Title:       "Good-grades statement credit",
					Description: "$20 statement credit each school year your GPA is 3.0 or higher.",
					Type:        models.BenefitLifestyle,
				},
			},
		},
	}
}

func seedCards(ctx context.Context, client *carddb.Client) error {
	existing, err := client.Cards.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, card := range existing {
		seen[card.Issuer+"/"+card.Name] = true
	}

	for _, params := range cardCatalog() {
		if seen[params.Issuer+"/"+params.Name] {
			slog.Info("Card already seeded, skipping", "issuer", params.Issuer, "name", params.Name)
			continue
		}
		card, err := client.Cards.Create(ctx, params)
		if err != nil {
			return err
		}
		logging.WithCard(card.ID.String()).Info("Seeded card",
			"issuer", card.Issuer, "name", card.Name,
			"rates", len(card.RewardRates), "benefits", len(card.Benefits))
	}
	return nil
}

func seedDemoUser(ctx context.Context, client *carddb.Client) error {
	user, err := client.Users.GetByEmail(ctx, demoUserEmail)
	switch {
	case errors.Is(err, carddb.ErrUserNotFound):
		user, err = client.Users.Create(ctx, carddb.CreateUserParams{
			Email:        demoUserEmail,
			DisplayName:  "Demo User",
			CreditScore:  715,
			AnnualIncome: d("68000"),
			Audience:     models.AudienceYoungProfessional,
		})
		if err != nil {
			return err
		}
		logging.WithUser(user.ID.String()).Info("Seeded demo user", "email", user.Email)
	case err != nil:
		return err
	default:
		logging.WithUser(user.ID.String()).Info("Demo user already seeded", "email", user.Email)
	}

	_, err = client.Users.UpsertSpendingProfile(ctx, user.ID, carddb.SpendAmounts{
		Groceries: d("520"),
		Dining:    d("240"),
		Travel:    d("180"),
		Gas:       d("130"),
		Online:    d("310"),
	})
	return err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := carddb.New(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize database client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := seedCards(ctx, client); err != nil {
		slog.Error("Failed to seed card catalog", "error", err)
		os.Exit(1)
	}
	if err := seedDemoUser(ctx, client); err != nil {
		slog.Error("Failed to seed demo user", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeding complete")
}
