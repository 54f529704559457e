// Command example walks through the package end to end: it loads the demo
// user seeded by cmd/seed, scores every card in the catalog against the
// user's spending profile, saves the results as comparisons, and prints a
// ranked table. Run cmd/seed first.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	carddb "github.com/Jack20410/CcardFinder"
	"github.com/Jack20410/CcardFinder/config"
	"github.com/Jack20410/CcardFinder/logging"
	"github.com/Jack20410/CcardFinder/models"
	"github.com/Jack20410/CcardFinder/timezone"
)

const demoUserEmail = "demo@ccardfinder.dev"

var monthsPerYear = decimal.NewFromInt(12)

// netAnnualValue estimates what the card earns the profile in a year:
// for each category, 12 months of spend times the earn rate times the point
// value, summed across categories, minus the annual fee. Signup bonuses are
// first-year noise and stay out of the steady-state figure.
func netAnnualValue(card *models.CreditCard, profile *models.SpendingProfile) decimal.Decimal {
	rewards := decimal.Zero
	for _, rr := range card.RewardRates {
		annualSpend := profile.MonthlySpend(rr.Category).Mul(monthsPerYear)
		rewards = rewards.Add(annualSpend.Mul(rr.Rate).Mul(rr.PointValue))
	}
	return rewards.Sub(card.AnnualFee)
}

func saveComparison(ctx context.Context, client *carddb.Client, user *models.User, card *models.CreditCard, value decimal.Decimal) error {
	notes := fmt.Sprintf("scored %s", timezone.FormatFullTimestamp(time.Now()))

	_, err := client.Comparisons.Save(ctx, user.ID, card.ID, value, notes)
	if carddb.IsUniqueViolation(err) {
		_, err = client.Comparisons.Update(ctx, user.ID, card.ID, value, notes)
	}
	return err
}

func run(ctx context.Context, client *carddb.Client) error {
	user, err := client.Users.GetByEmail(ctx, demoUserEmail)
	if errors.Is(err, carddb.ErrUserNotFound) {
		return fmt.Errorf("demo user %q not found, run cmd/seed first", demoUserEmail)
	}
	if err != nil {
		return err
	}

	profile, err := client.Users.GetSpendingProfile(ctx, user.ID)
	if err != nil {
		return err
	}

	cards, err := client.Cards.List(ctx)
	if err != nil {
		return err
	}

	for i := range cards {
		// List results are not hydrated; fetch rates per card.
		card, err := client.Cards.GetByID(ctx, cards[i].ID)
		if err != nil {
			return err
		}

		value := netAnnualValue(card, profile)
		if err := saveComparison(ctx, client, user, card, value); err != nil {
			return err
		}
		logging.WithCard(card.ID.String()).Info("Scored card", "name", card.Name, "net_annual_value", value.String())
	}

	comparisons, err := client.Comparisons.ListForUser(ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Card ranking for %s (%s, Central time %s)\n",
		user.DisplayName, timezone.FormatHumanReadable(time.Now()), timezone.CurrentOffsetLabel())
	for rank, c := range comparisons {
		card, err := client.Cards.GetByID(ctx, c.CardID)
		if err != nil {
			return err
		}
		fmt.Printf("%2d. %-28s %-18s net $%s/year\n",
			rank+1, card.Name, card.Issuer, c.NetAnnualValue.StringFixed(2))
	}
	return nil
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

	if err := run(ctx, client); err != nil {
		slog.Error("Example run failed", "error", err)
		os.Exit(1)
	}
}
