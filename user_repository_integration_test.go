package carddb

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jack20410/CcardFinder/models"
)

func TestCreateUser(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	hash := "$2a$10$notarealhash"
	user, err := client.Users.Create(ctx, CreateUserParams{
		Email:        "ana@example.com",
		PasswordHash: &hash,
		DisplayName:  "Ana",
		CreditScore:  740,
		AnnualIncome: decimal.NewFromInt(82000),
		Audience:     models.AudienceTraveler,
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, models.AudienceTraveler, user.Audience)
	assert.True(t, user.AnnualIncome.Equal(decimal.NewFromInt(82000)))
	require.NotNil(t, user.PasswordHash)
	assert.Equal(t, hash, *user.PasswordHash)
	assert.WithinDuration(t, time.Now(), user.CreatedAt, 5*time.Second)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	CreateTestUser(t, client, "dup@example.com")

	_, err := client.Users.Create(ctx, CreateUserParams{
		Email:        "dup@example.com",
		DisplayName:  "Second",
		AnnualIncome: decimal.Zero,
		Audience:     models.AudienceStudent,
	})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestGetUser_ByIDAndEmail(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	created := CreateTestUser(t, client, "get@example.com")

	byID, err := client.Users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)

	byEmail, err := client.Users.GetByEmail(ctx, "get@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestGetUser_NotFound(t *testing.T) {
	client := setupTestClient(t)

	_, err := client.Users.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_BumpsUpdatedAt(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	created := CreateTestUser(t, client, "upd@example.com")

	updated, err := client.Users.Update(ctx, created.ID, UpdateUserParams{
		DisplayName:  "Renamed",
		CreditScore:  760,
		AnnualIncome: decimal.NewFromInt(90000),
		Audience:     models.AudiencePremium,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.DisplayName)
	assert.Equal(t, 760, updated.CreditScore)
	assert.Equal(t, models.AudiencePremium, updated.Audience)
	// updated_at is maintained by the trigger, not by this module.
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt.UTC(), updated.CreatedAt.UTC())
}

func TestSpendingProfile_UpsertAndGet(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	user := CreateTestUser(t, client, "spend@example.com")

	profile, err := client.Users.UpsertSpendingProfile(ctx, user.ID, SpendAmounts{
		Groceries: decimal.NewFromInt(450),
		Dining:    decimal.NewFromInt(200),
		Travel:    decimal.NewFromInt(100),
		Gas:       decimal.NewFromInt(140),
		Online:    decimal.NewFromInt(260),
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	// Upsert again: still exactly one profile per user, amounts replaced.
	replaced, err := client.Users.UpsertSpendingProfile(ctx, user.ID, SpendAmounts{
		Groceries: decimal.NewFromInt(500),
		Dining:    decimal.NewFromInt(250),
		Travel:    decimal.NewFromInt(120),
		Gas:       decimal.NewFromInt(150),
		Online:    decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, replaced.ID)
	assert.True(t, replaced.Groceries.Equal(decimal.NewFromInt(500)))

	got, err := client.Users.GetSpendingProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Dining.Equal(decimal.NewFromInt(250)))

	var count int
	require.NoError(t, client.Pool().QueryRow(ctx,
		"SELECT COUNT(*) FROM spending_profiles WHERE user_id = $1", user.ID).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDeleteUser_CascadesProfileAndComparisons(t *testing.T) {
	client := setupTestClient(t)
	ctx := context.Background()

	user := CreateTestUser(t, client, "cascade@example.com")
	card := CreateTestCard(t, client, "Cascade Card")

	_, err := client.Users.UpsertSpendingProfile(ctx, user.ID, SpendAmounts{})
	require.NoError(t, err)
	_, err = client.Comparisons.Save(ctx, user.ID, card.ID, decimal.NewFromInt(120), "keeper")
	require.NoError(t, err)

	require.NoError(t, client.Users.Delete(ctx, user.ID))

	_, err = client.Users.GetSpendingProfile(ctx, user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = client.Comparisons.GetByUserAndCard(ctx, user.ID, card.ID)
	assert.ErrorIs(t, err, ErrComparisonNotFound)

	// The card itself is untouched.
	_, err = client.Cards.GetByID(ctx, card.ID)
	assert.NoError(t, err)
}

func TestDeleteUser_NotFound(t *testing.T) {
	client := setupTestClient(t)

	user := CreateTestUser(t, client, "gone@example.com")
	require.NoError(t, client.Users.Delete(context.Background(), user.ID))
	assert.ErrorIs(t, client.Users.Delete(context.Background(), user.ID), ErrUserNotFound)
}
