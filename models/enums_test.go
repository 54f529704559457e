package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSpendCategory(t *testing.T) {
	for _, c := range SpendCategories {
		got, ok := ParseSpendCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := ParseSpendCategory("crypto")
	assert.False(t, ok)
}

func TestParseAudience_UnknownDefaults(t *testing.T) {
	assert.Equal(t, AudienceTraveler, ParseAudience("traveler"))
	assert.Equal(t, AudienceYoungProfessional, ParseAudience("astronaut"))
}

func TestParseCardCategory_UnknownDefaults(t *testing.T) {
	assert.Equal(t, CardTravel, ParseCardCategory("travel"))
	assert.Equal(t, CardCashback, ParseCardCategory(""))
}

func TestSpendingProfile_MonthlySpend(t *testing.T) {
	p := SpendingProfile{
		Groceries: decimal.NewFromInt(400),
		Dining:    decimal.NewFromInt(250),
		Travel:    decimal.NewFromInt(150),
		Gas:       decimal.NewFromInt(120),
		Online:    decimal.NewFromInt(300),
	}

	assert.True(t, p.MonthlySpend(SpendGroceries).Equal(decimal.NewFromInt(400)))
	assert.True(t, p.MonthlySpend(SpendOnline).Equal(decimal.NewFromInt(300)))
	assert.True(t, p.MonthlySpend(SpendCategory("unknown")).IsZero())
}
