package models

// Audience segments a user or card can target.
type Audience string

const (
	AudienceStudent           Audience = "student"
	AudienceYoungProfessional Audience = "young_professional"
	AudienceFamily            Audience = "family"
	AudienceTraveler          Audience = "traveler"
	AudiencePremium           Audience = "premium"
)

// ParseAudience returns the matching Audience, defaulting to
// AudienceYoungProfessional for unknown values.
func ParseAudience(s string) Audience {
	switch Audience(s) {
	case AudienceStudent, AudienceYoungProfessional, AudienceFamily, AudienceTraveler, AudiencePremium:
		return Audience(s)
	default:
		return AudienceYoungProfessional
	}
}

// SpendCategory is one of the five monthly spending buckets tracked in a
// SpendingProfile and referenced by reward rates.
type SpendCategory string

const (
	SpendGroceries SpendCategory = "groceries"
	SpendDining    SpendCategory = "dining"
	SpendTravel    SpendCategory = "travel"
	SpendGas       SpendCategory = "gas"
	SpendOnline    SpendCategory = "online"
)

// SpendCategories lists all categories in schema order.
var SpendCategories = []SpendCategory{SpendGroceries, SpendDining, SpendTravel, SpendGas, SpendOnline}

// ParseSpendCategory returns the matching SpendCategory and whether s was valid.
func ParseSpendCategory(s string) (SpendCategory, bool) {
	switch SpendCategory(s) {
	case SpendGroceries, SpendDining, SpendTravel, SpendGas, SpendOnline:
		return SpendCategory(s), true
	default:
		return "", false
	}
}

// CardCategory classifies a credit card product.
type CardCategory string

const (
	CardCashback CardCategory = "cashback"
	CardTravel   CardCategory = "travel"
	CardStudent  CardCategory = "student"
	CardBusiness CardCategory = "business"
	CardSecured  CardCategory = "secured"
)

// ParseCardCategory returns the matching CardCategory, defaulting to CardCashback.
func ParseCardCategory(s string) CardCategory {
	switch CardCategory(s) {
	case CardCashback, CardTravel, CardStudent, CardBusiness, CardSecured:
		return CardCategory(s)
	default:
		return CardCashback
	}
}

// BenefitType classifies a card benefit.
type BenefitType string

const (
	BenefitTravel     BenefitType = "travel"
	BenefitInsurance  BenefitType = "insurance"
	BenefitProtection BenefitType = "protection"
	BenefitLifestyle  BenefitType = "lifestyle"
	BenefitCredit     BenefitType = "credit"
)

// ParseBenefitType returns the matching BenefitType, defaulting to BenefitLifestyle.
func ParseBenefitType(s string) BenefitType {
	switch BenefitType(s) {
	case BenefitTravel, BenefitInsurance, BenefitProtection, BenefitLifestyle, BenefitCredit:
		return BenefitType(s)
	default:
		return BenefitLifestyle
	}
}
