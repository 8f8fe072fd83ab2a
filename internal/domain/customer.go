package domain

// LoyaltyTier represents customer loyalty tiers
type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "Bronze"
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

// IsValid checks if the tier is valid
func (t LoyaltyTier) IsValid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// DiscountRate returns the discount rate for the tier. Unknown tiers get
// no discount.
func (t LoyaltyTier) DiscountRate() float64 {
	switch t {
	case TierPlatinum:
		return 0.15
	case TierGold:
		return 0.10
	case TierSilver:
		return 0.05
	case TierBronze:
		return 0.0
	default:
		return 0.0
	}
}

// Address represents a customer address
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Customer is read-only during order processing; the pipeline computes
// loyalty points fresh per order and never touches LoyaltyPoints.
type Customer struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	LoyaltyTier   LoyaltyTier `json:"loyaltyTier"`
	LoyaltyPoints int         `json:"loyaltyPoints"`
	Address       Address     `json:"address"`
}
