package config

// FeatureFlags controls optional behavior of the order pipeline
type FeatureFlags struct {
	EnableDiscounts     bool
	EnableLoyaltyPoints bool
	MaxOrderItems       int
	DiscountThreshold   float64
}

// AppConfig is an immutable configuration snapshot shared by value into
// the services that need it.
type AppConfig struct {
	Environment string
	Region      string
	Features    FeatureFlags
}

// Default returns the default configuration
func Default() AppConfig {
	return AppConfig{
		Environment: "Development",
		Region:      "us-west-2",
		Features: FeatureFlags{
			EnableDiscounts:     true,
			EnableLoyaltyPoints: true,
			MaxOrderItems:       100,
			DiscountThreshold:   100.0,
		},
	}
}
