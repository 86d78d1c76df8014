// Package types
package types

type tierCopy struct {
	amounts     TokenAmounts
	wallets     int64
	multiplier  string
	slogan      string
	description string
}

var tierOrder = []string{"Spark", "Ignite", "Surge", "Titan", "Supreme"}

var tierCopies = map[string]tierCopy{
	"Spark": {
		amounts:     TokenAmounts{SOL: 3, BNB: 1.06, ETH: 0.25},
		wallets:     725,
		multiplier:  "No",
		slogan:      "Light the Fuse of Your Project's Growth",
		description: "A starter boost to ignite your trading volume and set your project in motion.",
	},
	"Ignite": {
		amounts:     TokenAmounts{SOL: 7, BNB: 2.46, ETH: 0.5},
		wallets:     2535,
		multiplier:  "x1",
		slogan:      "Kickstart Your Project’s Journey with Powerful Volume Boosts",
		description: "Designed for projects building their foundation and ready to gain traction in the market.",
	},
	"Surge": {
		amounts:     TokenAmounts{SOL: 15, BNB: 5.28, ETH: 1},
		wallets:     5105,
		multiplier:  "x1.5",
		slogan:      "Accelerate Your Growth and Create Unstoppable Momentum",
		description: "Ideal for projects eager to scale and capture the attention of traders and investors.",
	},
	"Titan": {
		amounts:     TokenAmounts{SOL: 25, BNB: 8.81, ETH: 1.8},
		wallets:     8675,
		multiplier:  "x2",
		slogan:      "Dominate the Market with Sustained High-Volume Impact",
		description: "Built for established tokens aiming to solidify their dominance and create lasting impact.",
	},
	"Supreme": {
		amounts:     TokenAmounts{SOL: 50, BNB: 17.69, ETH: 3.6},
		wallets:     17350,
		multiplier:  "x4",
		slogan:      "Reach the Pinnacle of Success with Unmatched Exposure and Liquidity",
		description: "The ultimate package for projects ready to achieve market leadership, maximum visibility, and unparalleled growth.",
	},
}

// tx per minute, in tierOrder
var defaultTxRates = []struct {
	label string
	rates []float64
}{
	{"3 hours", []float64{14, 18, 22, 26, 32}},
	{"6 hours", []float64{12, 16, 20, 24, 30}},
	{"12 hours", []float64{14, 18, 20, 22, 28}},
	{"24 hours", []float64{0.5, 1, 1.5, 2, 4}},
}

// DefaultPackages returns the built-in package table.
func DefaultPackages() []DurationPackages {
	out := make([]DurationPackages, 0, len(defaultTxRates))
	for _, d := range defaultTxRates {
		pkgs := make([]PackageInfo, len(tierOrder))
		for i, name := range tierOrder {
			tc := tierCopies[name]
			pkgs[i] = PackageInfo{
				Name:        name,
				Amounts:     tc.amounts,
				Wallets:     tc.wallets,
				TxPerMinute: d.rates[i],
				Multiplier:  tc.multiplier,
				Slogan:      tc.slogan,
				Description: tc.description,
			}
		}
		out = append(out, DurationPackages{Label: d.label, Packages: pkgs})
	}
	return out
}

// DefaultCatalogue builds the catalogue from the built-in table.
func DefaultCatalogue() *Catalogue {
	c, err := NewCatalogue(DefaultPackages())
	if err != nil {
		panic("invalid built-in package table: " + err.Error())
	}
	return c
}
