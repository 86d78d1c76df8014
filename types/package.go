// Package types
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// CalculatorDuration is the package table the volume calculator reads its
// trade rates from. The bot runs for roughly a day.
const (
	CalculatorDuration        = "24 hours"
	CalculatorDurationMinutes = 1440
)

// TokenAmounts is the per-token cost of a package.
type TokenAmounts struct {
	SOL float64 `json:"sol" mapstructure:"sol"`
	BNB float64 `json:"bnb" mapstructure:"bnb"`
	ETH float64 `json:"eth" mapstructure:"eth"`
}

func (a TokenAmounts) String() string {
	parts := make([]string, 0, len(Symbols))
	for _, s := range Symbols {
		parts = append(parts, fmtAmount(a.Of(s))+" "+string(s))
	}
	return strings.Join(parts, ", ")
}

func (a TokenAmounts) Of(s Symbol) float64 {
	return TokenPriceSet(a).Of(s)
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PackageTier is what the volume calculator needs to know about a package.
type PackageTier struct {
	Name            string       `json:"name"`
	Prices          TokenAmounts `json:"prices"`
	TradesPerMinute float64      `json:"tradesPerMinute"`
}

// PackageInfo is one row of the package table shown on the landing page.
type PackageInfo struct {
	Name        string       `json:"name" mapstructure:"name"`
	Amounts     TokenAmounts `json:"amounts" mapstructure:"amounts"`
	Price       string       `json:"price" mapstructure:"-"`
	Wallets     int64        `json:"wallets" mapstructure:"wallets"`
	TxPerMinute float64      `json:"txPerMinute" mapstructure:"tx_per_minute"`
	Multiplier  string       `json:"multiplier" mapstructure:"multiplier"`
	Slogan      string       `json:"slogan" mapstructure:"slogan"`
	Description string       `json:"description" mapstructure:"description"`
}

// DurationPackages groups the package table of one run duration.
type DurationPackages struct {
	Label    string        `json:"label" mapstructure:"label"`
	Packages []PackageInfo `json:"packages" mapstructure:"packages"`
}

// Catalogue is the immutable package configuration. Build it once at startup
// with NewCatalogue or DefaultCatalogue.
type Catalogue struct {
	durations []DurationPackages
	index     map[string]int
}

func NewCatalogue(durations []DurationPackages) (*Catalogue, error) {
	if len(durations) == 0 {
		return nil, fmt.Errorf("%w: empty package table", ErrUnknownDuration)
	}
	c := &Catalogue{
		durations: make([]DurationPackages, 0, len(durations)),
		index:     make(map[string]int, len(durations)),
	}
	for _, d := range durations {
		key := durationKey(d.Label)
		if key == "" {
			return nil, fmt.Errorf("%w: empty label", ErrUnknownDuration)
		}
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("duplicate duration %q", d.Label)
		}
		if len(d.Packages) == 0 {
			return nil, fmt.Errorf("duration %q has no packages", d.Label)
		}
		pkgs := make([]PackageInfo, len(d.Packages))
		seen := make(map[string]bool, len(d.Packages))
		for i, p := range d.Packages {
			name := tierKey(p.Name)
			if name == "" || seen[name] {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownTier, p.Name, d.Label)
			}
			seen[name] = true
			if p.Amounts.SOL < 0 || p.Amounts.BNB < 0 || p.Amounts.ETH < 0 || p.TxPerMinute < 0 {
				return nil, fmt.Errorf("package %q in %q has negative values", p.Name, d.Label)
			}
			p.Price = p.Amounts.String()
			pkgs[i] = p
		}
		c.index[key] = len(c.durations)
		c.durations = append(c.durations, DurationPackages{Label: d.Label, Packages: pkgs})
	}
	if _, ok := c.index[durationKey(CalculatorDuration)]; !ok {
		return nil, fmt.Errorf("%w: calculator needs %q", ErrUnknownDuration, CalculatorDuration)
	}
	return c, nil
}

// Durations returns the duration labels in configuration order.
func (c *Catalogue) Durations() []string {
	labels := make([]string, len(c.durations))
	for i, d := range c.durations {
		labels[i] = d.Label
	}
	return labels
}

// All returns a copy of the whole table.
func (c *Catalogue) All() []DurationPackages {
	out := make([]DurationPackages, len(c.durations))
	for i, d := range c.durations {
		out[i] = DurationPackages{Label: d.Label, Packages: append([]PackageInfo(nil), d.Packages...)}
	}
	return out
}

// Packages returns the packages of a duration. Labels match loosely:
// "24 hours", "24h" and "24" are the same duration.
func (c *Catalogue) Packages(duration string) ([]PackageInfo, error) {
	i, ok := c.index[durationKey(duration)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDuration, duration)
	}
	return append([]PackageInfo(nil), c.durations[i].Packages...), nil
}

// Tiers returns the calculator tiers in display order.
func (c *Catalogue) Tiers() []PackageTier {
	pkgs, _ := c.Packages(CalculatorDuration)
	tiers := make([]PackageTier, len(pkgs))
	for i, p := range pkgs {
		tiers[i] = p.Tier()
	}
	return tiers
}

// Tier looks up a calculator tier by name. "Spark", "spark" and
// "Spark Vault" all resolve to the same tier.
func (c *Catalogue) Tier(name string) (PackageTier, error) {
	key := tierKey(name)
	for _, t := range c.Tiers() {
		if tierKey(t.Name) == key {
			return t, nil
		}
	}
	return PackageTier{}, fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

func (p PackageInfo) Tier() PackageTier {
	return PackageTier{
		Name:            p.Name,
		Prices:          p.Amounts,
		TradesPerMinute: p.TxPerMinute,
	}
}

func durationKey(label string) string {
	k := strings.ToLower(strings.Join(strings.Fields(label), ""))
	k = strings.TrimSuffix(k, "hours")
	k = strings.TrimSuffix(k, "hour")
	k = strings.TrimSuffix(k, "hrs")
	k = strings.TrimSuffix(k, "h")
	return k
}

func tierKey(name string) string {
	k := strings.ToLower(strings.TrimSpace(name))
	k = strings.TrimSuffix(k, " vault")
	return strings.TrimSpace(k)
}
