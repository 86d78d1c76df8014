// Package cfg
package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packagesYAML = `
durations:
  - label: "24 hours"
    packages:
      - name: Spark
        amounts: {sol: 2, bnb: 0.5, eth: 0.1}
        wallets: 500
        tx_per_minute: 0.75
        multiplier: "No"
        slogan: Light it up
        description: Starter
      - name: Supreme
        amounts: {sol: 40, bnb: 12, eth: 3}
        wallets: 15000
        tx_per_minute: 3
        multiplier: x4
  - label: "1 hour"
    packages:
      - name: Spark
        amounts: {sol: 1, bnb: 0.25, eth: 0.05}
        tx_per_minute: 20
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPackages_Default(t *testing.T) {
	c, err := LoadPackages("")
	require.NoError(t, err)
	assert.Len(t, c.Tiers(), 5)
}

func TestLoadPackages_File(t *testing.T) {
	c, err := LoadPackages(writeFile(t, "packages.yaml", packagesYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"24 hours", "1 hour"}, c.Durations())
	tiers := c.Tiers()
	require.Len(t, tiers, 2)
	assert.Equal(t, "Spark", tiers[0].Name)
	assert.Equal(t, 0.75, tiers[0].TradesPerMinute)
	assert.Equal(t, 0.5, tiers[0].Prices.BNB)

	pkgs, err := c.Packages("1h")
	require.NoError(t, err)
	assert.Equal(t, 20.0, pkgs[0].TxPerMinute)
	assert.Equal(t, "1 SOL, 0.25 BNB, 0.05 ETH", pkgs[0].Price)
}

func TestLoadPackages_Errors(t *testing.T) {
	_, err := LoadPackages(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	noCalculator := `
durations:
  - label: "3 hours"
    packages:
      - name: Spark
        tx_per_minute: 14
`
	_, err = LoadPackages(writeFile(t, "packages.yaml", noCalculator))
	assert.Error(t, err)
}
