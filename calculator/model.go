// Package calculator is the terminal rendition of the volume calculator widget.
package calculator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/volumevault/vault-estimator/estimator"
	"github.com/volumevault/vault-estimator/types"
)

const fetchTimeout = 15 * time.Second

// PriceSource is satisfied by *cache.PriceCache.
type PriceSource interface {
	Get(ctx context.Context) types.TokenPriceSet
}

// PricesMsg delivers the result of a price load.
type PricesMsg types.TokenPriceSet

type Model struct {
	source PriceSource
	tiers  []types.PackageTier

	selected   int
	multiplier int
	prices     types.TokenPriceSet
	loading    bool

	keys    KeyMap
	spinner spinner.Model
	styles  styles
	width   int
}

func New(source PriceSource, tiers []types.PackageTier) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Cyan)
	return Model{
		source:     source,
		tiers:      tiers,
		multiplier: estimator.MinMultiplier,
		loading:    true,
		keys:       DefaultKeyMap(),
		spinner:    sp,
		styles:     defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadPrices())
}

func (m Model) loadPrices() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return PricesMsg(source.Get(ctx))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case PricesMsg:
		m.prices = types.TokenPriceSet(msg)
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Less):
			m.multiplier = estimator.ClampMultiplier(m.multiplier - 1)
		case key.Matches(msg, m.keys.More):
			m.multiplier = estimator.ClampMultiplier(m.multiplier + 1)
		case key.Matches(msg, m.keys.PrevTier):
			if len(m.tiers) > 0 {
				m.selected = (m.selected - 1 + len(m.tiers)) % len(m.tiers)
			}
		case key.Matches(msg, m.keys.NextTier):
			if len(m.tiers) > 0 {
				m.selected = (m.selected + 1) % len(m.tiers)
			}
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadPrices())
		}
	}
	return m, nil
}

func (m Model) Tier() types.PackageTier {
	if len(m.tiers) == 0 {
		return types.PackageTier{}
	}
	return m.tiers[m.selected]
}

func (m Model) Multiplier() int {
	return m.multiplier
}

func (m Model) Prices() types.TokenPriceSet {
	return m.prices
}

func (m Model) Loading() bool {
	return m.loading
}

// Estimate is the figure shown under "Estimated Boosted Volume".
func (m Model) Estimate() string {
	return estimator.Estimate(m.prices, m.Tier(), estimator.DurationMinutes, m.multiplier)
}

func (m Model) View() string {
	s := m.styles
	tier := m.Tier()
	accent := lipgloss.NewStyle().Foreground(tierColor(m.selected)).Bold(true)

	var b strings.Builder
	b.WriteString(s.title.Render("Calculate Your Volume Potential"))
	b.WriteString("\n")

	b.WriteString(s.label.Render("Select Package:"))
	b.WriteString("\n")
	for i, t := range m.tiers {
		line := fmt.Sprintf("  %s Vault", t.Name)
		if i == m.selected {
			line = accent.Render(fmt.Sprintf("▸ %s Vault", t.Name))
		}
		b.WriteString(s.item.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.label.Render("Token Amount:"))
	for _, sym := range types.Symbols {
		b.WriteString(fmt.Sprintf("  %s %s", accent.Render(fmtAmount(tier.Prices.Of(sym))), sym))
	}
	b.WriteString("\n")

	b.WriteString(s.label.Render("Market Price:"))
	if m.loading {
		b.WriteString("  " + m.spinner.View())
	}
	for _, sym := range types.Symbols {
		b.WriteString(fmt.Sprintf("  %s - $%s", sym, fmtAmount(m.prices.Of(sym))))
	}
	b.WriteString("\n")

	b.WriteString(s.label.Render("Package Value:"))
	b.WriteString(fmt.Sprintf("  $%s\n\n", estimator.FormatUSD(estimator.TotalPackageUSD(m.prices, tier))))

	b.WriteString(s.label.Render("Token Price Change Multiplier: "))
	b.WriteString(accent.Render(fmt.Sprintf("%dx", m.multiplier)))
	b.WriteString("\n")
	b.WriteString(m.slider(accent))
	b.WriteString("\n\n")

	b.WriteString(s.estimate.Render("$" + m.Estimate()))
	b.WriteString("\n")
	b.WriteString(s.muted.Render("Estimated Boosted Volume"))
	b.WriteString("\n\n")
	b.WriteString(s.muted.Render("The bot operates for approximately 24 hours. Actual volume may vary with market conditions."))
	b.WriteString("\n\n")
	b.WriteString(s.muted.Render(m.help()))

	return s.box.Render(b.String())
}

func (m Model) slider(accent lipgloss.Style) string {
	filled := m.multiplier - estimator.MinMultiplier + 1
	empty := estimator.MaxMultiplier - m.multiplier
	return fmt.Sprintf("%s %s%s %s",
		accent.Render(fmt.Sprintf("%dx", estimator.MinMultiplier)),
		accent.Render(strings.Repeat("━", filled)),
		m.styles.muted.Render(strings.Repeat("─", empty)),
		accent.Render(fmt.Sprintf("%dx", estimator.MaxMultiplier)))
}

func (m Model) help() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
