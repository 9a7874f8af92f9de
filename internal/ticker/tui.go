package ticker

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

var (
	colorRevenue  = lipgloss.Color("#879A39")
	colorExpenses = lipgloss.Color("#D14D41")
	colorAccent   = lipgloss.Color("#4385BE")
	colorMuted    = lipgloss.Color("#878580")
	colorBorder   = lipgloss.Color("#403E3C")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(8)
)

type tickMsg struct{}

type pollMsg struct{}

type snapshotMsg struct {
	snapshot domain.Snapshot
	err      error
}

// Model é o modelo bubbletea da tela cheia
type Model struct {
	fetcher Fetcher
	poll    time.Duration
	tick    time.Duration
	now     func() time.Time

	live    *Live
	lastErr error
	width   int
}

func NewModel(fetcher Fetcher, poll, tick time.Duration) Model {
	return Model{
		fetcher: fetcher,
		poll:    poll,
		tick:    tick,
		now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.tickCmd(), m.pollCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.fetchCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		return m, m.tickCmd()

	case pollMsg:
		return m, tea.Batch(m.fetchCmd(), m.pollCmd())

	case snapshotMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.live = &Live{Snapshot: msg.snapshot, ReceivedAt: m.now()}
		m.lastErr = nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.live == nil {
		if m.lastErr != nil {
			return mutedStyle.Render(fmt.Sprintf("Waiting for data: %v\n\nq to quit", m.lastErr))
		}
		return mutedStyle.Render("Loading...")
	}

	f := m.live.At(m.now())
	s := m.live.Snapshot

	header := titleStyle.Render("Revenue Dashboard") + "  " +
		mutedStyle.Render(fmt.Sprintf("%04d-%02d-%02d  day %d/%d  mode %s (%s)",
			s.Year, s.Month, s.Day, s.Day, s.DaysInMonth, s.RevenueMode, s.RevenueSource))

	cardWidth := 30
	if m.width > 0 {
		if w := (m.width - 6) / 3; w > 20 {
			cardWidth = w
		}
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		amountCard("Revenue", colorRevenue, cardWidth, f.RevenueToday, f.RevenueMonth, f.RevenueYear),
		amountCard("Expenses", colorExpenses, cardWidth, f.ExpensesToday, f.ExpensesMonth, f.ExpensesYear),
		netCard(f, cardWidth),
	)

	footer := mutedStyle.Render(fmt.Sprintf("updated %s ago  r refresh  q quit",
		m.now().Sub(m.live.ReceivedAt).Truncate(time.Second)))
	if m.lastErr != nil {
		footer = lipgloss.NewStyle().Foreground(colorExpenses).Render("stale: "+m.lastErr.Error()) + "\n" + footer
	}

	return strings.Join([]string{header, "", cards, "", footer}, "\n")
}

func amountCard(title string, color lipgloss.Color, width int, today, month, year float64) string {
	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(title),
		labelStyle.Render("Today") + FormatAmount(today),
		labelStyle.Render("Month") + FormatAmount(month),
		labelStyle.Render("Year") + FormatAmount(year),
	}
	return cardStyle(width).Render(strings.Join(rows, "\n"))
}

func netCard(f Figures, width int) string {
	color := colorRevenue
	if !f.IsProfit() {
		color = colorExpenses
	}

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(NetLabel(f)),
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(FormatNet(f.Net())),
		mutedStyle.Render("year to date"),
	}
	return cardStyle(width).Render(strings.Join(rows, "\n"))
}

func cardStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m Model) pollCmd() tea.Cmd {
	return tea.Tick(m.poll, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (m Model) fetchCmd() tea.Cmd {
	fetcher := m.fetcher
	timeout := m.poll
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snapshot, err := fetcher.Fetch(ctx)
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}
