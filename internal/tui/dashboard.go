// Package tui renders a read-only dashboard of tracked items.
package tui

import (
	"fmt"
	"time"

	"butler/internal/cli"
	"butler/internal/model"
	"butler/internal/report"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			Padding(0, 1)

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// Model is the dashboard bubbletea model.
type Model struct {
	now      time.Time
	settings model.Settings
	items    []model.Item
	table    table.Model
	width    int
}

// New builds the dashboard over a snapshot of the store.
func New(items []model.Item, settings model.Settings, now time.Time) Model {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Expires", Width: 12},
		{Title: "Days", Width: 6},
		{Title: "Status", Width: 10},
	}

	sorted := report.SortByExpiry(items)
	rows := make([]table.Row, 0, len(sorted))
	for _, item := range sorted {
		rows = append(rows, table.Row{
			item.Name,
			item.Category.Label(),
			item.ExpiryDate.Format("2006-01-02"),
			fmt.Sprintf("%d", report.DaysRemaining(item, now)),
			renderStatus(report.StatusOf(item, now)),
		})
	}

	height := len(rows)
	if height > 15 {
		height = 15
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(cli.PrimaryColor).
		Bold(false)
	t.SetStyles(styles)

	return Model{
		items:    sorted,
		settings: settings,
		now:      now,
		table:    t,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a summary footer.
func (m Model) View() string {
	urgent := len(report.Urgent(m.items, m.now))
	expired := len(report.Expired(m.items, m.now))
	cost := report.MonthlyCost(m.items)

	footer := fmt.Sprintf(
		"%d items · %d urgent · %d expired · ~%.0f %s/month · q to quit",
		len(m.items), urgent, expired, cost, m.settings.Currency)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Expiry Butler"),
		baseStyle.Render(m.table.View()),
		footerStyle.Render(footer),
	) + "\n"
}

func renderStatus(status report.Status) string {
	switch status {
	case report.StatusExpired:
		return cli.ErrorStyle.Render("expired")
	case report.StatusUrgent:
		return cli.WarningStyle.Render("urgent")
	default:
		return "normal"
	}
}
