// Package app provides the interactive provenance browser of git-merge-result.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/gitaid/internal/provenance"
	"github.com/chmouel/gitaid/internal/theme"
	"github.com/muesli/reflow/truncate"
)

const (
	headerHeight = 2
	footerHeight = 2
)

// Options tune the browser.
type Options struct {
	Revision  string
	Theme     *theme.Theme
	ShowIcons bool
	Verbose   bool // start with every category shown
}

// Model is the bubbletea model of the provenance browser.
type Model struct {
	report *provenance.Report
	opts   Options
	theme  *theme.Theme

	entries []provenance.Entry
	shown   map[provenance.Kind]bool

	viewport    viewport.Model
	filterInput textinput.Model
	filtering   bool
	filterQuery string

	width    int
	height   int
	quitting bool
}

// NewModel builds a browser over report.
func NewModel(report *provenance.Report, opts Options) *Model {
	thm := opts.Theme
	if thm == nil {
		thm = theme.GetTheme(theme.DefaultDark())
	}

	filterInput := textinput.New()
	filterInput.Prompt = "/"
	filterInput.Placeholder = "filter paths..."
	filterInput.Width = 50

	m := &Model{
		report:      report,
		opts:        opts,
		theme:       thm,
		entries:     report.Entries(provenance.AllKinds...),
		shown:       make(map[provenance.Kind]bool, len(provenance.AllKinds)),
		viewport:    viewport.New(80, 20),
		filterInput: filterInput,
		width:       80,
		height:      24,
	}
	for _, k := range provenance.DefaultKinds {
		m.shown[k] = true
	}
	if opts.Verbose {
		m.toggleExtraKinds()
	}
	m.refresh()
	return m
}

// Run shows the browser until the user quits or ctx is cancelled.
func Run(ctx context.Context, report *provenance.Report, opts Options) error {
	p := tea.NewProgram(NewModel(report, opts), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-headerHeight-footerHeight)
		m.filterInput.Width = max(10, msg.Width-4)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.filterInput.SetValue("")
		m.filterQuery = ""
		m.stopFiltering()
		return m, nil
	case "enter":
		m.stopFiltering()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = m.filterInput.Value()
	m.refresh()
	return m, cmd
}

func (m *Model) stopFiltering() {
	m.filtering = false
	m.filterInput.Blur()
	m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyStr := msg.String(); keyStr {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.filtering = true
		m.filterInput.SetValue(m.filterQuery)
		return m, m.filterInput.Focus()
	case "1", "2", "3", "4":
		k := provenance.DefaultKinds[keyStr[0]-'1']
		m.shown[k] = !m.shown[k]
		m.refresh()
		return m, nil
	case "a":
		m.toggleExtraKinds()
		m.refresh()
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// toggleExtraKinds flips the categories hidden by default.
func (m *Model) toggleExtraKinds() {
	for _, k := range provenance.AllKinds[len(provenance.DefaultKinds):] {
		m.shown[k] = !m.shown[k]
	}
}

// visibleEntries returns the entries of the shown kinds matching the filter.
func (m *Model) visibleEntries() []provenance.Entry {
	query := strings.ToLower(m.filterQuery)
	out := make([]provenance.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if !m.shown[e.Kind] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Path()), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (m *Model) refresh() {
	entries := m.visibleEntries()
	if len(entries) == 0 {
		m.viewport.SetContent(lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render("No matching files."))
		return
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = m.renderEntry(e)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) renderEntry(e provenance.Entry) string {
	prefix := m.theme.Marker(e.Kind) + " "
	if m.opts.ShowIcons {
		prefix += iconWithSpace(deviconForName(e.Path(), false))
	}
	width := m.width - lipgloss.Width(prefix)
	path := e.Path()
	if width > 1 {
		path = truncate.StringWithTail(path, uint(width), "…") //nolint:gosec
	}
	return prefix + lipgloss.NewStyle().Foreground(m.theme.TextFg).Render(path)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View(), m.renderFooter())
}

func (m *Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.AccentFg).
		Background(m.theme.Accent).
		Padding(0, 1).
		Render("merge " + m.opts.Revision)

	counts := make([]string, 0, len(provenance.AllKinds))
	for i, k := range provenance.AllKinds {
		label := fmt.Sprintf("%s %s %d", m.theme.Marker(k), k, m.report.Count(k))
		if i < len(provenance.DefaultKinds) {
			label = fmt.Sprintf("%d:%s", i+1, label)
		}
		style := lipgloss.NewStyle().Foreground(m.theme.TextFg)
		if !m.shown[k] {
			style = style.Foreground(m.theme.MutedFg).Faint(true)
		}
		counts = append(counts, style.Render(label))
	}

	line := title + " " + strings.Join(counts, "  ")
	return truncate.String(line, uint(max(m.width, 1))) + "\n" + //nolint:gosec
		lipgloss.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", max(m.width, 1)))
}

func (m *Model) renderFooter() string {
	rule := lipgloss.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", max(m.width, 1)))
	if m.filtering {
		return rule + "\n" + m.filterInput.View()
	}
	help := "1-4 toggle  a all  / filter  q quit"
	if m.filterQuery != "" {
		help = fmt.Sprintf("filter: %q  %s", m.filterQuery, help)
	}
	return rule + "\n" + lipgloss.NewStyle().Foreground(m.theme.MutedFg).Render(help)
}
