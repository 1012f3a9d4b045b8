package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fdbview/pkg/export"
	"fdbview/pkg/session"
)

type promptMode int

const (
	promptNone promptMode = iota
	promptOpen
	promptExport
	promptOverwrite
)

// Model represents the viewer state: the table list on the left, one page
// of the selected table on the right, and the prompt/search overlays.
// Every operation goes through the session; the busy latch keeps them
// strictly one at a time.
type Model struct {
	sess *session.Session

	tables []string
	cursor int

	searchInput textinput.Model
	searching   bool

	rowTable table.Model
	page     *session.Page

	spinner  spinner.Model
	busy     bool
	busyText string

	prompt      promptMode
	promptInput textinput.Model
	pendingPath string

	help     help.Model
	showHelp bool
	keys     keyMap

	status  string
	lastErr error
	lastOp  time.Duration

	width  int
	height int
}

func NewModel(sess *session.Session) Model {
	search := textinput.New()
	search.Placeholder = "Search table..."
	search.CharLimit = 64

	prompt := textinput.New()
	prompt.CharLimit = 512

	t := table.New(
		table.WithColumns([]table.Column{{Title: "Rows", Width: 60}}),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(textPrimary).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		sess:        sess,
		tables:      sess.Tables(),
		searchInput: search,
		promptInput: prompt,
		rowTable:    t,
		spinner:     sp,
		help:        help.New(),
		keys:        keys,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Messages produced by session commands.

type tablesMsg struct {
	names []string
	path  string
	err   error
}

type pageMsg struct {
	page     *session.Page
	moved    bool
	duration time.Duration
	err      error
}

type exportMsg struct {
	path  string
	stats export.Stats
	err   error
}

func (m Model) openFile(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.sess.Open(path); err != nil {
			return tablesMsg{err: err}
		}
		return tablesMsg{names: m.sess.Tables(), path: path}
	}
}

func (m Model) selectTable(name string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		page, err := m.sess.Select(name)
		return pageMsg{page: page, moved: true, duration: time.Since(start), err: err}
	}
}

func (m Model) turnPage(forward bool) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		var (
			page  *session.Page
			moved bool
			err   error
		)
		if forward {
			page, moved, err = m.sess.Next()
		} else {
			page, moved, err = m.sess.Prev()
		}
		return pageMsg{page: page, moved: moved, duration: time.Since(start), err: err}
	}
}

func (m Model) exportTo(path string) tea.Cmd {
	return func() tea.Msg {
		stats, err := m.sess.ExportTo(path)
		return exportMsg{path: path, stats: stats, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil // one operation at a time
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)

	case tablesMsg:
		m.busy = false
		if msg.err != nil {
			m.lastErr = fmt.Errorf("could not open database file: %w", msg.err)
			return m, nil
		}
		m.lastErr = nil
		m.tables = msg.names
		m.cursor = 0
		m.page = nil
		m.searchInput.SetValue("")
		m.status = fmt.Sprintf("opened %s (%d tables)", msg.path, len(msg.names))
		return m, nil

	case pageMsg:
		m.busy = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		if !msg.moved {
			m.status = "no more pages"
			return m, nil
		}
		m.page = msg.page
		m.lastOp = msg.duration
		m.refreshRowTable()
		m.status = fmt.Sprintf("%s — page %d/%d", msg.page.Table, msg.page.Index+1, msg.page.Count)
		return m, nil

	case exportMsg:
		m.busy = false
		if msg.err != nil {
			m.lastErr = fmt.Errorf("export failed: %w", msg.err)
			return m, nil
		}
		m.lastErr = nil
		m.status = fmt.Sprintf("exported %d tables, %d rows to %s in %v",
			msg.stats.Tables, msg.stats.Rows, msg.path, msg.stats.Elapsed.Round(time.Millisecond))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tables)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.tables) {
			m.busy = true
			m.busyText = "loading " + m.tables[m.cursor]
			return m, m.selectTable(m.tables[m.cursor])
		}

	case key.Matches(msg, m.keys.NextPage):
		if m.page != nil {
			m.busy = true
			m.busyText = "loading page"
			return m, m.turnPage(true)
		}

	case key.Matches(msg, m.keys.PrevPage):
		if m.page != nil {
			m.busy = true
			m.busyText = "loading page"
			return m, m.turnPage(false)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Open):
		m.prompt = promptOpen
		m.promptInput.Placeholder = "path to .fdb file"
		m.promptInput.SetValue("")
		m.promptInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Export):
		if !m.sess.HasDatabase() {
			m.status = "open a database first"
			return m, nil
		}
		m.prompt = promptExport
		m.promptInput.Placeholder = "export file (.sqlite or .db)"
		m.promptInput.SetValue(m.sess.DefaultExportName())
		m.promptInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.searchInput.Blur()
		if msg.Type == tea.KeyEsc {
			m.searchInput.SetValue("")
			m.tables = m.sess.Search("")
			m.cursor = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.tables = m.sess.Search(m.searchInput.Value())
	if m.cursor >= len(m.tables) {
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt == promptOverwrite {
		switch msg.String() {
		case "y", "Y":
			path := m.pendingPath
			m.prompt = promptNone
			m.pendingPath = ""
			m.busy = true
			m.busyText = "exporting"
			return m, m.exportTo(path)
		case "n", "N", "esc":
			m.prompt = promptNone
			m.pendingPath = ""
			m.status = "export cancelled"
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = promptNone
		m.promptInput.Blur()
		return m, nil

	case tea.KeyEnter:
		path := strings.TrimSpace(m.promptInput.Value())
		mode := m.prompt
		m.prompt = promptNone
		m.promptInput.Blur()
		if path == "" {
			return m, nil
		}

		if mode == promptOpen {
			if !session.ValidSourcePath(path) {
				m.lastErr = fmt.Errorf("unrecognized source file %q (want .fdb)", path)
				return m, nil
			}
			m.busy = true
			m.busyText = "opening " + path
			return m, m.openFile(path)
		}

		if !session.ValidExportPath(path) {
			m.lastErr = fmt.Errorf("unrecognized export file %q (want .sqlite or .db)", path)
			return m, nil
		}
		if _, err := os.Stat(path); err == nil {
			m.prompt = promptOverwrite
			m.pendingPath = path
			return m, nil
		}
		m.busy = true
		m.busyText = "exporting"
		return m, m.exportTo(path)
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTableList(),
		" ",
		m.renderPage(),
	)
	sections = append(sections, body)

	if m.lastErr != nil {
		sections = append(sections, m.renderError())
	}
	if m.prompt != promptNone {
		sections = append(sections, m.renderPrompt())
	}
	sections = append(sections, m.renderStatusBar())
	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("fdbview")

	file := "no file open"
	if m.sess.HasDatabase() {
		file = m.sess.Path()
	}
	badge := fileBadgeStyle.Render(file)

	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge)
}

func (m Model) renderTableList() string {
	var b strings.Builder

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	if len(m.tables) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(textMuted).Render("no tables"))
	}

	visible := m.listHeight()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	for i := start; i < len(m.tables) && i < start+visible; i++ {
		name := m.tables[i]
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}

	return listStyle.Width(28).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderPage() string {
	if m.busy {
		return lipgloss.NewStyle().
			Foreground(primaryColor).
			Padding(1, 0).
			Render(m.spinner.View() + " " + m.busyText + "...")
	}
	if m.page == nil {
		return lipgloss.NewStyle().
			Foreground(textMuted).
			Padding(1, 2).
			Render("select a table to view its rows")
	}

	indicator := pageBadgeStyle.Render(
		fmt.Sprintf("%s — page %d/%d (%d rows)",
			m.page.Table, m.page.Index+1, m.page.Count, len(m.page.Rows)))

	return indicator + "\n" + m.rowTable.View()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(" ERROR ")
	message := lipgloss.NewStyle().
		Foreground(errorColor).
		Render(m.lastErr.Error())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(0, 1).
		Render(icon + " " + message)
}

func (m Model) renderPrompt() string {
	switch m.prompt {
	case promptOverwrite:
		return promptStyle.Render(
			fmt.Sprintf("%s exists — overwrite? [y/n]", m.pendingPath))
	case promptOpen:
		return promptStyle.Render("Open database file\n" + m.promptInput.View())
	case promptExport:
		return promptStyle.Render("Export to SQLite\n" + m.promptInput.View())
	default:
		return ""
	}
}

func (m Model) renderStatusBar() string {
	status := m.status
	if status == "" {
		status = "ctrl+o open | / search | enter view | ctrl+e export | ctrl+h help"
	}

	timer := ""
	if m.lastOp > 0 {
		timer = fmt.Sprintf(" | last: %v", m.lastOp.Round(time.Millisecond))
	}

	width := m.width - 4
	if width < 0 {
		width = 0
	}
	return statusBarStyle.Width(width).Render(status + timer)
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Search},
		{m.keys.NextPage, m.keys.PrevPage, m.keys.Open, m.keys.Export},
		{m.keys.Help, m.keys.Quit},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Render(helpText)
}

// refreshRowTable rebuilds the bubbles table from the current page.
func (m *Model) refreshRowTable() {
	if m.page == nil {
		return
	}

	columns := make([]table.Column, len(m.page.Columns))
	for i, col := range m.page.Columns {
		columns[i] = table.Column{
			Title: col.Name,
			Width: m.columnWidth(i),
		}
	}

	rows := make([]table.Row, len(m.page.Rows))
	for i, row := range m.page.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		rows[i] = table.Row(cells)
	}

	// SetRows before SetColumns panics on width mismatch; clear first.
	m.rowTable.SetRows(nil)
	m.rowTable.SetColumns(columns)
	m.rowTable.SetRows(rows)
}

func (m Model) columnWidth(index int) int {
	const (
		minWidth = 8
		maxWidth = 30
	)

	width := len(m.page.Columns[index].Name) + 2
	for _, row := range m.page.Rows {
		if index < len(row) {
			if w := len(row[index].String()) + 2; w > width {
				width = w
			}
		}
	}

	if width < minWidth {
		return minWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

func (m Model) listHeight() int {
	h := m.height - 10
	if h < 5 {
		return 5
	}
	return h
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	tableHeight := m.height - 10
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.rowTable.SetHeight(tableHeight)

	tableWidth := m.width - 36
	if tableWidth > 0 {
		m.rowTable.SetWidth(tableWidth)
	}
}
