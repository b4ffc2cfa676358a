// Package tui implements the interactive explorer: a command prompt over the
// loaded database with a scrollable results viewport. The session keeps no
// state beyond the current database reference, so a dataset reload simply
// swaps in a freshly built database.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orbitalmech/neoscope/internal/database"
	"github.com/orbitalmech/neoscope/internal/neo"
	"github.com/orbitalmech/neoscope/internal/ui"
)

// MsgDatasetReloaded swaps in a rebuilt database after a dataset file change.
type MsgDatasetReloaded struct {
	DB   *database.Database
	Path string
}

// MsgReloadFailed reports a failed dataset reload; the session keeps the
// previous database.
type MsgReloadFailed struct {
	Path string
	Err  error
}

type keyMap struct {
	Run      key.Binding
	Quit     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var keys = keyMap{
	Run:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
}

// Model is the bubbletea model for the explorer session.
type Model struct {
	db           *database.Database
	defaultLimit int

	input    textinput.Model
	results  viewport.Model
	status   string
	statusOK bool
	ready    bool
	width    int
	height   int
}

// New creates an explorer model over the given database. defaultLimit caps
// query output when the command supplies no limit of its own.
func New(db *database.Database, defaultLimit int) Model {
	input := textinput.New()
	input.Placeholder = `query max-distance=0.1 limit=5   (help for more)`
	input.Prompt = stylePrompt.Render("neoscope> ")
	input.Focus()

	return Model{
		db:           db,
		defaultLimit: defaultLimit,
		input:        input,
		results:      viewport.New(0, 0),
		status:       fmt.Sprintf("loaded %d NEOs, %d close approaches", db.NEOCount(), db.ApproachCount()),
		statusOK:     true,
	}
}

// NewProgram wraps the model in a full-screen bubbletea program.
func NewProgram(db *database.Database, defaultLimit int) *tea.Program {
	return tea.NewProgram(New(db, defaultLimit), tea.WithAltScreen())
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.ready {
			m.ready = true
			m.results.SetContent(m.helpText())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Run):
			return m.runCommand(m.input.Value())
		case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		// Everything else is typing for the command prompt.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case MsgDatasetReloaded:
		m.db = msg.DB
		m.setStatus(true, fmt.Sprintf("reloaded %s — %d NEOs, %d close approaches",
			msg.Path, msg.DB.NEOCount(), msg.DB.ApproachCount()))
		return m, nil

	case MsgReloadFailed:
		m.setStatus(false, fmt.Sprintf("reload of %s failed: %v", msg.Path, msg.Err))
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.results, cmd = m.results.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := styleTitleBar.Width(m.width).Render("neoscope — close approach explorer")

	status := m.status
	if m.statusOK {
		status = styleStatusOK.Render(status)
	} else {
		status = styleStatusErr.Render(status)
	}

	footer := styleHelpKey.Render("enter") + styleHelpDesc.Render(" run  ") +
		styleHelpKey.Render("pgup/pgdn") + styleHelpDesc.Render(" scroll  ") +
		styleHelpKey.Render("ctrl+c") + styleHelpDesc.Render(" quit")

	return strings.Join([]string{
		title,
		m.results.View(),
		m.input.View(),
		status,
		footer,
	}, "\n")
}

// layout sizes the viewport to the window minus the fixed chrome rows:
// title, input, status, footer.
func (m *Model) layout() {
	const chrome = 4
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	m.results.Width = m.width
	m.results.Height = h
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}

	cmd, err := ParseCommand(input)
	if err != nil {
		m.setStatus(false, err.Error())
		return m, nil
	}

	switch cmd.Kind {
	case CmdQuit:
		return m, tea.Quit

	case CmdHelp:
		m.results.SetContent(m.helpText())
		m.results.GotoTop()
		m.setStatus(true, "help")

	case CmdInspect:
		n, ok := m.db.NEOByDesignation(cmd.Arg)
		if !ok {
			n, ok = m.db.NEOByName(cmd.Arg)
		}
		if !ok {
			m.setStatus(false, fmt.Sprintf("no NEO with designation or name %q", cmd.Arg))
			return m, nil
		}
		m.results.SetContent(ui.NEODetail(n, true))
		m.results.GotoTop()
		m.setStatus(true, fmt.Sprintf("inspecting %s", n.FullName()))

	case CmdQuery:
		limit := cmd.Limit
		if limit == 0 {
			limit = m.defaultLimit
		}
		var matches []*neo.CloseApproach
		for ca := range m.db.Query(cmd.Criteria.Build(), limit) {
			matches = append(matches, ca)
		}
		m.results.SetContent(ui.ApproachTable(matches))
		m.results.GotoTop()
		m.setStatus(true, fmt.Sprintf("%d match(es), limit %d", len(matches), limit))
	}

	m.input.SetValue("")
	return m, nil
}

func (m *Model) setStatus(ok bool, text string) {
	m.statusOK = ok
	m.status = text
}

func (m Model) helpText() string {
	lines := []string{
		styleHelpKey.Render("Commands"),
		"  query [key=value ...]   filter close approaches",
		"  inspect <designation>   show one NEO and its approaches",
		"  help                    show this message",
		"  quit                    exit",
		"",
		styleHelpKey.Render("Query keys"),
		"  date, start, end                    YYYY-MM-DD",
		"  min-distance, max-distance          astronomical units",
		"  min-velocity, max-velocity          km/s",
		"  min-diameter, max-diameter          kilometers",
		"  hazardous                           true or false",
		"  limit                               max results (defaults to the configured limit)",
		"",
		styleStatusInfo.Render("Example: query start=2020-01-01 end=2020-01-31 max-distance=0.05 hazardous=true"),
	}
	return strings.Join(lines, "\n")
}
