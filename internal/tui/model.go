// Package tui is a full-screen terminal editor for the roster. It is a thin
// binding from keystrokes to table.Controller commands; all state that
// matters lives in the controller.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/table"
	"go.uber.org/zap"
)

// mode is where keystrokes go.
type mode int

const (
	modeTable mode = iota
	modeFind
	modeEdit
)

// maxColumnWidth caps the rendered width of a single column.
const maxColumnWidth = 24

// chromeLines is the number of screen lines not used by table rows: title,
// header, find line, status line and help line.
const chromeLines = 6

// Model is the bubbletea model for the editor.
type Model struct {
	ctrl *table.Controller
	path string
	log  *zap.Logger

	keys      keyMap
	help      help.Model
	findInput textinput.Model
	editInput textinput.Model

	mode      mode
	status    string
	statusErr bool
	dirty     bool
	quitArmed bool

	offset int // first visible row
	width  int
	height int
}

// New returns an editor over ctrl that saves to and reloads from path.
func New(ctrl *table.Controller, path string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	fi := textinput.New()
	fi.Prompt = "Find: "
	fi.Placeholder = "name, or ID if longer than 5 characters"
	fi.CharLimit = 64

	ei := textinput.New()
	ei.CharLimit = 256

	return Model{
		ctrl:      ctrl,
		path:      path,
		log:       log,
		keys:      keys,
		help:      help.New(),
		findInput: fi,
		editInput: ei,
		height:    24,
		width:     80,
	}
}

// Controller returns the controller the editor drives.
func (m Model) Controller() *table.Controller {
	return m.ctrl
}

// Dirty reports whether there are edits that have not been saved.
func (m Model) Dirty() bool {
	return m.dirty
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible(m.ctrl.Cursor().Row)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		m.quitArmed = false

		// Save works from every mode.
		if key.Matches(msg, m.keys.Save) {
			m.save()
			return m, nil
		}

		switch m.mode {
		case modeFind:
			return m.updateFind(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateTable(msg)
		}
	}

	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveUp()
		m.ensureVisible(m.ctrl.Cursor().Row)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveDown()
		m.ensureVisible(m.ctrl.Cursor().Row)
	case key.Matches(msg, m.keys.Left):
		m.ctrl.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.ctrl.MoveRight()
	case key.Matches(msg, m.keys.Select):
		if m.ctrl.RowCount() > 0 {
			m.ctrl.ToggleSelected(m.ctrl.Cursor().Row)
		}
	case key.Matches(msg, m.keys.Add):
		row := m.ctrl.AddRow()
		m.dirty = true
		m.ensureVisible(row)
		m.setStatus(fmt.Sprintf("added row %d", row+1), false)
	case key.Matches(msg, m.keys.Delete):
		n := len(m.ctrl.Selection())
		if err := m.ctrl.DeleteSelected(); err != nil {
			m.setError(err)
			break
		}
		m.dirty = true
		m.ensureVisible(m.ctrl.Cursor().Row)
		m.setStatus(fmt.Sprintf("deleted %d row(s)", n), false)
	case key.Matches(msg, m.keys.Find):
		if m.findInput.Value() == "" {
			return m.focusFind()
		}
		m.runFind()
	case key.Matches(msg, m.keys.Enter):
		return m.beginEdit()
	case key.Matches(msg, m.keys.Reload):
		m.reload()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateFind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Find):
		if m.runFind() {
			m.mode = modeTable
			m.findInput.Blur()
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeTable
		m.findInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		cur := m.ctrl.Cursor()
		if err := m.ctrl.SetCell(cur.Row, cur.Col, m.editInput.Value()); err != nil {
			m.setError(err)
		} else {
			m.dirty = true
			m.setStatus(fmt.Sprintf("row %d: %s updated", cur.Row+1, cur.Col), false)
		}
		m.mode = modeTable
		m.editInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeTable
		m.editInput.Blur()
		m.setStatus("edit cancelled", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) focusFind() (tea.Model, tea.Cmd) {
	m.mode = modeFind
	cmd := m.findInput.Focus()
	return m, cmd
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	if m.ctrl.RowCount() == 0 {
		m.setStatus("the roster is empty; press ctrl+n to add a row", true)
		return m, nil
	}
	cur := m.ctrl.Cursor()
	value, err := m.ctrl.Cell(cur.Row, cur.Col)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.mode = modeEdit
	m.editInput.Prompt = cur.Col.Title() + ": "
	m.editInput.SetValue(value)
	m.editInput.CursorEnd()
	cmd := m.editInput.Focus()
	return m, cmd
}

// runFind executes the query in the find input and reports whether a row
// matched. On no match the input is cleared and keeps focus.
func (m *Model) runFind() bool {
	out, err := m.ctrl.Find(m.findInput.Value())
	if err != nil {
		m.setError(err)
		return false
	}
	if !out.Found {
		m.setStatus(fmt.Sprintf("no match for %q in %s", strings.TrimSpace(m.findInput.Value()), out.Column), true)
		m.findInput.SetValue("")
		m.mode = modeFind
		m.findInput.Focus()
		return false
	}
	m.ensureVisible(out.Row)
	m.setStatus(fmt.Sprintf("found row %d: %s", out.Row+1, out.Value), false)
	return true
}

func (m *Model) save() {
	if err := m.ctrl.SaveAll(m.path); err != nil {
		m.log.Debug("save failed", zap.Error(err))
		m.setError(err)
		return
	}
	m.dirty = false
	m.setStatus(fmt.Sprintf("saved %d rows to %s", m.ctrl.RowCount(), m.path), false)
}

func (m *Model) reload() {
	if err := m.ctrl.LoadAll(m.path); err != nil {
		m.setError(err)
		return
	}
	m.dirty = false
	m.offset = 0
	m.setStatus(fmt.Sprintf("reloaded %d rows from %s", m.ctrl.RowCount(), m.path), false)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.dirty && !m.quitArmed {
		m.quitArmed = true
		m.setStatus("unsaved changes: press ctrl+q again to quit without saving", true)
		return m, nil
	}
	return m, tea.Quit
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) setError(err error) {
	m.setStatus(cli.Describe(err), true)
	if errors.Is(err, table.ErrNoSelection) {
		m.status += " (space selects the cursor row)"
	}
}

// visibleRows is how many table rows fit on screen.
func (m Model) visibleRows() int {
	n := m.height - chromeLines
	if m.help.ShowAll {
		n -= 3
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ensureVisible scrolls so that row is on screen.
func (m *Model) ensureVisible(row int) {
	rows := m.visibleRows()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := titleStyle.Render("roster")
	path := pathStyle.Render(m.path)
	if m.dirty {
		path += mutedStyle.Render("  [modified]")
	}
	b.WriteString(title + path + "\n")

	b.WriteString(m.renderTable())

	switch m.mode {
	case modeFind:
		b.WriteString(m.findInput.View() + "\n")
	case modeEdit:
		cur := m.ctrl.Cursor()
		b.WriteString(mutedStyle.Render(fmt.Sprintf("row %d ", cur.Row+1)) + m.editInput.View() + "\n")
	default:
		if v := m.findInput.Value(); v != "" {
			b.WriteString(mutedStyle.Render("Find: "+v) + "\n")
		} else {
			b.WriteString("\n")
		}
	}

	switch {
	case m.status == "":
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d rows", m.ctrl.RowCount())) + "\n")
	case m.statusErr:
		b.WriteString(errorStyle.Render(m.status) + "\n")
	default:
		b.WriteString(successStyle.Render(m.status) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) columnWidths() []int {
	widths := make([]int, m.ctrl.ColumnCount())
	for i, h := range m.ctrl.Headers() {
		widths[i] = lipgloss.Width(h)
	}
	for row := 0; row < m.ctrl.RowCount(); row++ {
		for _, col := range model.Columns() {
			v, _ := m.ctrl.Cell(row, col)
			if w := lipgloss.Width(v); w > widths[col] {
				widths[col] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func pad(s string, width int) string {
	s = cli.Truncate(s, width)
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func (m Model) renderTable() string {
	var b strings.Builder
	widths := m.columnWidths()
	gutter := len(fmt.Sprint(m.ctrl.RowCount())) + 2

	header := strings.Repeat(" ", gutter)
	for i, h := range m.ctrl.Headers() {
		header += headerStyle.Render(pad(h, widths[i])) + "  "
	}
	b.WriteString(strings.TrimRight(header, " ") + "\n")

	if m.ctrl.RowCount() == 0 {
		b.WriteString(mutedStyle.Render("  no records; press ctrl+n to add one") + "\n")
		return b.String()
	}

	cur := m.ctrl.Cursor()
	end := m.offset + m.visibleRows()
	if end > m.ctrl.RowCount() {
		end = m.ctrl.RowCount()
	}

	for row := m.offset; row < end; row++ {
		selected := m.ctrl.IsSelected(row)
		marker := " "
		if selected {
			marker = markerStyle.Render("*")
		}
		line := marker + pad(fmt.Sprint(row+1), gutter-1)

		for _, col := range model.Columns() {
			v, _ := m.ctrl.Cell(row, col)
			cell := pad(v, widths[col])
			switch {
			case row == cur.Row && col == cur.Col && m.mode != modeEdit:
				cell = cursorCellStyle.Render(cell)
			case selected:
				cell = selectedRowStyle.Render(cell)
			}
			line += cell + "  "
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return b.String()
}

// Run starts the editor full-screen and blocks until the user quits.
func Run(ctrl *table.Controller, path string, log *zap.Logger) error {
	p := tea.NewProgram(New(ctrl, path, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal editor failed: %w", err)
	}
	return nil
}
