package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gridda/pkg/errors"
	"github.com/matzehuels/gridda/pkg/notebook"
	"github.com/matzehuels/gridda/pkg/pages"
)

var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	listInputStyle = lipgloss.NewStyle().Foreground(colorText).Underline(true)
)

const editorHelp = "↑/↓ move  a add  d delete  J/K reorder  space select  A all  c clear  t title  z zero  s side  w save  q quit"

// savedMsg reports the outcome of a save.
type savedMsg struct{ err error }

// EditorModel is the bubbletea model of the page editor. Every edit replaces
// State with a new snapshot.
type EditorModel struct {
	State  notebook.State
	Path   string
	Cursor int
	Height int
	Offset int

	editing bool
	input   []rune

	dirty     bool
	confirmQ  bool
	status    string
	statusErr bool

	save func(string, notebook.State) error
}

// NewEditorModel creates an editor for st that saves to path.
func NewEditorModel(st notebook.State, path string) EditorModel {
	return EditorModel{State: st, Path: path, Height: 15, save: notebook.Save}
}

// Dirty reports whether the model holds unsaved changes.
func (m EditorModel) Dirty() bool { return m.dirty }

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.updateTitle(msg), nil
		}
		return m.updateList(msg)
	case savedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.dirty = false
			m.setStatus("Saved " + m.Path)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.scroll()
	}
	return m, nil
}

func (m EditorModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.confirmQ = false
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if m.dirty && !m.confirmQ {
			m.confirmQ = true
			m.setStatus("Unsaved changes. Press q again to quit, w to save.")
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.State.Len()-1 {
			m.Cursor++
		}
	case "a":
		st, added, err := m.State.AddPage()
		if err != nil {
			m.setError(err)
			break
		}
		m.State = st
		m.Cursor = m.State.Len() - 1
		m.changed(fmt.Sprintf("Added page %d", added.Number))
	case "d":
		if pg, ok := m.current(); ok {
			m.apply(m.State.RemovePage(pg.ID))
			m.Cursor = min(m.Cursor, max(m.State.Len()-1, 0))
		}
	case "K", "shift+up":
		m.move(-1)
	case "J", "shift+down":
		m.move(1)
	case " ", "space":
		if pg, ok := m.current(); ok {
			m.apply(m.State.ToggleSelect(pg.ID))
		}
	case "A":
		m.State = m.State.SelectAll()
		m.changed(fmt.Sprintf("Selected %d pages", m.State.Len()))
	case "c":
		m.State = m.State.ClearSelection()
		m.changed("Selection cleared")
	case "z":
		policy := m.State.Numbering
		policy.StartAtZero = !policy.StartAtZero
		m.State = m.State.WithNumbering(policy)
		m.changed("Numbering starts at " + strconv.Itoa(policy.NumberAt(0)))
	case "s":
		policy := m.State.Numbering
		policy.FirstSide = policy.FirstSide.Opposite()
		m.State = m.State.WithNumbering(policy)
		m.changed("First page on the " + strings.ToLower(string(policy.FirstSide)))
	case "t", "enter":
		if pg, ok := m.current(); ok {
			m.editing = true
			m.input = []rune(pg.Title)
			m.status = ""
		}
	case "w":
		st, path, save := m.State, m.Path, m.save
		return m, func() tea.Msg { return savedMsg{err: save(path, st)} }
	}
	m.scroll()
	return m, nil
}

// updateTitle handles keys while the title of the current page is edited.
func (m EditorModel) updateTitle(msg tea.KeyMsg) EditorModel {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.input = nil
	case tea.KeyEnter:
		m.editing = false
		if pg, ok := m.current(); ok {
			m.apply(m.State.SetTitle(pg.ID, string(m.input)))
		}
		m.input = nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsControl(r) {
				m.input = append(m.input, r)
			}
		}
	}
	return m
}

func (m *EditorModel) move(delta int) {
	pg, ok := m.current()
	if !ok {
		return
	}
	to := min(max(m.Cursor+delta, 0), m.State.Len()-1)
	if to == m.Cursor {
		return
	}
	st, err := m.State.MovePage(pg.ID, to)
	if err != nil {
		m.setError(err)
		return
	}
	m.State = st
	m.Cursor = to
	m.changed(fmt.Sprintf("Moved page to position %d", to+1))
}

// apply installs st unless err is set, in which case the error is shown and
// the current state is kept.
func (m *EditorModel) apply(st notebook.State, err error) {
	if err != nil {
		m.setError(err)
		return
	}
	m.State = st
	m.changed("")
}

func (m *EditorModel) changed(status string) {
	m.dirty = true
	m.setStatus(status)
}

func (m *EditorModel) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *EditorModel) setError(err error) {
	m.status, m.statusErr = errors.UserMessage(err), true
}

func (m EditorModel) current() (pages.Page, bool) {
	ps := m.State.Pages()
	if m.Cursor < 0 || m.Cursor >= len(ps) {
		return pages.Page{}, false
	}
	return ps[m.Cursor], true
}

func (m *EditorModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("gridda · " + m.Path))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %s · %d selected",
		m.State.Paper.Label(), m.State.Grid.Describe(), m.State.Selection().Len())))
	b.WriteString("\n\n")

	ps := m.State.Pages()
	sel := m.State.Selection()
	end := min(m.Offset+m.Height, len(ps))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		pg := ps[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := ""
		if sel.Has(pg.ID) {
			mark = iconSelected
		}
		title := pg.Title
		if m.editing && i == m.Cursor {
			title = listInputStyle.Render(string(m.input) + "▏")
		}
		rows = append(rows, []string{cursor, strconv.Itoa(pg.Number), string(pg.Side), mark, title})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Page", "Side", "Sel", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleTableHeader
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorAttn)
			}
			if m.Offset+row == m.Cursor {
				return base.Bold(true).Foreground(colorAccent)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if len(ps) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(ps))))
	} else {
		b.WriteString(listDimStyle.Render("  no pages, press a to add one"))
	}
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(listDimStyle.Render("⏎ save title  esc cancel"))
	} else {
		b.WriteString(listDimStyle.Render(editorHelp))
	}
	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(markFail + " " + m.status)
		} else {
			b.WriteString(StyleSuccess.Render(m.status))
		}
		b.WriteString("\n")
	}
	return b.String()
}
