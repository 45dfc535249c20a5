// Package ui provides the terminal user interface for ingrid: the
// outline view, the ordered keymap that dispatches gestures to the
// cursor controller, inline title editing, and live reload of externally
// modified snapshots.
package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jigargosar/ingrid/pkg/model"
	"github.com/jigargosar/ingrid/pkg/outline"
	"github.com/jigargosar/ingrid/pkg/store"
)

// reloadMsg signals that the snapshot changed on disk.
type reloadMsg struct{}

// Model is the bubbletea model for the outline editor.
type Model struct {
	ctrl *outline.Controller
	st   *store.Store
	gen  outline.Generator

	keymap  Keymap
	theme   Theme
	watcher *Watcher

	viewport viewport.Model
	input    textinput.Model
	editing  bool
	showHelp bool
	helpView string

	ready  bool
	width  int
	height int

	status        string
	lastCommandAt time.Time

	err error
}

// NewModel creates the editor UI over an already-loaded controller. The
// store may be nil (tests); the watcher is attached with SetWatcher.
func NewModel(ctrl *outline.Controller, st *store.Store, gen outline.Generator, theme Theme) Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Prompt = "title: "

	if st != nil {
		// The core notifies once per completed command and the snapshot
		// is written as a side effect. Observers only ever see the
		// fully-post state.
		ctrl.SetOnChange(func(doc *model.Document) {
			if err := st.Save(doc); err != nil {
				log.Printf("warning: failed to save snapshot: %v", err)
			}
		})
	}

	return Model{
		ctrl:   ctrl,
		st:     st,
		gen:    gen,
		keymap: DefaultKeymap(),
		theme:  theme,
		input:  input,
	}
}

// SetWatcher attaches a started snapshot watcher for live reload.
func (m *Model) SetWatcher(w *Watcher) {
	m.watcher = w
}

// Err returns the fatal error that terminated the session, if any.
func (m Model) Err() error {
	return m.err
}

// Document exposes the live document for tests.
func (m Model) Document() *model.Document {
	return m.ctrl.Document()
}

func (m Model) Init() tea.Cmd {
	return m.waitForReload()
}

// waitForReload blocks on the watcher channel and converts a signal into
// a reloadMsg.
func (m Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.ready {
			// Resize in place: recreating the viewport would reset the
			// scroll position, which matters when the cursor row is
			// hidden and syncViewport cannot restore it.
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		} else {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		}
		m.input.Width = msg.Width - len(m.input.Prompt) - 2
		m.helpView = renderHelp(msg.Width)
		m.syncViewport()

	case reloadMsg:
		// Our own saves also touch the db; only reload when the change
		// cannot have been ours.
		if time.Since(m.lastCommandAt) > time.Second {
			m.reloadFromStore()
		}
		return m, m.waitForReload()

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.dispatch(msg)
	}
	return m, nil
}

// dispatch routes a key event through the ordered keymap. The first
// matching gesture wins and the event is consumed; unmatched events are
// dropped.
func (m Model) dispatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.Match(msg)
	if !ok {
		return m, nil
	}

	m.status = ""
	m.lastCommandAt = time.Now()

	var err error
	switch cmd {
	case CmdAddLine:
		err = m.ctrl.AddLine()
	case CmdMovePrev:
		err = m.ctrl.MovePrev()
	case CmdMoveNext:
		err = m.ctrl.MoveNext()
	case CmdIndent:
		err = m.ctrl.Indent()
	case CmdOutdent:
		err = m.ctrl.Outdent()
	case CmdExpand:
		err = m.ctrl.Expand()
	case CmdCollapse:
		err = m.ctrl.Collapse()
	case CmdEditTitle:
		current := m.ctrl.Document().Current()
		if current != nil && !current.IsRoot() {
			m.editing = true
			m.input.SetValue(current.Title)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}
	case CmdYankTitle:
		if current := m.ctrl.Document().Current(); current != nil {
			if cerr := clipboard.WriteAll(current.Title); cerr != nil {
				m.status = "clipboard unavailable"
			} else {
				m.status = fmt.Sprintf("yanked %q", current.Title)
			}
		}
	case CmdHelp:
		m.showHelp = true
	case CmdQuit:
		return m, tea.Quit
	}

	if err != nil {
		// An invariant breach denotes a core bug; surface it and stop
		// rather than keep editing a corrupted document.
		m.err = err
		return m, tea.Quit
	}

	m.syncViewport()
	return m, nil
}

// updateEditing handles key events while the title input is active.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.input.Blur()
		m.lastCommandAt = time.Now()
		if err := m.ctrl.SetTitle(m.input.Value()); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.syncViewport()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// reloadFromStore replaces the live document with the repaired on-disk
// snapshot.
func (m *Model) reloadFromStore() {
	if m.st == nil {
		return
	}
	doc, err := m.st.Load()
	if err != nil {
		log.Printf("warning: failed to reload snapshot: %v", err)
		return
	}
	ctrl := outline.NewController(doc, m.gen)
	st := m.st
	ctrl.SetOnChange(func(doc *model.Document) {
		if err := st.Save(doc); err != nil {
			log.Printf("warning: failed to save snapshot: %v", err)
		}
	})
	m.ctrl = ctrl
	m.status = "reloaded from disk"
	m.syncViewport()
}

// syncViewport re-renders the outline and keeps the cursor row scrolled
// into view. A cursor hidden inside a collapsed subtree has no row; the
// status bar still names it.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	doc := m.ctrl.Document()
	m.viewport.SetContent(renderOutline(doc, m.theme, m.width))

	rows := visibleRows(doc)
	if idx := rowIndexOf(rows, doc.CurrentID); idx >= 0 {
		if idx < m.viewport.YOffset {
			m.viewport.SetYOffset(idx)
		} else if idx >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(idx - m.viewport.Height + 1)
		}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.showHelp {
		return m.helpView
	}

	body := m.viewport.View()
	var bottom string
	if m.editing {
		bottom = m.input.View()
	} else {
		bottom = m.renderFooter()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, bottom)
}

// renderFooter renders the one-line status bar: current title, line
// count, transient status, key hints.
func (m Model) renderFooter() string {
	doc := m.ctrl.Document()

	currentTitle := ""
	if current := doc.Current(); current != nil {
		currentTitle = current.Title
	}
	left := m.theme.StatusBar.Render(fmt.Sprintf(" %s ", currentTitle))
	count := m.theme.Hint.Render(fmt.Sprintf("%d lines", doc.Len()-1))

	hint := "enter: new • tab: indent • i: edit • ?: help • q: quit"
	if m.status != "" {
		hint = m.status
	}
	right := m.theme.Hint.Render(" " + hint + " ")

	remaining := m.width - lipgloss.Width(left) - lipgloss.Width(count) - lipgloss.Width(right)
	if remaining < 0 {
		remaining = 0
	}
	filler := m.theme.Hint.Width(remaining).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, count, filler, right)
}
