// Package tui renders the shopping list and forwards user intents into the
// reconciler. Store calls run as bubbletea commands so the terminal stays
// responsive while a round trip is in flight.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	blist "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seblw/grocli/internal/model"
	"github.com/seblw/grocli/internal/shoplist"
	"github.com/seblw/grocli/internal/ui"
)

// itemEntry adapts a model.Item to bubbles/list.Item.
type itemEntry struct {
	item model.Item
}

func (e itemEntry) Title() string       { return e.item.Name }
func (e itemEntry) Description() string { return "" }
func (e itemEntry) FilterValue() string { return e.item.Name }

// Custom delegate to control how items render (single line).
type entryDelegate struct{}

func (d entryDelegate) Height() int                                { return 1 }
func (d entryDelegate) Spacing() int                               { return 0 }
func (d entryDelegate) Update(msg tea.Msg, m *blist.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m blist.Model, index int, item blist.Item) {
	e, ok := item.(itemEntry)
	if !ok {
		return
	}
	t := ui.Current()
	line := fmt.Sprintf("%s %s %s %s",
		ui.Dot(e.item.Category.Color),
		e.item.Name,
		t.Accent.Render(fmt.Sprintf("×%d", e.item.Quantity)),
		t.Muted.Render(e.item.Category.Name),
	)
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Messages carrying async store results back into Update.
type (
	loadedMsg       struct{}
	loadFailedMsg   struct{ err error }
	addedMsg        struct{ item model.Item }
	addFailedMsg    struct{ err error }
	removedMsg      struct{ item model.Item }
	removeFailedMsg struct {
		item model.Item
		err  error
	}
)

// Add form focus cycles name -> quantity -> category.
const (
	focusName = iota
	focusQty
	focusCategory
)

type Model struct {
	rec *shoplist.Reconciler
	lst blist.Model

	loading bool
	loadErr string
	spin    spinner.Model

	// Inline add form
	adding    bool
	focus     int
	nameInput textinput.Model
	qtyInput  textinput.Model
	catIdx    int
	formErr   string

	// Transient outcome of the last add/remove, shown under the list.
	status string

	width, height int
}

func New(rec *shoplist.Reconciler) Model {
	t := ui.Current()

	l := blist.New(nil, entryDelegate{}, 0, 0)
	l.Title = t.Title.Render("Groceries")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind, reloadBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind, reloadBind} }

	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "Item name..."
	name.CharLimit = 50

	qty := textinput.New()
	qty.Prompt = "> "
	qty.Placeholder = "1"
	qty.CharLimit = 4

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = t.Accent

	return Model{
		rec:       rec,
		lst:       l,
		loading:   true,
		spin:      sp,
		nameInput: name,
		qtyInput:  qty,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	rec := m.rec
	return func() tea.Msg {
		if err := rec.Load(context.Background()); err != nil {
			return loadFailedMsg{err}
		}
		return loadedMsg{}
	}
}

func (m Model) addCmd(name string, qty int, catID model.CategoryID) tea.Cmd {
	rec := m.rec
	return func() tea.Msg {
		item, err := rec.Add(context.Background(), name, qty, catID)
		if err != nil {
			return addFailedMsg{err}
		}
		return addedMsg{item}
	}
}

func (m Model) removeCmd(item model.Item) tea.Cmd {
	rec := m.rec
	return func() tea.Msg {
		if err := rec.Remove(context.Background(), item); err != nil {
			return removeFailedMsg{item: item, err: err}
		}
		return removedMsg{item}
	}
}

// syncList rebuilds the visible list from the reconciler snapshot. The
// reconciler is authoritative; after any settled operation the view catches
// up to it (this is also what restores a rolled-back remove). The returned
// command re-applies an active filter.
func (m *Model) syncList() tea.Cmd {
	items := m.rec.Items()
	entries := make([]blist.Item, 0, len(items))
	for _, it := range items {
		entries = append(entries, itemEntry{item: it})
	}
	return m.lst.SetItems(entries)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		m.loadErr = ""
		return m, m.syncList()

	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err.Error()
		return m, nil

	case addedMsg:
		m.adding = false
		m.formErr = ""
		m.nameInput.Blur()
		m.qtyInput.Blur()
		m.status = ui.Current().Success.Render(fmt.Sprintf("✔ added %s", msg.item.Name))
		return m, m.syncList()

	case addFailedMsg:
		var verr *shoplist.ValidationError
		if errors.As(msg.err, &verr) {
			// Bad input: keep the form open so it can be corrected.
			m.formErr = verr.Error()
			return m, nil
		}
		m.adding = false
		m.nameInput.Blur()
		m.qtyInput.Blur()
		m.status = ui.Current().Error.Render("✖ add failed: " + msg.err.Error())
		return m, nil

	case removedMsg:
		m.status = ui.Current().Success.Render(fmt.Sprintf("✔ removed %s", msg.item.Name))
		return m, m.syncList()

	case removeFailedMsg:
		// The reconciler already put the item back; re-sync to show it.
		m.status = ui.Current().Error.Render("✖ remove failed: " + msg.err.Error())
		return m, m.syncList()
	}

	if m.loading {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}
	if m.loadErr != "" {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "r":
				m.loading = true
				m.loadErr = ""
				return m, tea.Batch(m.spin.Tick, m.loadCmd())
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
		}
		return m, nil
	}
	if m.adding {
		return m.updateAddForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.lst.FilterState() == blist.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.focus = focusName
			m.formErr = ""
			m.nameInput.SetValue("")
			m.qtyInput.SetValue("")
			m.catIdx = 0
			m.nameInput.Focus()
			return m, nil
		case "d":
			// SelectedItem follows the cursor through an applied filter;
			// Index() does not (it is an index into the visible items), so
			// the backing slice is searched by identity before removal.
			if e, ok := m.lst.SelectedItem().(itemEntry); ok {
				for i, it := range m.lst.Items() {
					if ent, ok := it.(itemEntry); ok && ent.item.ID == e.item.ID {
						// Optimistic: drop it from the view right away; a
						// removeFailedMsg re-syncs it back in.
						m.lst.RemoveItem(i)
						break
					}
				}
				m.status = ui.Current().Muted.Render("removing " + e.item.Name + "…")
				return m, m.removeCmd(e.item)
			}
			return m, nil
		case "r":
			m.loading = true
			m.status = ""
			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		}
	}

	var cmd tea.Cmd
	m.lst, cmd = m.lst.Update(msg)
	return m, cmd
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			m.adding = false
			m.formErr = ""
			m.nameInput.Blur()
			m.qtyInput.Blur()
			return m, nil
		case "enter":
			return m.submitAdd()
		case "tab", "down":
			return m.cycleFocus(1), nil
		case "shift+tab", "up":
			return m.cycleFocus(-1), nil
		case "left":
			if m.focus == focusCategory {
				cats := model.Categories()
				m.catIdx = (m.catIdx + len(cats) - 1) % len(cats)
				return m, nil
			}
		case "right":
			if m.focus == focusCategory {
				m.catIdx = (m.catIdx + 1) % len(model.Categories())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case focusQty:
		m.qtyInput, cmd = m.qtyInput.Update(msg)
	}
	return m, cmd
}

func (m Model) cycleFocus(dir int) Model {
	m.focus = (m.focus + dir + 3) % 3
	m.nameInput.Blur()
	m.qtyInput.Blur()
	switch m.focus {
	case focusName:
		m.nameInput.Focus()
	case focusQty:
		m.qtyInput.Focus()
	}
	return m
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	qtyRaw := strings.TrimSpace(m.qtyInput.Value())
	if qtyRaw == "" {
		qtyRaw = "1"
	}
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		m.formErr = "quantity must be a number"
		return m, nil
	}
	cat := model.Categories()[m.catIdx]
	m.formErr = ""
	m.status = ui.Current().Muted.Render("adding…")
	return m, m.addCmd(m.nameInput.Value(), qty, cat.ID)
}

func (m Model) View() string {
	t := ui.Current()
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	if m.loading {
		return ui.Panel(m.spin.View() + " loading your list…")
	}
	if m.loadErr != "" {
		content := t.Error.Render("✖ could not load the list") + "\n\n" +
			m.loadErr + "\n\n" +
			t.Help.Render("r retry • q quit")
		return ui.Panel(content)
	}

	listHeight := h - 5
	if m.adding {
		listHeight = h - 10
	}
	m.lst.SetSize(w-4, listHeight)

	content := m.lst.View()
	if m.status != "" {
		content += "\n" + m.status
	}
	if m.adding {
		content += "\n" + ui.Panel(m.addFormView())
	}
	return ui.Panel(content)
}

func (m Model) addFormView() string {
	t := ui.Current()
	title := "Add item"
	if m.formErr != "" {
		title += " — " + t.Error.Render(m.formErr)
	}

	cats := model.Categories()
	cat := cats[m.catIdx]
	catLine := fmt.Sprintf("%s %s", ui.Dot(cat.Color), cat.Name)
	if m.focus == focusCategory {
		catLine = t.Selected.Render("‹ "+catLine+" ›") + t.Help.Render("  ←/→ to change")
	} else {
		catLine = "  " + catLine
	}

	label := func(s string, focused bool) string {
		if focused {
			return t.Accent.Render(s)
		}
		return t.Muted.Render(s)
	}

	return strings.Join([]string{
		title,
		label("Name", m.focus == focusName) + "      " + m.nameInput.View(),
		label("Quantity", m.focus == focusQty) + "  " + m.qtyInput.View(),
		label("Category", m.focus == focusCategory) + "  " + catLine,
		t.Help.Render("enter save • tab next field • esc cancel"),
	}, "\n")
}

// Run starts the interactive list.
func Run(rec *shoplist.Reconciler) error {
	p := tea.NewProgram(New(rec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
