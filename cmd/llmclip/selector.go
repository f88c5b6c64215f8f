package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const previewByteLimit = 8 * 1024

var (
	selectorDocStyle  = lipgloss.NewStyle().Margin(1, 2)
	selectorTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	checkedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	searchPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	previewPaneStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

type selectorMode int

const (
	modeFiles selectorMode = iota
	modeDirs
)

// candidate is one selectable path, implementing list.Item.
type candidate struct {
	path string
}

func (c candidate) Title() string       { return c.path }
func (c candidate) Description() string { return "" }
func (c candidate) FilterValue() string { return c.path }

type selectorKeyMap struct {
	Toggle      key.Binding
	ToggleMode  key.Binding
	Preview     key.Binding
	StartSearch key.Binding
	ClearSearch key.Binding
	Confirm     key.Binding
	Quit        key.Binding
}

func defaultSelectorKeys() selectorKeyMap {
	return selectorKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle select"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "files/directories"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "toggle preview"),
		),
		StartSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "fuzzy search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "cancel"),
		),
	}
}

// selectorModel is the bubbletea state for interactive target
// selection: a multi-select candidate list with a fuzzy search mode, a
// file/directory mode toggle and an optional preview pane.
type selectorModel struct {
	root   string
	filter *Filter
	logger *zap.Logger

	list       list.Model
	keys       selectorKeyMap
	mode       selectorMode
	candidates []string
	selected   map[string]bool
	order      []string

	searching bool
	query     string

	showPreview bool
	previewFor  string
	previewText string

	width, height int
	confirmed     bool
	quitting      bool
}

// selectorDelegate renders one candidate row with its checkbox.
type selectorDelegate struct {
	selected *map[string]bool
}

func (d selectorDelegate) Height() int                         { return 1 }
func (d selectorDelegate) Spacing() int                        { return 0 }
func (d selectorDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d selectorDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	c, ok := li.(candidate)
	if !ok {
		return
	}
	checkbox := "[ ] "
	if (*d.selected)[c.path] {
		checkbox = checkedStyle.Render("[x] ")
	}
	line := checkbox + c.path
	if index == m.Index() {
		fmt.Fprint(w, focusedStyle.Render(line))
		return
	}
	fmt.Fprint(w, line)
}

func newSelectorModel(root string, f *Filter, logger *zap.Logger) selectorModel {
	m := selectorModel{
		root:     root,
		filter:   f,
		logger:   logger,
		keys:     defaultSelectorKeys(),
		mode:     modeFiles,
		selected: make(map[string]bool),
	}
	delegate := selectorDelegate{selected: &m.selected}
	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = selectorTitle
	l.SetShowStatusBar(false)
	// The list's built-in filter is replaced by our fuzzy search mode.
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			m.keys.Toggle, m.keys.ToggleMode, m.keys.Preview,
			m.keys.StartSearch, m.keys.Confirm, m.keys.Quit,
		}
	}
	m.list = l
	m.reloadCandidates()
	return m
}

// reloadCandidates re-queries the discovery engine with the current
// mode's type restriction. The root itself is always offered as the
// first, navigable entry.
func (m *selectorModel) reloadCandidates() {
	kind := entryFiles
	title := "Select files:"
	if m.mode == modeDirs {
		kind = entryDirs
		title = "Select directories:"
	}
	entries, err := listEntries(m.root, m.filter, kind)
	if err != nil {
		m.logger.Warn("candidate listing incomplete", zap.Error(err))
	}
	m.candidates = append([]string{"."}, entries...)
	m.list.Title = title
	m.refreshItems()
}

func (m *selectorModel) refreshItems() {
	items := make([]list.Item, 0, len(m.candidates))
	for _, p := range m.candidates {
		items = append(items, candidate{path: p})
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(0)
	}
}

// applySearch fuzzy-ranks the candidates against the query and shows
// the matches best-first. An empty query restores the full listing.
func (m *selectorModel) applySearch() {
	if m.query == "" {
		m.refreshItems()
		return
	}
	ranks := fuzzy.RankFindFold(m.query, m.candidates)
	sort.Sort(ranks)
	items := make([]list.Item, 0, len(ranks))
	for _, r := range ranks {
		items = append(items, candidate{path: r.Target})
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(0)
	}
}

func (m *selectorModel) toggleCurrent() {
	c, ok := m.list.SelectedItem().(candidate)
	if !ok {
		return
	}
	if m.selected[c.path] {
		delete(m.selected, c.path)
		for i, p := range m.order {
			if p == c.path {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
		return
	}
	m.selected[c.path] = true
	m.order = append(m.order, c.path)
}

// ensurePreview refreshes the preview pane for the highlighted
// candidate. Directories preview as their entry listing, files as
// their leading bytes.
func (m *selectorModel) ensurePreview() {
	if !m.showPreview {
		return
	}
	c, ok := m.list.SelectedItem().(candidate)
	if !ok {
		m.previewFor, m.previewText = "", ""
		return
	}
	if c.path == m.previewFor {
		return
	}
	m.previewFor = c.path
	m.previewText = previewContent(m.root, c.path)
}

func previewContent(root, rel string) string {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil {
		return "(unavailable)"
	}
	if info.IsDir() {
		entries, err := os.ReadDir(abs)
		if err != nil {
			return "(unavailable)"
		}
		var b strings.Builder
		for i, e := range entries {
			if i >= 30 {
				b.WriteString("...\n")
				break
			}
			name := e.Name()
			if e.IsDir() {
				name += "/"
			}
			b.WriteString(name + "\n")
		}
		return b.String()
	}
	f, err := os.Open(abs)
	if err != nil {
		return "(unavailable)"
	}
	defer f.Close()
	buf := make([]byte, previewByteLimit)
	n, _ := f.Read(buf)
	return string(buf[:n])
}

func (m selectorModel) Init() tea.Cmd { return nil }

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// While searching, printable keys belong to the query; only
		// ctrl+c still cancels.
		if m.searching {
			if msg.Type == tea.KeyCtrlC {
				m.quitting = true
				return m, tea.Quit
			}
			return m.updateSearching(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrent()
			return m, nil
		case key.Matches(msg, m.keys.ToggleMode):
			if m.mode == modeFiles {
				m.mode = modeDirs
			} else {
				m.mode = modeFiles
			}
			m.query = ""
			m.reloadCandidates()
			m.ensurePreview()
			return m, nil
		case key.Matches(msg, m.keys.Preview):
			m.showPreview = !m.showPreview
			m.previewFor = ""
			m.resize()
			m.ensurePreview()
			return m, nil
		case key.Matches(msg, m.keys.StartSearch):
			m.searching = true
			m.query = ""
			m.applySearch()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.ensurePreview()
	return m, cmd
}

func (m selectorModel) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.query = ""
		m.refreshItems()
		return m, nil
	case tea.KeyEnter:
		m.confirmed = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.query) > 0 {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.applySearch()
		}
		return m, nil
	case tea.KeyUp, tea.KeyCtrlK:
		m.list.CursorUp()
		m.ensurePreview()
		return m, nil
	case tea.KeyDown, tea.KeyCtrlJ:
		m.list.CursorDown()
		m.ensurePreview()
		return m, nil
	case tea.KeyCtrlT:
		m.toggleCurrent()
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.query += string(msg.Runes)
		m.applySearch()
		return m, nil
	}
	return m, nil
}

func (m *selectorModel) resize() {
	h, v := selectorDocStyle.GetFrameSize()
	width := m.width - h
	if m.showPreview {
		width = width / 2
	}
	m.list.SetSize(width, m.height-v-1)
}

func (m selectorModel) View() string {
	if m.quitting || m.confirmed {
		return ""
	}
	statusLine := mutedStyle.Render(fmt.Sprintf("%d selected | space select | tab mode | ctrl+p preview | enter confirm", len(m.order)))
	if m.searching {
		statusLine = searchPromptStyle.Render("Search: ") + m.query + mutedStyle.Render("_")
	}
	body := m.list.View()
	if m.showPreview {
		pane := previewPaneStyle.
			Width(m.width/2 - 6).
			Height(m.height - 6).
			Render(m.previewText)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, pane)
	}
	return selectorDocStyle.Render(body + "\n" + statusLine)
}

// selectTargets runs the interactive selector rooted at root and
// returns the chosen paths (relative to root, in selection order).
// Cancelling returns nil with no error; that ends the run normally.
// Without a terminal on both ends the selector cannot run at all,
// which is a dependency error.
func selectTargets(root string, f *Filter, logger *zap.Logger) ([]string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("interactive selection requires a terminal; pass paths as arguments instead")
	}
	model := newSelectorModel(root, f, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive selection failed: %w", err)
	}
	result, ok := final.(selectorModel)
	if !ok || !result.confirmed {
		return nil, nil
	}
	logger.Debug("interactive selection confirmed",
		zap.Strings("paths", result.order))
	return result.order, nil
}
