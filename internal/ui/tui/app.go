package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/skyfare/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenQuote
	screenQuoteResult
	screenDemo
	screenBatches
	screenBatchResult
)

const (
	itemQuote   = "Quote a ticket"
	itemDemo    = "Run demo"
	itemBatches = "Batches"
	itemInit    = "Init workspace"
	itemQuit    = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type batchItem struct {
	ref  domain.BatchRef
	root string
}

func (b batchItem) Title() string { return b.ref.Name }
func (b batchItem) Description() string {
	if rel, err := filepath.Rel(b.root, b.ref.Path); err == nil {
		return rel
	}
	return b.ref.Path
}
func (b batchItem) FilterValue() string { return b.ref.Name }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr     screen
	menu    list.Model
	batches list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	form       quoteForm
	quote      domain.Quote
	demoOut    string
	artifact   domain.QuoteArtifact
	artifactID string

	busy   bool
	toast  string
	notice string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{itemQuote, "Price a single ticket"},
		menuItem{itemDemo, "Price the two sample passengers"},
		menuItem{itemBatches, "Price a batch file and save the quotes"},
		menuItem{itemInit, "Create skyfare.yaml, batches/ and quotes/ here"},
		menuItem{itemQuit, "Exit Skyfare"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Skyfare"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	bl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	bl.Title = "Batches"
	bl.SetShowStatusBar(false)
	bl.SetShowHelp(false)

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := model{
		theme:   t,
		deps:    deps,
		log:     log.With("component", "tui"),
		scr:     screenHome,
		menu:    l,
		batches: bl,
		form:    newQuoteForm(),
	}

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
		if deps.WorkspaceLocator != nil {
			if root, findErr := deps.WorkspaceLocator.FindRoot(wd); findErr == nil {
				m.workspaceFound = true
				m.workspaceRoot = root
			}
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.batches.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Error("workspace.init.failed", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.log.Info("workspace.init.ok", "root", msg.root)
		m.notice = "Workspace ready: " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case quoteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.form.err = userMessage(msg.err)
			return m, nil
		}
		m.quote = msg.quote
		m.scr = screenQuoteResult
		return m, nil

	case demoDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Error("demo.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.demoOut = msg.out
		m.scr = screenDemo
		return m, nil

	case batchesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Error("batches.list.failed", "root", msg.root, "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, batchItem{ref: r, root: msg.root})
		}
		cmd := m.batches.SetItems(items)
		m.scr = screenBatches
		return m, cmd

	case batchPricedMsg:
		m.busy = false
		if msg.err != nil {
			m.log.Error("batch.failed", "err", msg.err, "saved_id", msg.id)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.artifact = msg.artifact
		m.artifactID = msg.id
		m.scr = screenBatchResult
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		m.toast = ""
		m.notice = ""

		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenQuote:
			return m.updateQuote(msg)
		case screenBatches:
			return m.updateBatches(msg)
		default:
			return m.updateResult(msg)
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenQuote:
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	case screenBatches:
		var cmd tea.Cmd
		m.batches, cmd = m.batches.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.open(it.title)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// open runs a home menu entry.
func (m model) open(title string) (tea.Model, tea.Cmd) {
	switch title {
	case itemQuote:
		m.form = newQuoteForm()
		m.scr = screenQuote
		return m, nil

	case itemDemo:
		m.busy = true
		return m, cmdRunDemo(m.workspaceRoot)

	case itemBatches:
		if !m.workspaceFound {
			m.toast = "No workspace found. Use Init workspace first."
			return m, nil
		}
		m.busy = true
		return m, cmdLoadBatches(m.workspaceRoot)

	case itemInit:
		if m.workspaceFound {
			m.toast = "Workspace already exists: " + m.workspaceRoot
			return m, nil
		}
		if m.cwd == "" {
			m.toast = "Unable to resolve the current directory"
			return m, nil
		}
		m.busy = true
		return m, cmdInitWorkspaceHere(m.deps, m.cwd)

	case itemQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updateQuote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case " ", "space":
		if m.form.focus == fieldElite {
			m.form.toggleElite()
			return m, nil
		}
	case "enter":
		t, err := m.form.ticket()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.busy = true
		return m, cmdQuote(m.workspaceRoot, t, m.log)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateBatches(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.batches.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.batches, cmd = m.batches.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	case "enter":
		it, ok := m.batches.SelectedItem().(batchItem)
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, cmdPriceBatch(m.workspaceRoot, it.ref.Path, m.log)
	}

	var cmd tea.Cmd
	m.batches, cmd = m.batches.Update(msg)
	return m, cmd
}

// updateResult handles the read-only result screens.
func (m model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "b":
		if m.scr == screenBatchResult {
			m.scr = screenBatches
			return m, nil
		}
		m.scr = screenHome
		return m, nil
	case "n":
		if m.scr == screenQuoteResult {
			m.form = newQuoteForm()
			m.scr = screenQuote
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Skyfare") + "\n" +
		m.theme.Subtitle.Render("Airline ticket pricing: single quotes, batches and saved artifacts") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found. Default pricing is used.\n\nCreate one with Init workspace.",
		)
	}

	var body string
	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		body = workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help
		if m.deps.Debug && m.deps.LogPath != "" {
			body += "\n" + m.theme.Help.Render("Debug log: "+m.deps.LogPath)
		}

	case screenQuote:
		body = m.theme.Card.Render(
			m.theme.Title.Render("Quote a ticket") + "\n\n" +
				m.form.view(m.theme) + "\n\n" +
				m.theme.Help.Render("tab next field • space toggle elite • enter quote • esc back"),
		)

	case screenQuoteResult:
		body = m.theme.Card.Render(
			m.theme.Title.Render("Quote") + "\n\n" +
				renderQuote(m.quote) + "\n" +
				m.theme.Price.Render("Price:     "+m.quote.Price.String()) + "\n\n" +
				m.theme.Help.Render("n new quote • esc back"),
		)

	case screenDemo:
		body = m.theme.Card.Render(
			m.theme.Title.Render("Demo") + "\n\n" +
				strings.TrimRight(m.demoOut, "\n") + "\n\n" +
				m.theme.Help.Render("esc back"),
		)

	case screenBatches:
		help := m.theme.Help.Render("enter price and save • / search • esc back")
		view := m.batches.View()
		if len(m.batches.Items()) == 0 {
			view = "(no batches found)"
		}
		body = workspaceBanner + "\n\n" + m.theme.Card.Render(view) + "\n" + help

	case screenBatchResult:
		body = m.theme.Card.Render(
			m.theme.Title.Render("Batch priced") + "\n\n" +
				renderArtifact(m.artifact, m.artifactID) + "\n\n" +
				m.theme.Help.Render("esc back to batches"),
		)

	default:
		body = "unknown state"
	}

	status := ""
	switch {
	case m.busy:
		status = "\n" + m.theme.Help.Render("Working…")
	case m.toast != "":
		status = "\n" + m.theme.Error.Render(m.toast)
	case m.notice != "":
		status = "\n" + m.theme.Help.Render(m.notice)
	}

	return wrap.Render(header + "\n" + body + status)
}
