// Package tui is the interactive recipe browser: a list with search and
// filters, a detail screen with mouse and keyboard rating, and the
// add/edit form.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/filter"
	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/recipe"
	"github.com/idilsaglam/recipebox/internal/store"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/view"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirm
	screenFatal
)

const noticeTTL = 4 * time.Second

// Options wires the browser to its collaborators.
type Options struct {
	Repo *recipe.Repository
	// Notices must be the notifier Repo was built with; the browser drains
	// it after every operation.
	Notices *recipe.Notices
	// Prefs stores the theme preference. Nil disables persistence.
	Prefs store.Store
	Theme string
	Mouse bool
	Log   *zap.Logger
}

// Model is the bubbletea model for the whole browser.
type Model struct {
	repo    *recipe.Repository
	notices *recipe.Notices
	prefs   store.Store
	log     *zap.Logger
	mouse   bool

	screen screen
	back   screen // where confirm returns to on "no"
	width  int
	height int

	recipes  []model.Recipe
	criteria filter.Criteria
	list     list.Model
	search   searchBar
	lkeys    listKeys

	detail *detailScreen
	dkeys  detailKeys

	form  *formScreen
	fkeys formKeys

	pendingDelete string
	ckeys         confirmKeys

	help help.Model

	notice    *recipe.Notice
	noticeSeq int

	fatal error
}

type noticeExpired struct{ seq int }

// New builds the browser and prepares the store: a first run seeds the
// sample recipes, later runs repair what is stored. A failure here yields a
// model that only shows the error.
func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	notices := opts.Notices
	if notices == nil {
		notices = &recipe.Notices{}
	}
	m := Model{
		repo:    opts.Repo,
		notices: notices,
		prefs:   opts.Prefs,
		log:     log.Named("tui"),
		mouse:   opts.Mouse,
		width:   80,
		height:  24,
		lkeys:   newListKeys(),
		dkeys:   newDetailKeys(),
		fkeys:   newFormKeys(),
		ckeys:   newConfirmKeys(),
		help:    help.New(),
		search:  newSearchBar(),
	}
	m.criteria = filter.Criteria{Difficulty: filter.All}
	m.list = m.newList()

	if opts.Prefs != nil {
		ui.SetTheme(ui.ResolveTheme(opts.Theme, opts.Prefs))
	} else if ui.ValidTheme(opts.Theme) {
		ui.SetTheme(opts.Theme)
	}

	recipes, err := m.repo.Init()
	if err != nil {
		m.log.Error("initialize recipes", zap.Error(err))
		return Fatal(err)
	}
	m.recipes = recipes
	m.refreshList()
	m.takeNotice()
	return m
}

// Fatal is a browser that only shows err. There is no form access and no
// retry; any key quits.
func Fatal(err error) Model {
	return Model{screen: screenFatal, fatal: err, width: 80, height: 24, help: help.New(), log: zap.NewNop()}
}

// Run starts the browser on the terminal and blocks until it quits.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.notice != nil {
		return m.expireNotice()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case noticeExpired:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil
	}

	if m.screen == screenFatal {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	default:
		return m.updateList(msg)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.screen == screenFatal {
		return m.viewFatal()
	}

	var body, helpLine string
	switch m.screen {
	case screenDetail:
		body = m.viewDetail()
		helpLine = m.help.View(m.dkeys)
	case screenForm:
		body = m.viewForm()
		helpLine = m.help.View(m.fkeys)
	case screenConfirm:
		body = m.viewConfirm()
		helpLine = m.help.View(m.ckeys)
	default:
		body = m.viewList()
	}

	parts := []string{ui.PanelStyle().Width(m.innerWidth()).Render(body)}
	if helpLine != "" {
		parts = append(parts, " "+helpLine)
	}
	if m.notice != nil {
		parts = append(parts, " "+ui.NoticeLine(*m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewFatal() string {
	t := ui.Current()
	msg := "unknown error"
	if m.fatal != nil {
		msg = m.fatal.Error()
	}
	box := lipgloss.JoinVertical(lipgloss.Center,
		t.Error.Render(view.FatalHeading),
		"",
		t.Muted.Render(msg),
		"",
		view.FatalHint,
		t.Muted.Render("press any key to exit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ui.Panel([]string{box}))
}

// innerWidth is the panel content width: the terminal minus border and
// padding.
func (m Model) innerWidth() int {
	return max(m.width-4, 20)
}

func (m *Model) resize() {
	m.list.SetSize(m.innerWidth(), max(m.height-6, 4))
	m.help.Width = m.width
	m.search.setWidth(m.innerWidth())
	if m.form != nil {
		m.form.setWidth(m.innerWidth())
	}
}

// takeNotice moves the newest repository notice to the status line.
func (m *Model) takeNotice() tea.Cmd {
	pending := m.notices.Drain()
	if len(pending) == 0 {
		return nil
	}
	n := pending[len(pending)-1]
	return m.showNotice(n)
}

func (m *Model) showNotice(n recipe.Notice) tea.Cmd {
	m.notice = &n
	m.noticeSeq++
	return m.expireNotice()
}

func (m Model) expireNotice() tea.Cmd {
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpired{seq: seq} })
}

// reload rereads the collection after a mutation and rebuilds the list.
func (m *Model) reload() {
	recipes, err := m.repo.List()
	if err != nil {
		m.log.Error("reload recipes", zap.Error(err))
		return
	}
	m.recipes = recipes
	m.refreshList()
}

func (m *Model) toggleTheme() tea.Cmd {
	next := ui.Toggle(ui.Current().Name)
	ui.SetTheme(next)
	m.list = m.restyleList()
	if m.prefs == nil {
		return nil
	}
	if err := ui.StoreTheme(m.prefs, next); err != nil {
		m.log.Warn("save theme", zap.Error(err))
		return m.showNotice(recipe.Notice{Severity: recipe.Error, Message: "Could not save theme preference."})
	}
	return nil
}
