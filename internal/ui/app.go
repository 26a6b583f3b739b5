package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/readstate"
	"github.com/five82/marquee/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewHome View = iota
	ViewNotifications
	ViewLegal
)

// KindFilter narrows the top-ten row by media kind.
type KindFilter int

const (
	FilterAll KindFilter = iota
	FilterMovies
	FilterShows
)

// ImageLinker builds artwork URLs. *catalog.Client implements it.
type ImageLinker interface {
	ImageURL(path, size string) string
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	Reads   readstate.Tracker
	Images  ImageLinker
	Banner  config.Banner
	// Refresh asks the pollers to fetch now.
	Refresh func()
	Logger  *slog.Logger
	// Clock drives the banner timers; nil uses carousel.SystemClock.
	Clock     carousel.Clock
	PollTick  time.Duration
	ThemeName string
	Filter    string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	reads     readstate.Tracker
	images    ImageLinker
	refresh   func()
	logger    *slog.Logger
	prefsPath string
	pollTick  time.Duration
	keys      keyMap

	// Banner
	banner *carousel.Scheduler[catalog.Title]
	dots   paginator.Model

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool
	detail      *catalog.Title
	errorMsg    string

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time
	read        map[string]bool

	// Home state
	filterMode KindFilter

	// Notifications state
	selectedNote int

	// Legal state
	legalViewport viewport.Model
}

// New creates a new Bubble Tea model. It fails only when the banner timing
// is unusable.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	reads := opts.Reads
	if reads == nil {
		reads = readstate.NewMemory()
	}

	banner, err := carousel.New(carousel.Options[catalog.Title]{
		Window:       opts.Banner.Slides,
		AdvanceEvery: opts.Banner.AdvanceEvery,
		PauseFor:     opts.Banner.PauseFor,
		Clock:        opts.Clock,
		Logger:       logger.With("component", "banner"),
	})
	if err != nil {
		return Model{}, err
	}

	dots := paginator.New()
	dots.Type = paginator.Dots
	dots.PerPage = 1

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		reads:       reads,
		images:      opts.Images,
		refresh:     opts.Refresh,
		logger:      logger,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		banner:      banner,
		dots:        dots,
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewHome,
		read:        map[string]bool{},
		filterMode:  parseFilter(opts.Filter),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		loadReadSetCmd(m.ctx, m.reads),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.legalViewport = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.updateLegalViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case timerFiredMsg:
		msg.fire()
		return m, nil

	case readSetMsg:
		if msg.err != nil {
			m.errorMsg = "read state: " + msg.err.Error()
			m.logger.Warn("read-state operation failed", "error", msg.err)
			return m, nil
		}
		m.read = msg.read
		return m, nil
	}

	if m.currentView == ViewLegal {
		var cmd tea.Cmd
		m.legalViewport, cmd = m.legalViewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.detail != nil {
		return m.renderDetail(*m.detail)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.detail != nil {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Details), key.Matches(msg, m.keys.Quit):
			m.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refresh != nil {
			m.refresh()
		}
		m.errorMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.ViewNotifications):
		m.currentView = ViewNotifications
		return m, nil

	case key.Matches(msg, m.keys.ViewLegal):
		m.currentView = ViewLegal
		m.legalViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewHome
		return m, nil
	}

	switch m.currentView {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewNotifications:
		return m.handleNotificationsKey(msg)
	case ViewLegal:
		var cmd tea.Cmd
		m.legalViewport, cmd = m.legalViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleHomeKey drives the banner and the top-ten filter.
func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevSlide):
		m.banner.Previous()
	case key.Matches(msg, m.keys.NextSlide):
		m.banner.Next()
	case key.Matches(msg, m.keys.GoToSlide):
		m.banner.GoTo(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Details):
		if v := m.banner.View(); !v.IsEmpty() {
			item := v.Item
			m.detail = &item
		}
	case key.Matches(msg, m.keys.CycleFilter):
		m.cycleFilter()
		m.savePrefs()
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// applySnapshot stores the latest data and hands a changed trending list to
// the banner.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if !sameTitles(m.snapshot.Trending, snap.Trending) {
		m.banner.Update(snap.Trending)
	}
	m.snapshot = snap
	m.lastUpdated = time.Now()

	if n := len(snap.Notifications); m.selectedNote >= n {
		m.selectedNote = max(n-1, 0)
	}
}

func sameTitles(a, b []catalog.Title) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].DisplayName() != b[i].DisplayName() {
			return false
		}
	}
	return true
}

// cycleFilter cycles through top-ten filter modes.
func (m *Model) cycleFilter() {
	switch m.filterMode {
	case FilterAll:
		m.filterMode = FilterMovies
	case FilterMovies:
		m.filterMode = FilterShows
	default:
		m.filterMode = FilterAll
	}
}

// filterLabel returns the display label for the current filter mode.
func (m Model) filterLabel() string {
	switch m.filterMode {
	case FilterMovies:
		return "Movies"
	case FilterShows:
		return "TV"
	default:
		return "All"
	}
}

// filterKey is the value persisted in prefs.toml.
func (f KindFilter) filterKey() string {
	switch f {
	case FilterMovies:
		return "movie"
	case FilterShows:
		return "tv"
	default:
		return "all"
	}
}

func parseFilter(value string) KindFilter {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "movie":
		return FilterMovies
	case "tv":
		return FilterShows
	default:
		return FilterAll
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Filter: m.filterMode.filterKey()})
	if err != nil {
		m.errorMsg = "save prefs failed"
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

func (m Model) contentHeight() int {
	return max(m.height-2, 1) // Account for header + cmdbar
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHome:
		return m.renderHome()
	case ViewNotifications:
		return m.renderNotifications()
	case ViewLegal:
		return m.renderLegal()
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type readSetMsg struct {
	read map[string]bool
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadReadSetCmd(ctx context.Context, reads readstate.Tracker) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ReadStateTimeout)
		defer cancel()
		read, err := reads.ReadSet(ctx)
		return readSetMsg{read: read, err: err}
	}
}

// markReadCmd records ids as read and reports the resulting read set.
func markReadCmd(ctx context.Context, reads readstate.Tracker, ids ...string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, ReadStateTimeout)
		defer cancel()

		var err error
		if len(ids) == 1 {
			err = reads.MarkRead(ctx, ids[0])
		} else {
			err = reads.MarkAllRead(ctx, ids)
		}
		if err != nil {
			return readSetMsg{err: err}
		}
		read, err := reads.ReadSet(ctx)
		return readSetMsg{read: read, err: err}
	}
}

// Run starts the Bubble Tea program and closes the banner when it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	clock := &loopClock{}
	opts.Clock = clock
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.banner.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	clock.attach(p.Send)

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
