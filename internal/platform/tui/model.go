package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catflap/internal/core"
	"github.com/vovakirdan/catflap/internal/game"
	"github.com/vovakirdan/catflap/internal/storage"
)

// statusRows is the number of terminal rows below the playfield.
const statusRows = 1

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	best       int
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a model for g. store and logger may be nil.
func NewModel(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cx, cy := g.ResetButton().Center()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusRows, 0)),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(DefaultKeyMap(), cx, cy),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.refreshBest()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate, "difficulty", m.gameState.Selected)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the intent for a key press. Nothing is applied until
// the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left-button release over the playfield into a click
// at the world point under the cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return m, nil
	}
	if msg.Y < 0 || msg.Y >= m.screen.Height() || msg.X < 0 || msg.X >= m.screen.Width() {
		return m, nil
	}

	proj := game.NewProjection(m.game.Config().World, m.screen.Width(), m.screen.Height())
	x, y := proj.World(msg.X, msg.Y)
	m.inputFrame.Push(core.Click(x, y))
	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// new grid; the run itself is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-statusRows, 0))
	return m, nil
}

// handleTick runs exactly one simulation frame with the queued intents.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	m.logEvents(result.Events)

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventStarted, core.EventReset:
			m.runSaved = false
		case core.EventDifficultySelected:
			m.refreshBest()
		}
	}

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventStarted:
			m.logger.Info("run started", "difficulty", e.Name)
		case core.EventCollided, core.EventGroundHit:
			m.logger.Info("run ended", "cause", e.Kind, "score", e.Score, "frame", e.Frame)
		case core.EventFlapped:
			// Too frequent to be useful.
		case core.EventDifficultySelected:
			m.logger.Debug("difficulty selected", "difficulty", e.Name)
		default:
			m.logger.Debug(e.Kind.String(), "score", e.Score, "frame", e.Frame)
		}
	}
}

func (m *Model) recordRun() {
	if m.store == nil {
		return
	}
	run := storage.RunRecord{
		Difficulty: m.gameState.Difficulty,
		Score:      m.gameState.Score,
		Frames:     m.gameState.Frame,
	}
	if _, err := m.store.RecordRun(run); err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.refreshBest()
}

// refreshBest loads the session best for the selected difficulty.
func (m *Model) refreshBest() {
	m.best = 0
	if m.store == nil {
		return
	}
	best, err := m.store.SessionBest(m.gameState.Selected)
	if err != nil {
		m.logger.Warn("could not read session best", "error", err)
		return
	}
	m.best = best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// statusBar renders the one-line status row with key help.
func (m Model) statusBar() string {
	status := statusStyle.Render(fmt.Sprintf("%s · %s · best %d", game.Title, m.gameState.Selected, m.best))

	rest := m.width - lipgloss.Width(status) - 1
	if rest <= 0 {
		return status
	}
	m.help.Width = rest
	return status + " " + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with a model from NewModel.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse releases become clicks
	)

	_, err := p.Run()
	return err
}
