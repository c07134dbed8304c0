package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflight/internal/core"
	"github.com/vovakirdan/ringflight/internal/flight"
	"github.com/vovakirdan/ringflight/internal/registry"
	"github.com/vovakirdan/ringflight/internal/sound"
	"github.com/vovakirdan/ringflight/internal/storage"
)

// Options configures a Model. Every field is optional.
type Options struct {
	Journal       *storage.Journal // Finished runs are recorded here and seed the HUD best
	Sound         *sound.Player    // Cues for scored, missed and crashed rings
	Logger        *log.Logger
	Pilot         string // Name recorded with each run
	Autopilot     bool   // Steer automatically once launched
	HoldTicks     int    // Ticks a pitch key press stays held
	ScreenshotDir string // Defaults to ~/.ringflight/screenshots
}

// Model is the Bubble Tea model for a flight session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	latch      PitchLatch
	pilot      *flight.Autopilot
	inputFrame core.InputFrame
	gameState  core.GameState
	run        runTally
	history    HistoryModel
	showHist   bool
	paused     bool
	quitting   bool
}

// runTally accumulates the per-run numbers the journal records.
type runTally struct {
	missed int
	saved  bool // The flight has already been journaled
}

// bestKeeper is implemented by games whose HUD shows a best score.
type bestKeeper interface {
	SetBest(score int)
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Pilot == "" {
		opts.Pilot = "player"
	}

	var pilot *flight.Autopilot
	if opts.Autopilot {
		pilot = &flight.Autopilot{}
		opts.Pilot = "autopilot"
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		latch:      NewPitchLatch(opts.HoldTicks),
		pilot:      pilot,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.refreshBest()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)

	if m.showHist {
		switch action {
		case core.ActionQuit:
			m.saveUnfinished()
			m.quitting = true
			return m, tea.Quit
		case core.ActionHistory, core.ActionPause:
			m.showHist = false
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	switch action {
	case core.ActionQuit:
		m.saveUnfinished()
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.latch.Release()
	case core.ActionHistory:
		m.history = NewHistoryModel(m.opts.Journal, m.config.ScreenW, m.config.ScreenH)
		m.showHist = true
		m.latch.Release()
	}

	if m.paused {
		return m, nil
	}

	switch action {
	case core.ActionPitchUp:
		m.latch.Press(-1)
	case core.ActionPitchDown:
		m.latch.Press(1)
	case core.ActionLaunch, core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the flight going and only resizes the screen buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width

	if m.showHist {
		m.history, _ = m.history.Update(msg)
	}
	return m, nil
}

// handleTick advances the simulation by one tick unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.showHist {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.inputFrame
	in.Pitch = m.latch.Next()
	if m.pilot != nil && m.gameState.Started && !m.gameState.GameOver {
		ctrl := m.game.Flight()
		in.Pitch = m.pilot.Pitch(ctrl.Snapshot(), ctrl.Settings().Sensitivity)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	events := m.game.Events()
	m.handleEvents(events)
	if m.gameState.Started && !m.gameState.GameOver && !m.run.saved {
		// A cleared course keeps flying; journal it once the last ring is judged.
		if ctrl := m.game.Flight(); ctrl.Field().Remaining() == 0 {
			m.logger.Info("course cleared", "course", m.game.ID(), "score", ctrl.Score())
			m.saveRun(ctrl.Score(), -1, ctrl.Snapshot().Tick)
		}
	}
	if m.opts.Sound != nil {
		m.opts.Sound.Handle(events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents logs flight events and records finished runs.
func (m *Model) handleEvents(events []flight.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case flight.StartedEvent:
			m.run = runTally{}
			m.logger.Debug("launched", "course", m.game.ID())
		case flight.RestartedEvent:
			if ev.From == flight.StateRunning && !m.run.saved {
				m.saveRun(ev.Score, -1, ev.Tick)
			}
			m.run = runTally{}
			m.latch.Release()
		case flight.RingScoredEvent:
			m.logger.Debug("ring scored", "ring", ev.Ring, "distance", ev.Distance, "score", ev.Score)
		case flight.RingMissedEvent:
			m.run.missed++
			m.logger.Debug("ring missed", "ring", ev.Ring, "distance", ev.Distance)
		case flight.CrashedEvent:
			m.logger.Info("crashed", "course", m.game.ID(), "ring", ev.Ring, "score", ev.Score, "tick", ev.Tick)
			m.latch.Release()
			m.saveRun(ev.Score, ev.Ring, ev.Tick)
		}
	}
}

// saveUnfinished records a flight that is still in the air.
func (m *Model) saveUnfinished() {
	if !m.gameState.Started || m.gameState.GameOver || m.run.saved {
		return
	}
	snap := m.game.Flight().Snapshot()
	m.saveRun(snap.Score, -1, snap.Tick)
}

// saveRun records a finished run. crashRing is -1 for flights that did not
// end on a rim. Best-effort: failures are logged.
func (m *Model) saveRun(score, crashRing int, ticks uint64) {
	m.run.saved = true
	if m.opts.Journal == nil {
		return
	}

	_, err := m.opts.Journal.SaveRun(storage.RunRecord{
		Course:    m.game.ID(),
		Pilot:     m.opts.Pilot,
		Score:     score,
		Scored:    score,
		Missed:    m.run.missed,
		CrashRing: crashRing,
		Ticks:     ticks,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.refreshBest()
}

// refreshBest seeds the HUD best score from the journal.
func (m *Model) refreshBest() {
	bk, ok := m.game.(bestKeeper)
	if !ok || m.opts.Journal == nil {
		return
	}

	best, err := m.opts.Journal.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
		return
	}
	bk.SetBest(best)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".ringflight", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHist {
		return m.history.View() + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED - press P to resume ", core.ColorBrightYellow)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
