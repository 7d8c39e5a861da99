// Package tui provides the BubbleTea-based landing screen.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angelhq/angelui/internal/config"
	"github.com/angelhq/angelui/internal/content"
	"github.com/angelhq/angelui/internal/cycler"
	"github.com/angelhq/angelui/internal/journal"
	"github.com/angelhq/angelui/internal/prefs"
	"github.com/angelhq/angelui/internal/theme"
)

// frameInterval drives the decorative animation: bubble reveal and the
// rotating word's entrance.
const frameInterval = 150 * time.Millisecond

// framesPerBubble is how many frames pass between chat bubble reveals.
const framesPerBubble = 6

// Model is the landing screen model. The theme controller is established
// before the program starts, so the first View already renders the
// persisted theme.
type Model struct {
	cfg        *config.Config
	deck       content.Deck
	controller *prefs.Controller
	journal    *journal.Journal
	cycler     *cycler.Cycler

	palette theme.Palette
	styles  theme.Styles

	keys     KeyMap
	help     help.Model
	typing   spinner.Model
	showHelp bool

	// Animation state
	wordFrame int // frames since the current word appeared
	frame     int
	revealed  int // visible chat bubbles

	themeCh <-chan prefs.ChangeEvent

	width  int
	height int
	ready  bool

	statusMsg string
	statusErr bool
}

// New creates a new landing screen model. The cycler index is owned here;
// the Bubble Tea event loop drives it, so timer callbacks, key handling
// and rendering never run concurrently.
func New(cfg *config.Config, deck content.Deck, c *cycler.Cycler, controller *prefs.Controller, j *journal.Journal) Model {
	palette := theme.ForTheme(controller.Current())

	typing := spinner.New(
		spinner.WithSpinner(spinner.Ellipsis),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(palette.Muted)),
	)

	m := Model{
		cfg:        cfg,
		deck:       deck,
		controller: controller,
		journal:    j,
		cycler:     c,
		palette:    palette,
		styles:     theme.NewStyles(palette),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		typing:     typing,
		themeCh:    controller.Subscribe(),
	}

	return m
}

type wordTickMsg time.Time

type frameTickMsg time.Time

type themeChangedMsg prefs.ChangeEvent

type statusFlashMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

// Init starts the word timer, the animation frame timer and the theme
// change subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.wordTick(),
		m.frameTick(),
		m.watchTheme,
		m.typing.Tick,
	)
}

// wordTick schedules the next word advancement on the program's event loop.
func (m Model) wordTick() tea.Cmd {
	return tea.Tick(m.cycler.Interval(), func(t time.Time) tea.Msg {
		return wordTickMsg(t)
	})
}

func (m Model) frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// watchTheme waits for a change event from the preference controller.
// Events arrive from the local toggle as well as from other processes
// via the prefs file watcher.
func (m Model) watchTheme() tea.Msg {
	if m.themeCh == nil {
		return nil
	}
	ev, ok := <-m.themeCh
	if !ok {
		return nil
	}
	return themeChangedMsg(ev)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case wordTickMsg:
		m.cycler.Next()
		m.wordFrame = 0
		return m, m.wordTick()

	case frameTickMsg:
		m.frame++
		m.wordFrame++
		if m.revealed < len(m.deck.Bubbles) && m.frame%framesPerBubble == 0 {
			m.revealed++
		}
		return m, m.frameTick()

	case themeChangedMsg:
		m.applyPalette(msg.Current)
		if msg.Source == prefs.SourceExternal {
			return m, tea.Batch(m.watchTheme, m.flashStatus("theme changed externally", false))
		}
		return m, m.watchTheme

	case statusFlashMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Replay):
		m.revealed = 0
		m.frame = 0
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		previous := m.controller.Current()
		next, err := m.controller.Toggle(prefs.SourceTUI)
		if err != nil {
			return m, m.flashStatus("toggle failed: "+err.Error(), true)
		}

		// Apply before the next paint; the subscription event is for
		// changes made by other processes.
		m.applyPalette(next)

		if m.journal != nil {
			if err := m.journal.Record(previous, next, prefs.SourceTUI); err != nil {
				return m, m.flashStatus("history not recorded: "+err.Error(), true)
			}
		}

		if !m.controller.Persisted() {
			return m, m.flashStatus(fmt.Sprintf("%s theme (not persisted)", next), true)
		}
		return m, m.flashStatus(fmt.Sprintf("%s theme", next), false)
	}

	return m, nil
}

// applyPalette re-resolves styles for the given theme.
func (m *Model) applyPalette(t prefs.Theme) {
	m.palette = theme.ForTheme(t)
	m.styles = theme.NewStyles(m.palette)
	m.typing.Style = lipgloss.NewStyle().Foreground(m.palette.Muted)
}

func (m Model) flashStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusFlashMsg{text: text, isErr: isErr}
	}
}

// View renders the landing screen.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	hero := m.viewHero()

	var footer string
	if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	} else if m.cfg.TUI.ShowHelp {
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	if m.statusMsg != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusError
		}
		footer = style.Render(m.statusMsg)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, hero, "", footer)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		body,
	)
}

// viewHero renders the headline with the rotating word, the subheadline
// and the chat bubble conversation.
func (m Model) viewHero() string {
	word := m.cycler.Current()

	// Two-frame entrance for each new word, imitating the fade-and-rise
	// of the original page.
	wordStyle := m.styles.RotatingWord
	if m.wordFrame == 0 {
		wordStyle = m.styles.Subheadline
	}

	headline := m.styles.Headline.Render(m.deck.Headline+" ") + wordStyle.Render(word)
	sub := m.styles.Subheadline.Render(m.deck.Subheadline)

	parts := []string{headline, sub}

	if m.cfg.TUI.ShowBubbles && len(m.deck.Bubbles) > 0 {
		parts = append(parts, "", m.viewBubbles())
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewBubbles renders the revealed portion of the conversation, visitor
// messages on the left and replies on the right, with a typing indicator
// while messages are still arriving.
func (m Model) viewBubbles() string {
	width := min(m.width-4, 48)
	if width < 16 {
		width = 16
	}

	var rows []string
	for i, b := range m.deck.Bubbles {
		if i >= m.revealed {
			break
		}

		if b.From == "angel" {
			rendered := m.styles.Reply.Render(b.Text)
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Right, rendered))
		} else {
			rendered := m.styles.Bubble.Render(b.Text)
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Left, rendered))
		}
	}

	if m.revealed < len(m.deck.Bubbles) {
		rows = append(rows, m.typing.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RunOptions configures the landing screen.
type RunOptions struct {
	Config     *config.Config
	Deck       content.Deck
	Controller *prefs.Controller
	Journal    *journal.Journal
	PrefsPath  string // Path to watch for external changes (empty = no watching)
}

// Run starts the landing screen with the given options.
func Run(opts RunOptions) error {
	words := opts.Config.Hero.Words
	if len(words) == 0 {
		words = opts.Deck.Words
	}

	c, err := cycler.New(words, opts.Config.Hero.Interval.Duration())
	if err != nil {
		return fmt.Errorf("hero configuration: %w", err)
	}

	// Follow `angelui theme set` from other terminals while running.
	var watcher *prefs.FileWatcher
	if opts.PrefsPath != "" {
		watcher, err = prefs.NewFileWatcher(opts.Controller, opts.PrefsPath)
		if err != nil {
			slog.Warn("failed to create prefs watcher", "error", err)
		} else if err := watcher.Start(); err != nil {
			slog.Warn("failed to start prefs watcher", "error", err)
			watcher.Stop()
			watcher = nil
		}
	}
	defer func() {
		if watcher != nil {
			watcher.Stop()
		}
	}()

	m := New(opts.Config, opts.Deck, c, opts.Controller, opts.Journal)
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
