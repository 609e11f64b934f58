package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/overlayd/cereal"
	"pfeifer.dev/overlayd/cereal/log"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
)

const POLL_INTERVAL = 50 * time.Millisecond

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Faint(true).MarginLeft(2)
)

type TickMsg time.Time

func pollOutput() tea.Cmd {
	return tea.Every(POLL_INTERVAL, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type menuEntry struct {
	name, summary string
	target        mainState
}

func (e menuEntry) Title() string       { return e.name }
func (e menuEntry) Description() string { return e.summary }
func (e menuEntry) FilterValue() string { return e.name }

var menuEntries = []list.Item{
	menuEntry{name: "Settings", summary: "Change the settings of a running overlayd", target: showSettings},
	menuEntry{name: "Watch", summary: "Follow the overlay geometry overlayd publishes", target: showOutput},
}

type uiModel struct {
	menu     list.Model
	state    mainState
	now      time.Time
	settings settingsModel
	output   outputModel
	pub      *cereal.Publisher[log.OverlayIn]
	sub      *cereal.Subscriber[log.OverlayOut]
}

func initialModel() uiModel {
	pub := cereal.NewPublisher("overlayIn", cereal.OverlayInCreator)
	sub := cereal.NewSubscriber("overlayOut", cereal.OverlayOutReader, true)

	menu := list.New(menuEntries, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Overlayd"
	return uiModel{
		menu:     menu,
		now:      time.Now(),
		settings: getSettingsModel(),
		pub:      &pub,
		sub:      &sub,
	}
}

func (m uiModel) Init() tea.Cmd {
	return pollOutput()
}

// handleKey deals with the keys the menu owns. It reports false when the key
// should fall through to the active view.
func (m *uiModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case msg.String() == "ctrl+c":
		return tea.Quit, true
	case msg.Type == tea.KeyEsc && m.state == showOutput:
		m.state = showMenu
		return nil, true
	case msg.Type == tea.KeyEnter && m.state == showMenu && m.menu.FilterState() != list.Filtering:
		if entry, ok := m.menu.SelectedItem().(menuEntry); ok {
			m.state = entry.target
		}
		return nil, true
	}
	return nil, false
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.menu.SetSize(msg.Width-h, msg.Height-v-1)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.now = time.Time(msg)
		m.output = m.output.poll(&m, m.now)
		return m, pollOutput()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showMenu:
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View(m.now)
	}
	return docStyle.Render(m.menu.View()) + "\n" + statusStyle.Render(m.output.status(m.now))
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "interactive session failed: %v\n", err)
		os.Exit(1)
	}
}
