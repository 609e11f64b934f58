package cli

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pfeifer.dev/overlayd/cereal/log"
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsCommand
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType log.OverlayInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func settingsItems() []settingsItem {
	return []settingsItem{
		{
			title:       "Tablet Profile",
			desc:        "Use the larger lock-on boxes sized for tablet displays",
			MessageType: log.OverlayInputType_setTabletProfile,
			Type:        Bool,
			state:       settingsInput,
		},
		{
			title:       "Allow Path Inversion",
			desc:        "Let the driving path fold over hill crests instead of trimming it",
			MessageType: log.OverlayInputType_setPathAllowInvert,
			Type:        Bool,
			state:       settingsInput,
		},
		{
			title:       "Lock-On Minimum Probability",
			desc:        "Lead candidates at or below this probability get no lock-on box",
			MessageType: log.OverlayInputType_setLockOnMinProb,
			Type:        Float,
			state:       settingsInput,
		},
		{
			title:       "Lock-On Stale Reset Frames",
			desc:        "Forget a lock-on slot after this many frames without a lead. 0 keeps it frozen",
			MessageType: log.OverlayInputType_setLockOnStaleResetFrames,
			Type:        Int,
			state:       settingsInput,
		},
		{
			title:       "Wide Camera Available",
			desc:        "Whether the device has a wide road camera to switch to",
			MessageType: log.OverlayInputType_setWideCameraAvailable,
			Type:        Bool,
			state:       settingsInput,
		},
		{
			title:       "Wide Camera Only",
			desc:        "Always draw against the wide road camera",
			MessageType: log.OverlayInputType_setWideCameraOnly,
			Type:        Bool,
			state:       settingsInput,
		},
		{
			title:       "Stale Timeout",
			desc:        "Seconds without an update before an input stream counts as dead",
			MessageType: log.OverlayInputType_setStaleTimeout,
			Type:        Float,
			state:       settingsInput,
		},
		{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for overlayd",
			MessageType: log.OverlayInputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default value",
			MessageType: log.OverlayInputType_loadDefaultSettings,
			Type:        None,
			state:       settingsCommand,
		},
		{
			title:       "Reload Settings",
			desc:        "Discard unsaved changes and reload the persisted settings",
			MessageType: log.OverlayInputType_reloadSettings,
			Type:        None,
			state:       settingsCommand,
		},
		{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: log.OverlayInputType_saveSettings,
			Type:        None,
			state:       settingsCommand,
		},
	}
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state == settingsInput {
			m.state = showSettingsMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.err = nil
			switch it.state {
			case settingsExit:
				mm.state = showMenu
			case settingsInput:
				m.state = settingsInput
				m.prompt = fmt.Sprintf("%s (%s)", it.Title(), it.Type)
				m.textInput.Reset()
				m.textInput.Focus()
			case settingsCommand:
				m.err = sendInput(mm.pub, it.MessageType, None, "")
				if it.MessageType == log.OverlayInputType_saveSettings {
					mm.state = showMenu
				}
			}
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == settingsInput {
			m.err = sendInput(mm.pub, m.selectedItem.MessageType, m.selectedItem.Type, m.textInput.Value())
			if m.err != nil {
				slog.Debug("rejected setting", "setting", m.selectedItem.Title(), "error", m.err)
				return m, nil
			}
			m.state = showSettingsMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	if m.state == settingsInput {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	errLine := ""
	if m.err != nil {
		errLine = "\n\n" + errorStyle.Render(m.err.Error())
	}
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			errLine,
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View() + errLine)
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{}
	for _, it := range settingsItems() {
		items = append(items, it)
	}
	items = append(items, settingsItem{
		title: "Return to Main Menu",
		desc:  "Exit settings configuration and return to the initial actions menu",
		state: settingsExit,
	})

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Overlay Settings"
	return m
}
