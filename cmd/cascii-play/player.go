package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg paces automatic frame advancement. The tag invalidates ticks that
// were already in flight when the user paused or changed the frame rate.
type tickMsg struct {
	tag int
}

// playerModel is the single owner of the frame sequence and playback state.
type playerModel struct {
	frames   []frame
	state    playbackState
	hasColor bool
	fallback rgb

	width  int
	height int
	tag    int
}

func newPlayerModel(frames []frame, fps int, loop bool, fallback rgb) playerModel {
	return playerModel{
		frames:   frames,
		state:    newPlaybackState(len(frames), fps, loop),
		hasColor: anyColor(frames),
		fallback: fallback,
	}
}

func (m playerModel) Init() tea.Cmd {
	return m.scheduleTick()
}

// scheduleTick arms the next advance at the current 1/fps interval, or
// nothing at all while paused: a paused player blocks on input alone.
func (m playerModel) scheduleTick() tea.Cmd {
	if !m.state.playing {
		return nil
	}
	tag := m.tag
	return tea.Tick(m.state.interval(), func(time.Time) tea.Msg {
		return tickMsg{tag: tag}
	})
}

func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if msg.tag != m.tag {
			return m, nil
		}
		m.state = m.state.tick()
		return m, m.scheduleTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m playerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "space":
		m.state = m.state.togglePlaying()
		m.tag++ // restart pacing from now
		return m, m.scheduleTick()
	case "right":
		m.state = m.state.stepForward()
	case "left":
		m.state = m.state.stepBackward()
	case "home":
		m.state = m.state.seekStart()
	case "end":
		m.state = m.state.seekEnd()
	case "+", "=":
		m.state = m.state.fasterFPS()
		m.tag++
		return m, m.scheduleTick()
	case "-", "_":
		m.state = m.state.slowerFPS()
		m.tag++
		return m, m.scheduleTick()
	case "l":
		wasPlaying := m.state.playing
		m.state = m.state.toggleLoop()
		if wasPlaying && !m.state.playing {
			m.tag++ // cancel the armed tick, we just parked on the last frame
		}
	}
	return m, nil
}

func (m playerModel) View() string {
	if len(m.frames) == 0 {
		return ""
	}
	return renderScreen(m.frames[m.state.index], m.state, m.width, m.height, m.fallback, m.hasColor)
}
