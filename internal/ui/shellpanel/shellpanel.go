// Package shellpanel renders the integrated shell: scrollback output on
// top, a command input at the bottom.
package shellpanel

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"justcode/internal/pubsub"
	"justcode/internal/ui/styles"
)

// maxScrollback caps retained output lines; maxHistory caps recalled commands.
const (
	maxScrollback = 1000
	maxHistory    = 100
)

// Runner executes a command line. Satisfied by *shell.Shell.
type Runner interface {
	Run(command string) error
}

type line struct {
	text   string
	stderr bool
	prompt bool
}

// Model holds the shell panel state.
type Model struct {
	runner  Runner
	lines   []line
	input   textinput.Model
	width   int
	height  int
	focused bool
	exited  bool

	history []string
	// histIdx is the recall position; len(history) means "not recalling".
	histIdx int
}

// New creates a shell panel backed by runner.
func New(runner Runner) Model {
	input := textinput.New()
	input.Prompt = "$ "
	input.Placeholder = "command"
	return Model{runner: runner, input: input}
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-4, 1)
}

// Focus directs key input to the command line.
func (m *Model) Focus() {
	m.focused = true
	m.input.Focus()
}

// Blur stops key handling.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the panel has focus.
func (m *Model) Focused() bool {
	return m.focused
}

// Update handles key input and shell output events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pubsub.Event[string]:
		m.append(msg)
		return m, nil

	case tea.KeyMsg:
		if !m.focused || m.exited {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		case tea.KeyCtrlL:
			m.Clear()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// recall steps through command history into the input line.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	idx := m.histIdx + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.history) {
		m.histIdx = len(m.history)
		m.input.SetValue("")
		return
	}
	m.histIdx = idx
	m.input.SetValue(m.history[idx])
	m.input.CursorEnd()
}

func (m Model) submit() (Model, tea.Cmd) {
	command := strings.TrimSpace(m.input.Value())
	if command == "" {
		return m, nil
	}
	m.pushLine(line{text: "$ " + command, prompt: true})
	if err := m.runner.Run(command); err != nil {
		m.pushLine(line{text: err.Error(), stderr: true})
	}

	if len(m.history) == 0 || m.history[len(m.history)-1] != command {
		m.history = append(m.history, command)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.histIdx = len(m.history)

	m.input.SetValue("")
	return m, nil
}

// Clear drops the scrollback.
func (m *Model) Clear() {
	m.lines = nil
}

// Reset re-enables input after the shell was restarted.
func (m *Model) Reset() {
	m.exited = false
	m.lines = nil
}

func (m *Model) append(event pubsub.Event[string]) {
	switch event.Type {
	case pubsub.ShellStdoutEvent:
		m.pushLine(line{text: event.Payload})
	case pubsub.ShellStderrEvent:
		m.pushLine(line{text: event.Payload, stderr: true})
	case pubsub.ShellExitedEvent:
		m.pushLine(line{text: "[shell " + event.Payload + "]", stderr: true})
		m.exited = true
	}
}

func (m *Model) pushLine(l line) {
	m.lines = append(m.lines, l)
	if len(m.lines) > maxScrollback {
		m.lines = m.lines[len(m.lines)-maxScrollback:]
	}
}

// Exited reports whether the underlying shell has terminated.
func (m *Model) Exited() bool {
	return m.exited
}

// View renders the scrollback tail above the input line.
func (m *Model) View() string {
	if m.height <= 0 {
		return ""
	}

	promptStyle := lipgloss.NewStyle().Foreground(styles.ShellPromptColor)
	stderrStyle := lipgloss.NewStyle().Foreground(styles.ShellStderrColor)

	outputHeight := max(m.height-1, 0)

	// Wrap, then keep only the tail that fits.
	var rendered []string
	for _, l := range m.lines {
		wrapped := l.text
		if m.width > 0 {
			wrapped = wordwrap.String(l.text, m.width)
		}
		for _, part := range strings.Split(wrapped, "\n") {
			switch {
			case l.prompt:
				rendered = append(rendered, promptStyle.Render(part))
			case l.stderr:
				rendered = append(rendered, stderrStyle.Render(part))
			default:
				rendered = append(rendered, part)
			}
		}
	}
	if len(rendered) > outputHeight {
		rendered = rendered[len(rendered)-outputHeight:]
	}
	for len(rendered) < outputHeight {
		rendered = append(rendered, "")
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(rendered, "\n"))
	if outputHeight > 0 {
		sb.WriteString("\n")
	}
	if m.exited {
		sb.WriteString(styles.TextMutedStyle.Render("shell exited"))
	} else {
		sb.WriteString(m.input.View())
	}
	return sb.String()
}
