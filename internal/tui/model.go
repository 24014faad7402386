package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/temirov/tally/internal/accumulator"
	"github.com/temirov/tally/internal/keypad"
)

const (
	displayWidthConstant       = 24
	statusSeparatorConstant    = " · "
	helpTextConstant           = "enter =   esc clear   n ±   q quit"
	keypadRowSeparatorConstant = "\n"
	lastKeyPrefixConstant      = "last "
)

var keypadRows = [][]string{
	{"C", "±", "/", "*"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", "="},
	{"0", "."},
}

// Model is the bubbletea model of the keypad.
type Model struct {
	session  *accumulator.Session
	styles   Styles
	lastKey  string
	quitting bool
}

// NewModel creates a keypad model driving the given session.
func NewModel(session *accumulator.Session, styles Styles) Model {
	if session == nil {
		session = accumulator.NewSession(accumulator.DefaultOptions(), nil)
	}
	return Model{session: session, styles: styles}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.press(accumulator.EqualsEvent()), nil
	case tea.KeyEsc, tea.KeyDelete:
		return m.press(accumulator.ClearEvent()), nil
	case tea.KeyRunes:
		if len(keyMsg.Runes) != 1 {
			return m, nil
		}
		character := keyMsg.Runes[0]
		if character == 'q' || character == 'Q' {
			m.quitting = true
			return m, tea.Quit
		}
		event, known := keypad.KeyForRune(character)
		if !known {
			return m, nil
		}
		return m.press(event), nil
	}

	return m, nil
}

func (m Model) press(event accumulator.Event) Model {
	m.session.Press(event)
	m.lastKey = keypad.Label(event)
	return m
}

// Display returns the text currently shown on the calculator display.
func (m Model) Display() string {
	return m.session.Display()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	displayStyle := m.styles.Display
	if m.session.State().Phase() == accumulator.PhaseError {
		displayStyle = m.styles.Error
	}
	display := displayStyle.Width(displayWidthConstant).Render(m.session.Display())

	statusParts := []string{string(m.session.State().Phase())}
	if pendingOperator := m.session.State().Operator; pendingOperator != accumulator.OperatorNone {
		statusParts = append(statusParts, pendingOperator.String())
	}
	if len(m.lastKey) > 0 {
		statusParts = append(statusParts, lastKeyPrefixConstant+m.lastKey)
	}
	status := m.styles.Status.Render(strings.Join(statusParts, statusSeparatorConstant))

	renderedRows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		renderedKeys := make([]string, 0, len(row))
		for _, label := range row {
			renderedKeys = append(renderedKeys, m.styles.Key.Render(label))
		}
		renderedRows = append(renderedRows, lipgloss.JoinHorizontal(lipgloss.Top, renderedKeys...))
	}
	keys := strings.Join(renderedRows, keypadRowSeparatorConstant)

	body := lipgloss.JoinVertical(lipgloss.Left, display, status, "", keys)
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Frame.Render(body), m.styles.Help.Render(helpTextConstant))
}
