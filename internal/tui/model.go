// Package tui is a terminal keypad for the calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.design/x/clipboard"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/config"
	"github.com/zephyrtronium/deskcalc/internal/logger"
)

// Options configures a keypad.
type Options struct {
	// Prec is the precision in bits for ^ and √, or 0 for float64 math.
	Prec  uint
	Theme config.Theme
	// Mouse enables pressing buttons by clicking them.
	Mouse bool
	// Logger receives a line per key press. Nil uses the global logger.
	Logger *logger.Logger
}

// Model is the bubbletea model of the keypad. It owns the only accumulator;
// bubbletea delivers messages to Update one at a time.
type Model struct {
	acc    deskcalc.Accumulator
	focus  int
	keys   keyMap
	help   help.Model
	styles styles
	mouse  bool
	// status is a transient message, e.g. after copying.
	status string
	log    *logger.Logger
}

// copiedMsg reports the result of copying the display to the clipboard.
type copiedMsg struct {
	text string
	err  error
}

// New creates a keypad with an empty display.
func New(opts Options) Model {
	l := opts.Logger
	if l == nil {
		l = logger.Global()
	}
	return Model{
		acc:    deskcalc.Accumulator{}.WithPrec(opts.Prec),
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(opts.Theme),
		mouse:  opts.Mouse,
		log:    l.WithPrefix("keypad"),
	}
}

// Run runs a keypad on the terminal until the user quits.
func Run(opts Options) error {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(New(opts), popts...).Run(); err != nil {
		return fmt.Errorf("running keypad: %w", err)
	}
	return nil
}

// Accumulator returns the keypad's current input state.
func (m Model) Accumulator() deskcalc.Accumulator {
	return m.acc
}

// Focus returns the label of the focused button.
func (m Model) Focus() string {
	return deskcalc.Keypad[m.focus]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.buttonAt(msg.X, msg.Y); ok {
			m.focus = i
			return m.press(deskcalc.Keypad[i]), nil
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("copy failed: %v", msg.err)
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied " + msg.text
		}
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-deskcalc.KeypadColumns)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(deskcalc.KeypadColumns)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Press):
		return m.press(deskcalc.Keypad[m.focus]), nil
	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboard(m.acc.Display())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		if ev, ok := deskcalc.ParseKey(msg.String()); ok {
			return m.apply(ev), nil
		}
	}
	return m, nil
}

// moveFocus moves the focus by d buttons, staying inside the keypad.
func (m *Model) moveFocus(d int) {
	f := m.focus + d
	if f < 0 || f >= len(deskcalc.Keypad) {
		return
	}
	// Left and right stop at the row edges.
	if (d == 1 || d == -1) && f/deskcalc.KeypadColumns != m.focus/deskcalc.KeypadColumns {
		return
	}
	m.focus = f
}

// press applies a keypad button by label.
func (m Model) press(label string) Model {
	ev, err := deskcalc.ParseButton(label)
	if err != nil {
		// Keypad labels always parse.
		panic(err)
	}
	return m.apply(ev)
}

func (m Model) apply(ev deskcalc.Event) Model {
	prev := m.acc
	m.acc = m.acc.Apply(ev)
	m.status = ""
	m.log.Debug("%s: %q -> %q", ev, prev.Display(), m.acc.Display())
	if err := m.acc.Err(); err != nil && prev.Err() == nil {
		m.log.Warn("%q: %v", prev.Expression(), err)
	}
	return m
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.Init(); err != nil {
			return copiedMsg{text: text, err: err}
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
		return copiedMsg{text: text}
	}
}

// KeypadWidth is the width in cells of the rendered keypad.
func KeypadWidth() int {
	return deskcalc.KeypadColumns * (buttonWidth + 2 + buttonGap)
}

// buttonAt returns the index of the button drawn at cell (x, y).
func (m Model) buttonAt(x, y int) (int, bool) {
	top := lipgloss.Height(m.renderDisplay())
	b := m.renderButton(0)
	w, h := lipgloss.Width(b), lipgloss.Height(b)
	if x < 0 || y < top || x%w >= w-buttonGap {
		return 0, false
	}
	col, row := x/w, (y-top)/h
	if col >= deskcalc.KeypadColumns {
		return 0, false
	}
	i := row*deskcalc.KeypadColumns + col
	if i >= len(deskcalc.Keypad) {
		return 0, false
	}
	return i, true
}

func (m Model) renderDisplay() string {
	text := m.acc.Display()
	// Keep the end of long expressions visible.
	room := KeypadWidth() - buttonGap - 2
	if r := []rune(text); len(r) > room {
		text = "…" + string(r[len(r)-room+1:])
	}
	if text == "" {
		text = " "
	}
	s := m.styles.display
	if m.acc.Err() != nil {
		s = s.Foreground(m.styles.errText.GetForeground())
	}
	return s.Render(text)
}

func (m Model) renderButton(i int) string {
	label := deskcalc.Keypad[i]
	s := m.styles.button
	switch {
	case i == m.focus:
		s = m.styles.focused
	case strings.Contains("C√%/*-+=^", label):
		s = m.styles.operator
	}
	return s.Render(label)
}

func (m Model) View() string {
	var rows []string
	rows = append(rows, m.renderDisplay())
	for r := 0; r < len(deskcalc.Keypad); r += deskcalc.KeypadColumns {
		btns := make([]string, 0, deskcalc.KeypadColumns)
		for i := r; i < r+deskcalc.KeypadColumns; i++ {
			btns = append(btns, m.renderButton(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, btns...))
	}
	switch {
	case m.acc.Err() != nil:
		rows = append(rows, m.styles.errText.Render(wordwrap.String(m.acc.Err().Error(), KeypadWidth())))
	case m.status != "":
		rows = append(rows, m.styles.status.Render(wordwrap.String(m.status, KeypadWidth())))
	default:
		rows = append(rows, "")
	}
	rows = append(rows, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}
