package lineedit

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	moreStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true)
)

// Editor reads lines through a short-lived Bubble Tea program per prompt.
type Editor struct {
	in        io.Reader
	out       io.Writer
	completer Completer
	cfg       Config
}

// NewEditor returns an interactive editor reading keys from in.
func NewEditor(in io.Reader, out io.Writer, completer Completer, cfg Config) *Editor {
	return &Editor{in: in, out: out, completer: completer, cfg: cfg}
}

// ReadLine implements Reader.
func (e *Editor) ReadLine(ctx context.Context, prompt string) (string, error) {
	m := newLineModel(prompt, e.completer, e.cfg)
	m.width = TerminalWidth(e.out)
	program := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(e.in),
		tea.WithOutput(e.out),
		tea.WithoutSignalHandler(),
	)
	final, err := program.Run()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("line editor failed: %w", err)
	}
	result, ok := final.(*lineModel)
	if !ok {
		return "", fmt.Errorf("line editor returned %T", final)
	}
	if result.interrupted {
		return "", ErrInterrupted
	}
	return result.input.Value(), nil
}

type lineModel struct {
	input     textinput.Model
	completer Completer
	cfg       Config
	width     int

	// lastTab is the buffer at the previous Tab that made no progress.
	lastTab    string
	hasLastTab bool
	listing    []string

	done        bool
	interrupted bool
}

func newLineModel(prompt string, completer Completer, cfg Config) *lineModel {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()
	return &lineModel{input: input, completer: completer, cfg: cfg}
}

// Init implements tea.Model.
func (m *lineModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.interrupted = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyEnter:
			m.done = true
			m.listing = nil
			return m, tea.Quit
		case tea.KeyTab:
			m.complete()
			return m, nil
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.listing = nil
		m.hasLastTab = false
	}
	return m, cmd
}

// View implements tea.Model.
func (m *lineModel) View() string {
	if m.done || m.interrupted {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	view := m.input.View()
	if len(m.listing) == 0 {
		return view
	}
	return view + "\n" + strings.Join(m.listing, "\n")
}

// complete applies the completer to the token under the cursor. A Tab that
// cannot extend the token shows nothing; a second one lists the alternatives.
func (m *lineModel) complete() {
	if m.completer == nil {
		return
	}
	buffer := m.input.Value()
	head, token := SplitToken(buffer, m.cfg.Delimiters)

	completion, ok := m.completer.Complete(token, 0)
	if ok && head+completion != buffer {
		m.input.SetValue(head + completion)
		m.input.CursorEnd()
		m.listing = nil
		m.hasLastTab = false
		return
	}

	if m.hasLastTab && m.lastTab == buffer {
		m.listing = m.renderAlternatives(token)
		return
	}
	m.lastTab = buffer
	m.hasLastTab = true
}

func (m *lineModel) renderAlternatives(token string) []string {
	matches := m.completer.Matches(token)
	if len(matches) < 2 {
		return nil
	}
	shown, more := truncateList(matches, m.cfg.listLimit())
	lines := layoutColumns(shown, m.width)
	for i, line := range lines {
		lines[i] = candidateStyle.Render(line)
	}
	if more != "" {
		lines = append(lines, moreStyle.Render(more))
	}
	return lines
}
