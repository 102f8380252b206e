// Package tui provides an interactive terminal UI for tokenization.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hiraoka/sudago/internal/clipboard"
	"github.com/hiraoka/sudago/tokenizer"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true)

	surfaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Bold(true)

	posStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	oovStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf"))
)

// Model is the bubbletea model for the interactive tokenizer.
type Model struct {
	tok       *tokenizer.Tokenizer
	mode      tokenizer.Mode
	input     textinput.Model
	morphemes []tokenizer.Morpheme
	analyzed  string
	status    string
	err       error
}

// New creates the interactive model around an already-constructed Tokenizer.
func New(tok *tokenizer.Tokenizer, mode tokenizer.Mode) Model {
	input := textinput.New()
	input.Placeholder = "Enter Japanese text..."
	input.Focus()
	input.CharLimit = 512

	return Model{
		tok:   tok,
		mode:  mode,
		input: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.mode = nextMode(m.mode)
			if m.analyzed != "" {
				m.analyze(m.analyzed)
			}
			return m, nil

		case "ctrl+y":
			if len(m.morphemes) > 0 && clipboard.Available() {
				if data, err := json.MarshalIndent(m.morphemes, "", "  "); err == nil {
					if err := clipboard.Write(string(data)); err == nil {
						m.status = "copied JSON to clipboard"
					}
				}
			}
			return m, nil

		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.analyze(text)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) analyze(text string) {
	m.status = ""
	m.analyzed = text
	morphemes, err := m.tok.Tokenize(text, m.mode)
	if err != nil {
		m.err = err
		m.morphemes = nil
		return
	}
	m.err = nil
	m.morphemes = morphemes
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sudago"))
	b.WriteString("  ")
	b.WriteString(modeStyle.Render("mode " + m.mode.String()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.analyzed != "":
		b.WriteString(boxStyle.Render(m.renderTable()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter analyze • tab switch mode • ctrl+y copy json • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTable() string {
	headers := []string{"surface", "pos", "base", "reading", "span"}
	rows := make([][]string, 0, len(m.morphemes))
	for _, mo := range m.morphemes {
		rows = append(rows, []string{
			mo.Surface,
			strings.Join(mo.PartOfSpeech, "・"),
			mo.DictionaryForm,
			mo.ReadingForm,
			fmt.Sprintf("[%d,%d)", mo.Begin, mo.End),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(runewidth.FillRight(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for ri, row := range rows {
		for ci, cell := range row {
			padded := runewidth.FillRight(cell, widths[ci])
			switch {
			case ci == 0 && m.morphemes[ri].IsOOV:
				padded = oovStyle.Render(padded)
			case ci == 0:
				padded = surfaceStyle.Render(padded)
			case ci == 1:
				padded = posStyle.Render(padded)
			}
			b.WriteString(padded)
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func nextMode(m tokenizer.Mode) tokenizer.Mode {
	switch m {
	case tokenizer.ModeShort:
		return tokenizer.ModeMiddle
	case tokenizer.ModeMiddle:
		return tokenizer.ModeLong
	default:
		return tokenizer.ModeShort
	}
}

// Run starts the interactive UI and blocks until the user quits.
func Run(tok *tokenizer.Tokenizer, mode tokenizer.Mode) error {
	_, err := tea.NewProgram(New(tok, mode)).Run()
	return err
}
