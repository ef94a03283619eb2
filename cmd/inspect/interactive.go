package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	german "github.com/skiffdb/german-strings"
	"github.com/skiffdb/german-strings/column"
	"github.com/skiffdb/german-strings/dict"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxBrowseMatches caps how many matching values the browser keeps in
// memory; the total match count is still reported.
const maxBrowseMatches = 100

type inspectorModel struct {
	err      error
	d        *dict.Dict
	filename string
	matches  []matchInfo
	input    textinput.Model
	stats    dict.Stats
	slab     column.Footprint
	rows     int
	total    int
	selected int
	state    modelState
}

type matchInfo struct {
	handle dict.Handle
	value  german.String
}

type modelState int

const (
	stateBrowse modelState = iota
	stateDetail
)

func newInspectorModel(filename string) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "prefix"
	ti.Prompt = "search: "
	ti.Width = 40
	ti.Focus()

	return &inspectorModel{
		filename: filename,
		input:    ti,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err   error
	d     *dict.Dict
	stats dict.Stats
	slab  column.Footprint
	rows  int
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.load
}

func (m *inspectorModel) load() tea.Msg {
	d := dict.New()
	c := column.New()

	rows, err := loadCorpus(m.filename, d, c)
	if err != nil {
		return loadedMsg{err: err}
	}

	return loadedMsg{d: d, stats: d.Stats(), slab: c.Footprint(), rows: rows}
}

// refresh recomputes the match list for the current query. The first
// maxBrowseMatches matching values are kept in handle order.
func (m *inspectorModel) refresh() {
	m.matches = m.matches[:0]
	m.total = 0

	m.d.PrefixScan([]byte(m.input.Value()), func(h dict.Handle, v *german.String) bool {
		if m.total < maxBrowseMatches {
			m.matches = append(m.matches, matchInfo{handle: h, value: *v})
		}
		m.total++
		return true
	})

	if m.selected >= len(m.matches) {
		m.selected = 0
	}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.matches)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.state == stateBrowse && len(m.matches) > 0 {
				m.state = stateDetail
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateBrowse:
				if m.input.Value() == "" {
					return m, tea.Quit
				}
				m.input.SetValue("")
				m.refresh()
			case stateDetail:
				m.state = stateBrowse
			}
			return m, nil

		case "q":
			if m.state == stateDetail {
				return m, tea.Quit
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.d = msg.d
		m.stats = msg.stats
		m.slab = msg.slab
		m.rows = msg.rows
		m.refresh()
		return m, nil
	}

	if m.state == stateBrowse && m.d != nil {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.refresh()
		}
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}

	if m.d == nil {
		return "Loading corpus..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("String Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(fmt.Sprintf("%d rows, %d distinct (%d short, %d long), slab %d bytes\n\n",
			m.rows, m.stats.Entries, m.stats.Short, m.stats.Long, m.slab.SlabBytes))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")

		for i, mi := range m.matches {
			cursor := "  "
			line := m.formatMatch(mi)
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + line))
			} else {
				b.WriteString(cursor + line)
			}
			b.WriteString("\n")
		}
		if m.total > len(m.matches) {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more\n", m.total-len(m.matches))))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • esc clear • ctrl+c quit"))

	case stateDetail:
		mi := m.matches[m.selected]
		v := &mi.value
		b.WriteString(fmt.Sprintf("Handle %s\n\n", valueStyle.Render(fmt.Sprintf("%d", mi.handle))))
		b.WriteString("  content    ")
		b.WriteString(resultStyle.Render(truncate(fmt.Sprintf("%q", v.String()), 70)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  length     %d bytes\n", v.Len()))
		if v.IsShort() {
			b.WriteString("  class      short (content inlined in the 16-byte value)\n")
			b.WriteString("  layout     [0:4) length • [4:16) inline content\n")
		} else {
			pr := v.Prefix()
			b.WriteString("  class      long (content referenced, first 4 bytes cached)\n")
			b.WriteString(fmt.Sprintf("  prefix     %s (% x)\n", metaStyle.Render(fmt.Sprintf("%q", pr[:])), pr[:]))
			b.WriteString("  layout     [0:4) length • [4:8) prefix • [8:16) reference\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func (m *inspectorModel) formatMatch(mi matchInfo) string {
	class := "short"
	if mi.value.IsLong() {
		class = "long "
	}
	content := truncate(fmt.Sprintf("%q", mi.value.String()), 56)
	return fmt.Sprintf("%s %s %s",
		metaStyle.Render(fmt.Sprintf("%-6d", mi.handle)),
		metaStyle.Render(fmt.Sprintf("%s len=%-5d", class, mi.value.Len())),
		valueStyle.Render(content))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-4] + `..."`
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInspectorModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
