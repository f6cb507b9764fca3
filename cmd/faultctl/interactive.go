package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fsfault/errcode"
	"github.com/wippyai/fsfault/fault"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errnoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type pane int

const (
	paneTable pane = iota
	paneOps
	paneErrors
	paneCount
)

var paneNames = [paneCount]string{"Table", "Operations", "Errors"}

type interactiveModel struct {
	eng        *fault.Engine
	configFile string
	input      textinput.Model
	pane       pane
	status     string
	statusErr  bool
	width      int
}

func newInteractiveModel(configFile string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "FaultInject filesystem ENOSPC write mkdir"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	eng := fault.NewEngine()
	eng.Init()

	return &interactiveModel{
		eng:        eng,
		configFile: configFile,
		input:      ti,
	}
}

type loadedMsg struct {
	err error
}

func (m *interactiveModel) Init() tea.Cmd {
	if m.configFile == "" {
		return nil
	}
	return m.loadConfig
}

func (m *interactiveModel) loadConfig() tea.Msg {
	return loadedMsg{err: loadDirectives(m.eng, m.configFile)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.pane = (m.pane + 1) % paneCount
			return m, nil

		case "ctrl+r":
			m.eng.Reload()
			m.status = "configuration reset"
			m.statusErr = false
			return m, nil

		case "enter":
			m.applyLine(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("loaded %s", m.configFile)
			m.statusErr = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) applyLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if err := m.eng.Apply(fields[0], fields[1:]); err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("applied %s", fields[0])
	m.statusErr = false
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("faultctl"))
	if m.configFile != "" {
		b.WriteString(" ")
		b.WriteString(m.configFile)
	}
	b.WriteString("\n\n")

	for p := pane(0); p < paneCount; p++ {
		if p == m.pane {
			b.WriteString(activeTabStyle.Render(paneNames[p]))
		} else {
			b.WriteString(tabStyle.Render(" " + paneNames[p] + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	switch m.pane {
	case paneTable:
		b.WriteString(m.viewTable())
	case paneOps:
		b.WriteString(m.viewOps())
	case paneErrors:
		b.WriteString(m.viewErrors())
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(okStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("type a directive • enter apply • tab switch pane • ctrl+r reset • esc quit"))
	return b.String()
}

func (m *interactiveModel) viewTable() string {
	var b strings.Builder
	cfg := m.eng.Config()
	b.WriteString(headingStyle.Render(fmt.Sprintf("Engine: %s", onOff(cfg.Enabled()))))
	b.WriteString("\n")

	entries := cfg.Table().Snapshot()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Op < entries[j].Op })
	if len(entries) == 0 {
		b.WriteString("  (no fault entries)\n")
	}
	for _, e := range entries {
		name, _ := errcode.Name(e.Code)
		b.WriteString(fmt.Sprintf("  %s: %s (%d) [%s]\n",
			nameStyle.Render(string(e.Op)),
			errnoStyle.Render(name), int(e.Code), errcode.Describe(e.Code)))
	}
	return b.String()
}

func (m *interactiveModel) viewOps() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Interceptable operations:"))
	b.WriteString("\n")
	ops := fault.Ops()
	for i := 0; i < len(ops); i += 4 {
		b.WriteString(" ")
		for j := i; j < i+4 && j < len(ops); j++ {
			b.WriteString(fmt.Sprintf(" %-10s", nameStyle.Render(string(ops[j]))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *interactiveModel) viewErrors() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Error catalog:"))
	b.WriteString("\n")
	for _, code := range errcode.Codes() {
		name, _ := errcode.Name(code)
		b.WriteString(fmt.Sprintf("  %s (%d) [%s]\n",
			errnoStyle.Render(name), int(code), errcode.Describe(code)))
	}
	return b.String()
}

func runInteractive(configFile string) error {
	p := tea.NewProgram(newInteractiveModel(configFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
