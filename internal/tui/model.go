// Package tui implements the interactive demo browser: a list of the
// worked examples that runs the selected one and shows its captured
// output alongside.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmercier/srplab/internal/config"
	"github.com/dmercier/srplab/internal/demo"
	"github.com/dmercier/srplab/internal/logging"
	"github.com/dmercier/srplab/internal/ui"
)

// entry is one runnable demo in the browser list.
type entry struct {
	title string
	desc  string
	run   func(ctx context.Context, d *demo.Demos) error
}

// demoDoneMsg carries the captured output of a finished demo run.
type demoDoneMsg struct {
	output string
	err    error
}

type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
	desc     lipgloss.Style
	output   lipgloss.Style
	errText  lipgloss.Style
}

func newStyles(theme ui.TUITheme) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		item:     lipgloss.NewStyle().Foreground(theme.Text),
		desc:     lipgloss.NewStyle().Foreground(theme.Dim),
		output: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		errText: lipgloss.NewStyle().Foreground(theme.Error),
	}
}

// Model is the bubbletea model for the demo browser.
type Model struct {
	cfg    config.Config
	logger logging.Logger

	entries []entry
	cursor  int
	output  string
	err     error
	running bool

	keys   keyMap
	help   help.Model
	styles styles
}

// NewModel creates the browser over the standard demo list.
func NewModel(cfg config.Config, logger logging.Logger) Model {
	return Model{
		cfg:    cfg,
		logger: logger,
		entries: []entry{
			{
				title: "Monolithic user",
				desc:  "one struct that saves, validates, and formats",
				run: func(ctx context.Context, d *demo.Demos) error {
					return d.RunMonolith(ctx)
				},
			},
			{
				title: "User service",
				desc:  "validator, repository, and presenter behind a thin orchestrator",
				run: func(ctx context.Context, d *demo.Demos) error {
					return d.RunUser(ctx)
				},
			},
			{
				title: "Invoice pipeline",
				desc:  "calculate, render, send",
				run: func(ctx context.Context, d *demo.Demos) error {
					return d.RunInvoice(ctx)
				},
			},
			{
				title: "Kitchen shift",
				desc:  "three workers, one manager, fixed order",
				run: func(ctx context.Context, d *demo.Demos) error {
					return d.RunKitchen(ctx)
				},
			},
		},
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(ui.GetCurrentTUITheme()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// runSelected executes the highlighted demo, capturing its output.
func (m Model) runSelected() tea.Cmd {
	selected := m.entries[m.cursor]
	cfg := m.cfg
	logger := m.logger
	return func() tea.Msg {
		var buf bytes.Buffer
		d := demo.NewDemos(cfg, &buf, logger,
			demo.WithSpinner(func() demo.Spinner { return demo.NopSpinner }))
		err := selected.run(context.Background(), d)
		return demoDoneMsg{output: buf.String(), err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Run):
			if !m.running {
				m.running = true
				return m, m.runSelected()
			}
		}

	case demoDoneMsg:
		m.running = false
		m.output = msg.output
		m.err = msg.err

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("srplab demos"))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		style := m.styles.item
		if i == m.cursor {
			cursor = "> "
			style = m.styles.selected
		}
		fmt.Fprintf(&b, "%s%s  %s\n",
			cursor, style.Render(e.title), m.styles.desc.Render(e.desc))
	}

	if m.running {
		b.WriteString("\n" + m.styles.desc.Render("running..."))
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.errText.Render("error: "+m.err.Error()) + "\n")
	}
	if m.output != "" {
		b.WriteString("\n" + m.styles.output.Render(strings.TrimRight(m.output, "\n")) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// Run starts the demo browser and blocks until it exits.
//
// Parameters:
//   - ctx: The context bounding the program's lifetime.
//   - cfg: The resolved application configuration.
//   - logger: The logger shared with the demos.
//
// Returns:
//   - error: Any terminal-driver error from the underlying program.
func Run(ctx context.Context, cfg config.Config, logger logging.Logger) error {
	p := tea.NewProgram(NewModel(cfg, logger), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
