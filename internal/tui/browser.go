// Package tui implements the interactive browser. It shows a spinner
// while a fetch is in flight and a scrollable list once records
// arrive. The fetch itself runs fire-and-forget; quitting the browser
// does not cancel it.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nextool/internal/tasks"
)

// Item is one browsable record.
type Item struct {
	Name   string
	Detail string
}

func (i Item) Title() string       { return i.Name }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Name }

// fetchedMsg carries the outcome of the background fetch.
type fetchedMsg tasks.Outcome[[]Item]

var (
	browserTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	browserErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	browserHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// browserModel is the bubbletea model for the record browser.
type browserModel struct {
	title    string
	spinner  spinner.Model
	list     list.Model
	outcome  <-chan tasks.Outcome[[]Item]
	loading  bool
	err      error
	quitting bool
	width    int
	height   int
}

func newBrowserModel(title string, fetch func() ([]Item, error)) browserModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.Title = title
	l.SetShowStatusBar(false)

	return browserModel{
		title:   title,
		spinner: sp,
		list:    l,
		outcome: tasks.Run(fetch),
		loading: true,
		width:   80,
		height:  24,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForFetch())
}

// waitForFetch blocks on the outcome channel off the update loop.
func (m browserModel) waitForFetch() tea.Cmd {
	return func() tea.Msg {
		return fetchedMsg(<-m.outcome)
	}
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case fetchedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		items := make([]list.Item, len(msg.Value))
		for i, item := range msg.Value {
			items[i] = item
		}
		return m, m.list.SetItems(items)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if !m.loading && m.err == nil {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return "\n  " + m.spinner.View() + " " + browserTitleStyle.Render("Loading "+m.title+"...") + "\n\n" +
			browserHelpStyle.Render("  q to quit")
	}
	if m.err != nil {
		return "\n  " + browserErrStyle.Render("Error: "+m.err.Error()) + "\n\n" +
			browserHelpStyle.Render("  q to quit")
	}
	return m.list.View()
}

// Browse runs the interactive browser until the user quits. The fetch
// runs on its own goroutine while the spinner animates.
func Browse(title string, fetch func() ([]Item, error)) error {
	model := newBrowserModel(title, fetch)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
