package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// fetchModel shows a spinner while one blocking fetch runs in the
// background, mirroring the original tool's progress display.
type fetchModel struct {
	spinner spinner.Model
	message string
	run     func() (any, error)
	value   any
	err     error
	done    bool
}

type fetchDoneMsg struct {
	value any
	err   error
}

func newFetchModel(message string, run func() (any, error)) fetchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinStyle

	return fetchModel{spinner: s, message: message, run: run}
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchModel) fetch() tea.Msg {
	value, err := m.run()

	return fetchDoneMsg{value: value, err: err}
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.value = msg.value
		m.err = msg.err
		m.done = true

		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			m.done = true

			return m, tea.Quit
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m fetchModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// runWithSpinner runs fn behind a spinner and hands back its result once
// the program quits.
func runWithSpinner[T any](message string, fn func() (T, error)) (T, error) {
	var zero T

	m := newFetchModel(message, func() (any, error) {
		return fn()
	})

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return zero, err
	}

	final := finalModel.(fetchModel)
	if final.err != nil {
		return zero, final.err
	}

	value, ok := final.value.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected fetch result type %T", final.value)
	}

	return value, nil
}
