// Package cli provides the interactive terminal components for skycast,
// built on the Bubbletea Model-View-Update architecture with Lipgloss
// styling.
package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type favoriteItem struct {
	name string
}

func (i favoriteItem) Title() string {
	return i.name
}

func (i favoriteItem) Description() string {
	return "saved location"
}

func (i favoriteItem) FilterValue() string {
	return i.name
}

// PickerModel is a filterable list over the saved favorite locations.
// Enter selects a location; q and esc dismiss the picker.
type PickerModel struct {
	list     list.Model
	choice   string
	quitting bool
}

// NewFavoritesPicker builds a picker over names in list order.
func NewFavoritesPicker(names []string) PickerModel {
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, favoriteItem{name: name})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Favorite locations"

	return PickerModel{list: l}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(favoriteItem)
			if ok {
				m.choice = i.name
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Choice returns the selected location name, or "" if the picker was
// dismissed.
func (m PickerModel) Choice() string {
	return m.choice
}
