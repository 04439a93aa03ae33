package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/postersmith/postersmith/pkg/catalog"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// categoryPickerModel is the bubbletea model for interactive category
// selection in the generate command.
type categoryPickerModel struct {
	names    []string
	cursor   int
	checked  map[int]bool
	accepted bool
}

func newCategoryPickerModel() categoryPickerModel {
	return categoryPickerModel{
		names:   catalog.Names(),
		checked: make(map[int]bool),
	}
}

func (m categoryPickerModel) Init() tea.Cmd {
	return nil
}

func (m categoryPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case " ":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			for i := range m.names {
				m.checked[i] = true
			}
		case "enter":
			m.accepted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m categoryPickerModel) View() string {
	s := listDimStyle.Render("Select categories (space to toggle, a for all, enter to run):") + "\n\n"
	for i, name := range m.names {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = listSelectedStyle.Render("> ")
			style = listSelectedStyle
		}
		mark := "[ ]"
		if m.checked[i] {
			mark = "[x]"
		}
		entries := len(mustGet(name).Entries)
		s += fmt.Sprintf("%s%s %s %s\n", cursor, mark, style.Render(name),
			listDimStyle.Render(fmt.Sprintf("(%d posters)", entries)))
	}
	return s
}

// selected returns the checked category names, in display order.
func (m categoryPickerModel) selected() []string {
	var out []string
	for i, name := range m.names {
		if m.checked[i] {
			out = append(out, name)
		}
	}
	return out
}

// pickCategories runs the interactive picker and returns the chosen
// category names. Quitting without accepting returns an empty slice.
func pickCategories() ([]string, error) {
	final, err := tea.NewProgram(newCategoryPickerModel()).Run()
	if err != nil {
		return nil, fmt.Errorf("category picker: %w", err)
	}
	m, ok := final.(categoryPickerModel)
	if !ok || !m.accepted {
		return nil, nil
	}
	return m.selected(), nil
}

// mustGet looks up a registry-backed category name; picker names always
// come from catalog.Names().
func mustGet(name string) catalog.Category {
	c, _ := catalog.Get(name)
	return c
}
