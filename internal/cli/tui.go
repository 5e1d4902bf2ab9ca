package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/foldline/foldline/pkg/building"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BuildingListModel - Interactive building file selection
// =============================================================================

// buildingEntry is one TOML file found on disk, with its parsed
// parameters when the file is a valid building definition.
type buildingEntry struct {
	Path   string
	Params *building.Params
	Err    error
}

// discoverBuildings collects building TOML files from the given
// directories, parsing each one. Files that fail to parse are kept in
// the list but marked unselectable.
func discoverBuildings(dirs ...string) []buildingEntry {
	var entries []buildingEntry
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			params, err := building.Load(path)
			entries = append(entries, buildingEntry{Path: path, Params: params, Err: err})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// BuildingListModel is the bubbletea model for interactive building selection.
type BuildingListModel struct {
	Entries  []buildingEntry
	Cursor   int
	Selected *buildingEntry
	Height   int
	Offset   int
}

// NewBuildingListModel creates a new building list model.
func NewBuildingListModel(entries []buildingEntry) BuildingListModel {
	return BuildingListModel{
		Entries: entries,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m BuildingListModel) Init() tea.Cmd {
	return nil
}

func (m BuildingListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if entry.Err != nil {
				return m, nil
			}
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BuildingListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Building"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name, roof, scale, size := "—", "—", "—", "—"
		if e.Params != nil {
			name = e.Params.Name
			roof = string(e.Params.Roof.Style)
			scale = e.Params.Scale.Label()
			size = fmt.Sprintf("%gx%gx%g ft", e.Params.WidthFeet, e.Params.DepthFeet, e.Params.HeightFeet)
		}

		rows = append(rows, []string{cursor, filepath.Base(e.Path), name, roof, scale, size})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "File", "Building", "Roof", "Scale", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Entries) {
				return lipgloss.NewStyle()
			}
			e := m.Entries[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if e.Err != nil {
				return base.Foreground(colorDim)
			}
			if isCurrent {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// pickBuilding runs the interactive picker and returns the chosen file.
// It returns an empty string if the user quit without selecting.
func pickBuilding(dirs ...string) (string, error) {
	entries := discoverBuildings(dirs...)
	if len(entries) == 0 {
		return "", fmt.Errorf("no building files found (looked for *.toml in %s)", strings.Join(dirs, ", "))
	}

	model := NewBuildingListModel(entries)
	prog := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := prog.Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(BuildingListModel)
	if !ok || result.Selected == nil {
		return "", nil
	}
	return result.Selected.Path, nil
}
