package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Conceptual-Machines/magda-scales/internal/scales"
	"github.com/Conceptual-Machines/magda-scales/internal/theory"
)

// Colors
var (
	colorFlat    = lipgloss.Color("#7AA2F7")
	colorSharp   = lipgloss.Color("#F7768E")
	colorMissing = lipgloss.Color("#565F89")
	colorTitle   = lipgloss.Color("#E0AF68")
)

var (
	styleFlat    = lipgloss.NewStyle().Foreground(colorFlat)
	styleSharp   = lipgloss.NewStyle().Foreground(colorSharp)
	styleNatural = lipgloss.NewStyle()
	styleMissing = lipgloss.NewStyle().Foreground(colorMissing)
	styleTitle   = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMissing).Italic(true)
)

// cellWidth fits the widest spelling ("B𝄫" or "Bbb").
const cellWidth = 4

type renderer struct {
	ascii bool
}

func (r renderer) text(s string) string {
	if r.ascii {
		return theory.ASCII(s)
	}
	return s
}

// letter colors a single letter by accidental. Unresolved letters render as "?".
func (r renderer) letter(l string) string {
	if l == "" {
		return styleMissing.Render("?")
	}
	s := r.text(l)
	switch {
	case theory.IsFlat(l):
		return styleFlat.Render(s)
	case theory.IsSharp(l):
		return styleSharp.Render(s)
	default:
		return styleNatural.Render(s)
	}
}

func (r renderer) cell(l string) string {
	return lipgloss.NewStyle().Width(cellWidth).Render(r.letter(l))
}

func (r renderer) row(letters []string) string {
	cells := make([]string, 0, len(letters))
	for _, l := range letters {
		cells = append(cells, r.cell(l))
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ")
}

func (r renderer) table(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(r.row(row))
		b.WriteString("\n")
	}
	return b.String()
}

func (r renderer) title(key, typeName string) string {
	return styleTitle.Render(r.text(key) + " " + typeName)
}

func (r renderer) label(s string) string {
	return styleLabel.Render(s)
}

func (r renderer) typeLine(t scales.ScaleType) string {
	line := styleTitle.Render(t.Name) + "  " + r.text(strings.Join(t.Tones, " "))
	if len(t.Aliases) > 0 {
		line += "  " + r.label("aka "+strings.Join(t.Aliases, ", "))
	}
	return line
}
