package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/wolfi-dev/advid/pkg/vuln"
)

var darkMode = lipgloss.HasDarkBackground()

var (
	secondary = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	faint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	bold      = lipgloss.NewStyle().Bold(true)

	secondaryLight = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	faintLight     = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))

	kindColors = map[vuln.Kind]lipgloss.AdaptiveColor{
		vuln.KindRustSec: {Light: "#b7410e", Dark: "#f29e74"},
		vuln.KindCVE:     {Light: "#005f87", Dark: "#5fafd7"},
		vuln.KindGHSA:    {Light: "#5f00af", Dark: "#af87ff"},
		vuln.KindTalos:   {Light: "#005f00", Dark: "#87d787"},
	}
)

func Secondary() lipgloss.Style {
	if !darkMode {
		return secondaryLight
	}
	return secondary
}

func Faint() lipgloss.Style {
	if !darkMode {
		return faintLight
	}
	return faint
}

func Bold() lipgloss.Style {
	return bold
}

// Kind returns the style used to show an advisory ID scheme. Unrecognized
// schemes are shown faint.
func Kind(k vuln.Kind) lipgloss.Style {
	c, ok := kindColors[k]
	if !ok {
		return Faint()
	}
	return lipgloss.NewStyle().Foreground(c)
}
