package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hanoi/internal/board"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBlue  ColorTheme = "blue"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	disk  lipgloss.TerminalColor
	label lipgloss.TerminalColor
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBlue: {
		disk:  lipgloss.AdaptiveColor{Light: "#0003ad", Dark: "#5f61fc"},
		label: lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"},
	},
	ThemeGreen: {
		disk:  lipgloss.AdaptiveColor{Light: "#007e50", Dark: "#6afd76"},
		label: lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"},
	},
	ThemeGray: {
		disk:  lipgloss.Color("251"),
		label: lipgloss.Color("240"),
	},
}

type themeStyles struct {
	enabled bool
	disk    lipgloss.Style
	label   lipgloss.Style
}

func newThemeStyles(r *lipgloss.Renderer, theme ColorTheme) themeStyles {
	colors := themes[theme]
	if theme == ThemeOff {
		return themeStyles{}
	}
	return themeStyles{
		enabled: true,
		disk:    r.NewStyle().Foreground(colors.disk).Bold(true),
		label:   r.NewStyle().Foreground(colors.label),
	}
}

// row styles each run of disk filler in a rendered board row
func (s themeStyles) row(line string) string {
	if !s.enabled {
		return line
	}

	filler := string(board.DiskFiller)
	var sb strings.Builder
	for len(line) > 0 {
		i := strings.Index(line, filler)
		if i < 0 {
			sb.WriteString(line)
			break
		}
		sb.WriteString(line[:i])
		line = line[i:]
		run := len(line) - len(strings.TrimLeft(line, filler))
		sb.WriteString(s.disk.Render(line[:run]))
		line = line[run:]
	}
	return sb.String()
}

// footer styles the peg labels
func (s themeStyles) footer(line string) string {
	if !s.enabled {
		return line
	}

	var sb strings.Builder
	for _, ch := range line {
		if ch >= '1' && ch <= '9' {
			sb.WriteString(s.label.Render(string(ch)))
		} else {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
