package logger

import (
	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
)

func getDefaultStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()
	styles.Levels[charmlog.DebugLevel] = styles.Levels[charmlog.DebugLevel].
		Foreground(lipgloss.Color("63"))
	styles.Levels[charmlog.ErrorLevel] = styles.Levels[charmlog.ErrorLevel].
		Foreground(lipgloss.Color("204"))
	return styles
}
