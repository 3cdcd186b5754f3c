package tui

import "github.com/lifehedge/lifehedge/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	ColorPrimary = tuistyles.ColorPrimary
	ColorDanger  = tuistyles.ColorDanger
	ColorSuccess = tuistyles.ColorSuccess

	TitleStyle     = tuistyles.TitleStyle
	SubtitleStyle  = tuistyles.SubtitleStyle
	StatusBarStyle = tuistyles.StatusBarStyle
	StatusKeyStyle = tuistyles.StatusKeyStyle
	BorderStyle    = tuistyles.BorderStyle
	ErrorStyle     = tuistyles.ErrorStyle
	InfoStyle      = tuistyles.InfoStyle
)
