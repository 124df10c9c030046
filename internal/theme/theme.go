// Package theme provides the colour palettes used for provenance markers and
// the interactive browser.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours used by gitaid output.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // Foreground color for text on Accent background
	Border    lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	SuccessFg lipgloss.Color // merged
	WarnFg    lipgloss.Color
	ErrorFg   lipgloss.Color // deleted
	Cyan      lipgloss.Color // first parent
	Pink      lipgloss.Color // second parent
}

// Theme names.
const (
	DraculaName       = "dracula"
	DraculaLightName  = "dracula-light"
	NordName          = "nord"
	MonokaiName       = "monokai"
	SolarizedDarkName = "solarized-dark"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"),
		AccentFg:  lipgloss.Color("#282A36"),
		Border:    lipgloss.Color("#6272A4"),
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		SuccessFg: lipgloss.Color("#50FA7B"),
		WarnFg:    lipgloss.Color("#FFB86C"),
		ErrorFg:   lipgloss.Color("#FF5555"),
		Cyan:      lipgloss.Color("#8BE9FD"),
		Pink:      lipgloss.Color("#FF79C6"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#c6dbe5"),
		AccentFg:  lipgloss.Color("#24292F"),
		Border:    lipgloss.Color("#D0D7DE"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		SuccessFg: lipgloss.Color("#059669"),
		WarnFg:    lipgloss.Color("#D97706"),
		ErrorFg:   lipgloss.Color("#DC2626"),
		Cyan:      lipgloss.Color("#0891B2"),
		Pink:      lipgloss.Color("#DB2777"),
	}
}

// Nord returns the Nord theme.
func Nord() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		Border:    lipgloss.Color("#4C566A"),
		MutedFg:   lipgloss.Color("#4C566A"),
		TextFg:    lipgloss.Color("#ECEFF4"),
		SuccessFg: lipgloss.Color("#A3BE8C"),
		WarnFg:    lipgloss.Color("#D08770"),
		ErrorFg:   lipgloss.Color("#BF616A"),
		Cyan:      lipgloss.Color("#8FBCBB"),
		Pink:      lipgloss.Color("#B48EAD"),
	}
}

// Monokai returns the Monokai theme.
func Monokai() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#A6E22E"),
		AccentFg:  lipgloss.Color("#272822"),
		Border:    lipgloss.Color("#75715E"),
		MutedFg:   lipgloss.Color("#75715E"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		SuccessFg: lipgloss.Color("#A6E22E"),
		WarnFg:    lipgloss.Color("#FD971F"),
		ErrorFg:   lipgloss.Color("#F92672"),
		Cyan:      lipgloss.Color("#66D9EF"),
		Pink:      lipgloss.Color("#AE81FF"),
	}
}

// SolarizedDark returns the Solarized dark theme.
func SolarizedDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#002B36"),
		Border:    lipgloss.Color("#586E75"),
		MutedFg:   lipgloss.Color("#586E75"),
		TextFg:    lipgloss.Color("#839496"),
		SuccessFg: lipgloss.Color("#859900"),
		WarnFg:    lipgloss.Color("#CB4B16"),
		ErrorFg:   lipgloss.Color("#DC322F"),
		Cyan:      lipgloss.Color("#2AA198"),
		Pink:      lipgloss.Color("#D33682"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NordName:
		return Nord()
	case MonokaiName:
		return Monokai()
	case SolarizedDarkName:
		return SolarizedDark()
	default:
		return Dracula()
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NordName,
		MonokaiName,
		SolarizedDarkName,
	}
}
