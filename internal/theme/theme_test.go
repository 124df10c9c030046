package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/gitaid/internal/provenance"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestGetThemeFallsBackToDracula(t *testing.T) {
	assert.Equal(t, Dracula(), GetTheme("does-not-exist"))
	for _, name := range AvailableThemes() {
		assert.NotNil(t, GetTheme(name), name)
	}
	assert.Equal(t, Nord().Accent, GetTheme(NordName).Accent)
}

func TestMarkerKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	th := Dracula()
	for _, k := range provenance.AllKinds {
		assert.Equal(t, k.Marker(), th.Marker(k))
	}
}

func TestMarkerColours(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	th := Dracula()
	out := th.Marker(provenance.Merged)
	assert.Contains(t, out, "++")
	assert.NotEqual(t, "++", out)
}
