package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/gitaid/internal/provenance"
)

// MarkerStyle returns the style for the marker of provenance kind k.
func (t *Theme) MarkerStyle(k provenance.Kind) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch k {
	case provenance.Merged:
		return style.Foreground(t.SuccessFg)
	case provenance.FromFirst:
		return style.Foreground(t.Cyan)
	case provenance.FromSecond:
		return style.Foreground(t.Pink)
	case provenance.DeletedDuringMerge:
		return style.Foreground(t.ErrorFg)
	case provenance.DeletedFromFirstOnly, provenance.DeletedFromSecondOnly:
		return style.Foreground(t.WarnFg)
	default:
		return style.Bold(false).Foreground(t.MutedFg)
	}
}

// Marker renders the coloured marker for k, suitable for
// provenance.RenderOptions.Marker.
func (t *Theme) Marker(k provenance.Kind) string {
	return t.MarkerStyle(k).Render(k.Marker())
}
