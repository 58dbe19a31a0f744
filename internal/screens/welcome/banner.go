package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/lernbox/lernbox/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗██████╗ ███╗   ██╗██████╗  ██████╗ ██╗  ██╗
 ██║     ██╔════╝██╔══██╗████╗  ██║██╔══██╗██╔═══██╗╚██╗██╔╝
 ██║     █████╗  ██████╔╝██╔██╗ ██║██████╔╝██║   ██║ ╚███╔╝
 ██║     ██╔══╝  ██╔══██╗██║╚██╗██║██╔══██╗██║   ██║ ██╔██╗
 ███████╗███████╗██║  ██║██║ ╚████║██████╔╝╚██████╔╝██╔╝ ██╗
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "L E R N B O X"

// RenderBanner returns the LERNBOX banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
