package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

const bannerArt = `
 ____                  ____            _
|  _ \ _ __ ___ _ __  / ___| ___ _ __ (_)_   _ ___
| |_) | '__/ _ \ '_ \| |  _ / _ \ '_ \| | | | / __|
|  __/| | |  __/ |_) | |_| |  __/ | | | | |_| \__ \
|_|   |_|  \___| .__/ \____|\___|_| |_|_|\__,_|___/
               |_|`

const bannerCompact = "P R E P G E N I U S"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 54 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
