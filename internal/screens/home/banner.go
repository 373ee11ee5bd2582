package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calctutor/internal/ui/theme"
)

const bannerArt = `┏━╸┏━┓╻  ┏━╸╺┳╸╻ ╻╺┳╸┏━┓┏━┓
┃  ┣━┫┃  ┃   ┃ ┃ ┃ ┃ ┃ ┃┣┳┛
┗━╸╹ ╹┗━╸┗━╸ ╹ ┗━┛ ╹ ┗━┛╹┗╸`

const bannerCompact = "C A L C T U T O R"

// RenderBanner returns the banner styled in the primary color. Uses a
// compact fallback for areas narrower than 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
