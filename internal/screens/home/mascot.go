package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/ui/theme"
)

// SigilVariant selects which scanner sigil to display.
type SigilVariant int

const (
	SigilIdle     SigilVariant = iota // No result yet
	SigilStable                       // Last result within normal entropy
	SigilGlitch                       // Last result in glitch mode
	SigilComplete                     // Adaptive run reached full clarity
)

const sigilIdle = `╭─────╮
│  ◌  │
│ ─┼─ │
╰─────╯`

const sigilStable = `╭─────╮
│  ◎  │
│ ─┼─ │
╰─────╯`

const sigilGlitch = `╭──┄──╮
│ ◎̸ ▚ │ !
│ ─╳─ │
╰──┄──╯`

const sigilComplete = `╭─────╮
│  ◉  │
│ ═╪═ │
╰──╥──╯
   ╨`

// RenderSigil returns the sigil art for the given variant.
func RenderSigil(v SigilVariant) string {
	art := sigilIdle
	fg := theme.TextDim

	switch v {
	case SigilStable:
		art, fg = sigilStable, theme.Primary
	case SigilGlitch:
		art, fg = sigilGlitch, theme.Glitch
	case SigilComplete:
		art, fg = sigilComplete, theme.Success
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
