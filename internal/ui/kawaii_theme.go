package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// KawaiiTheme tints the default theme with pastel pinks
type KawaiiTheme struct{}

// NewKawaiiTheme creates a new kawaii theme
func NewKawaiiTheme() fyne.Theme {
	return &KawaiiTheme{}
}

// Color returns theme colors
func (t *KawaiiTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 255, G: 102, B: 153, A: 255} // Heart pink
	case theme.ColorNameFocus:
		return color.NRGBA{R: 255, G: 102, B: 153, A: 127}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 255, G: 179, B: 204, A: 102}
	case theme.ColorNameHyperlink:
		return color.NRGBA{R: 204, G: 51, B: 119, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 36, G: 26, B: 38, A: 255} // Plum
		}
		return color.NRGBA{R: 255, G: 247, B: 250, A: 255} // Blush
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 48, G: 34, B: 50, A: 255}
		}
		return color.NRGBA{R: 255, G: 236, B: 243, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *KawaiiTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *KawaiiTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with rounder corners
func (t *KawaiiTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
